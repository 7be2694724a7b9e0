package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"studio/internal/domain"
	"studio/internal/imagegen"
)

type generateRequest struct {
	GarmentImage    string   `json:"garment_image"`
	ModelImage      string   `json:"model_image"`
	BackgroundImage string   `json:"background_image,omitempty"`
	Background      string   `json:"background,omitempty"`
	Age             string   `json:"age,omitempty"`
	Framing         string   `json:"framing,omitempty"`
	AspectRatio     string   `json:"aspect_ratio,omitempty"`
	Palette         []string `json:"palette,omitempty"`
	Instructions    string   `json:"instructions,omitempty"`
}

type refineRequest struct {
	BaseImage   string `json:"base_image"`
	Instruction string `json:"instruction"`
}

type artifactResponse struct {
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}

func (req generateRequest) directive() (imagegen.Directive, error) {
	d := imagegen.Directive{
		BackgroundPreset: imagegen.Background(req.Background),
		Age:              imagegen.AgeGroup(req.Age),
		Framing:          imagegen.ShotFraming(req.Framing),
		Aspect:           imagegen.AspectRatio(req.AspectRatio),
		Palette:          req.Palette,
		Instructions:     req.Instructions,
	}
	if req.GarmentImage != "" {
		garment, err := domain.ParseDataURI(req.GarmentImage)
		if err != nil {
			return imagegen.Directive{}, fmt.Errorf("garment_image: %w", err)
		}
		d.Garment = garment
	}
	if req.ModelImage != "" {
		model, err := domain.ParseDataURI(req.ModelImage)
		if err != nil {
			return imagegen.Directive{}, fmt.Errorf("model_image: %w", err)
		}
		d.Model = model
	}
	if req.BackgroundImage != "" {
		background, err := domain.ParseDataURI(req.BackgroundImage)
		if err != nil {
			return imagegen.Directive{}, fmt.Errorf("background_image: %w", err)
		}
		d.Background = &background
	}
	return d, nil
}

func (a *App) ImagesGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	directive, err := req.directive()
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	sess := a.session(w, r)
	if err := sess.Begin(); err != nil {
		a.error(w, http.StatusConflict, "busy", err.Error())
		return
	}
	defer sess.End()

	ctx, cancel := context.WithTimeout(r.Context(), a.Config.GenerateTimeout)
	defer cancel()

	artifact, err := a.Composer.Generate(ctx, directive)
	if err != nil {
		a.generationError(w, err)
		return
	}
	sess.Append(artifact)
	a.json(w, http.StatusOK, artifactResponse{Image: artifact.URI, CreatedAt: artifact.CreatedAt})
}

func (a *App) ImagesRefine(w http.ResponseWriter, r *http.Request) {
	var req refineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if strings.TrimSpace(req.Instruction) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "a refinement instruction is required")
		return
	}
	base, err := domain.ParseDataURI(req.BaseImage)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", fmt.Sprintf("base_image: %v", err))
		return
	}

	sess := a.session(w, r)
	if err := sess.Begin(); err != nil {
		a.error(w, http.StatusConflict, "busy", err.Error())
		return
	}
	defer sess.End()

	ctx, cancel := context.WithTimeout(r.Context(), a.Config.GenerateTimeout)
	defer cancel()

	artifact, err := a.Composer.Refine(ctx, base, req.Instruction)
	if err != nil {
		a.generationError(w, err)
		return
	}
	sess.Append(artifact)
	a.json(w, http.StatusOK, artifactResponse{Image: artifact.URI, CreatedAt: artifact.CreatedAt})
}

func (a *App) ImagesHistory(w http.ResponseWriter, r *http.Request) {
	sess := a.session(w, r)
	a.json(w, http.StatusOK, map[string]any{"items": sess.History()})
}
