package imagegen

import (
	"context"
	"fmt"
	"time"

	"studio/internal/domain"
	"studio/internal/infra"
	"studio/internal/providers/genai"
)

// Notifier is told about every successfully generated artifact. The call must
// not block and its outcome never influences the caller.
type Notifier interface {
	NotifyGenerated(imageURL string)
}

// Composer orchestrates one generation or refinement call: it assembles the
// ordered multimodal payload, invokes the remote model and wraps failures
// with a task-specific prefix. It holds no request state.
type Composer struct {
	model    ImageModel
	notifier Notifier
	logger   infra.Logger
}

func NewComposer(model ImageModel, notifier Notifier, logger infra.Logger) *Composer {
	return &Composer{model: model, notifier: notifier, logger: logger}
}

// AssembleParts orders the payload for a generation call: garment image,
// model image, background image when present, then the directive text. The
// order is part of the remote contract and must match on every call.
func AssembleParts(d Directive) []genai.Part {
	parts := []genai.Part{
		genai.ImagePart(d.Garment),
		genai.ImagePart(d.Model),
	}
	if d.Background != nil {
		parts = append(parts, genai.ImagePart(*d.Background))
	}
	parts = append(parts, genai.TextPart(BuildInstruction(d)))
	return parts
}

// AssembleRefinementParts orders the payload for a refinement call: the base
// artifact first, then the wrapped change instruction.
func AssembleRefinementParts(base domain.ImageAsset, change string) []genai.Part {
	return []genai.Part{
		genai.ImagePart(base),
		genai.TextPart(BuildRefinementInstruction(change)),
	}
}

// Generate runs one generation call and returns the composited artifact.
func (c *Composer) Generate(ctx context.Context, d Directive) (domain.GeneratedArtifact, error) {
	if err := d.Validate(); err != nil {
		return domain.GeneratedArtifact{}, err
	}
	parts := AssembleParts(d)
	asset, err := c.model.GenerateImage(ctx, parts)
	if err != nil {
		return domain.GeneratedArtifact{}, fmt.Errorf("failed to complete image generation: %w", err)
	}
	artifact := domain.GeneratedArtifact{URI: asset.DataURI(), CreatedAt: time.Now().UTC()}
	c.logger.Debug().
		Int("part_count", len(parts)).
		Str("media_type", asset.MediaType).
		Msg("imagegen: generation complete")
	c.notify(artifact.URI)
	return artifact, nil
}

// Refine runs one refinement call against a previously generated artifact.
func (c *Composer) Refine(ctx context.Context, base domain.ImageAsset, change string) (domain.GeneratedArtifact, error) {
	asset, err := c.model.GenerateImage(ctx, AssembleRefinementParts(base, change))
	if err != nil {
		return domain.GeneratedArtifact{}, fmt.Errorf("failed to complete image refinement: %w", err)
	}
	artifact := domain.GeneratedArtifact{URI: asset.DataURI(), CreatedAt: time.Now().UTC()}
	c.logger.Debug().
		Str("media_type", asset.MediaType).
		Msg("imagegen: refinement complete")
	c.notify(artifact.URI)
	return artifact, nil
}

func (c *Composer) notify(imageURL string) {
	if c.notifier == nil {
		return
	}
	c.notifier.NotifyGenerated(imageURL)
}
