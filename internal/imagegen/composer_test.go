package imagegen

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"studio/internal/domain"
	"studio/internal/infra"
	"studio/internal/providers/genai"
)

type stubModel struct {
	parts []genai.Part
	asset *domain.ImageAsset
	err   error
}

func (s *stubModel) GenerateImage(ctx context.Context, parts []genai.Part) (*domain.ImageAsset, error) {
	s.parts = parts
	if s.err != nil {
		return nil, s.err
	}
	return s.asset, nil
}

type recordingNotifier struct {
	urls []string
}

func (r *recordingNotifier) NotifyGenerated(imageURL string) {
	r.urls = append(r.urls, imageURL)
}

func testLogger() infra.Logger {
	return zerolog.New(io.Discard)
}

func TestGenerateOrdersPartsImagesFirst(t *testing.T) {
	model := &stubModel{asset: &domain.ImageAsset{Data: "QUJD", MediaType: "image/png"}}
	composer := NewComposer(model, nil, testLogger())

	d := sampleDirective()
	bg := domain.ImageAsset{Data: "Ymc=", MediaType: "image/png"}
	d.Background = &bg

	if _, err := composer.Generate(context.Background(), d); err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(model.parts) != 4 {
		t.Fatalf("expected 4 parts, got %d", len(model.parts))
	}
	if model.parts[0].InlineData == nil || model.parts[0].InlineData.Data != d.Garment.Data {
		t.Fatalf("part 0 must be the garment image: %+v", model.parts[0])
	}
	if model.parts[1].InlineData == nil || model.parts[1].InlineData.Data != d.Model.Data {
		t.Fatalf("part 1 must be the model image: %+v", model.parts[1])
	}
	if model.parts[2].InlineData == nil || model.parts[2].InlineData.Data != bg.Data {
		t.Fatalf("part 2 must be the background image: %+v", model.parts[2])
	}
	if model.parts[3].Text == "" {
		t.Fatalf("part 3 must be the directive text: %+v", model.parts[3])
	}
}

func TestRefineOrdersBaseImageBeforeInstruction(t *testing.T) {
	model := &stubModel{asset: &domain.ImageAsset{Data: "QUJD", MediaType: "image/png"}}
	composer := NewComposer(model, nil, testLogger())
	base := domain.ImageAsset{Data: "cHJpb3I=", MediaType: "image/png"}

	// The ordering must hold no matter how many refinements came before.
	for i := 0; i < 3; i++ {
		if _, err := composer.Refine(context.Background(), base, "soften the lighting"); err != nil {
			t.Fatalf("Refine returned error: %v", err)
		}
		if len(model.parts) != 2 {
			t.Fatalf("expected 2 parts, got %d", len(model.parts))
		}
		if model.parts[0].InlineData == nil || model.parts[0].InlineData.Data != base.Data {
			t.Fatalf("part 0 must be the base image: %+v", model.parts[0])
		}
		if !strings.Contains(model.parts[1].Text, "soften the lighting") {
			t.Fatalf("part 1 must carry the wrapped instruction: %+v", model.parts[1])
		}
	}
}

func TestGenerateValidatesDirective(t *testing.T) {
	composer := NewComposer(&stubModel{}, nil, testLogger())

	d := sampleDirective()
	d.Garment = domain.ImageAsset{}
	if _, err := composer.Generate(context.Background(), d); !errors.Is(err, domain.ErrMissingGarment) {
		t.Fatalf("expected ErrMissingGarment, got %v", err)
	}

	d = sampleDirective()
	d.Model = domain.ImageAsset{}
	if _, err := composer.Generate(context.Background(), d); !errors.Is(err, domain.ErrMissingModel) {
		t.Fatalf("expected ErrMissingModel, got %v", err)
	}

	d = sampleDirective()
	d.Background = &domain.ImageAsset{Data: "Ymc=", MediaType: "image/png"}
	d.BackgroundPreset = BackgroundStage
	if _, err := composer.Generate(context.Background(), d); !errors.Is(err, domain.ErrBackgroundConflict) {
		t.Fatalf("expected ErrBackgroundConflict, got %v", err)
	}
}

func TestGenerateWrapsModelFailures(t *testing.T) {
	blocked := &domain.SafetyBlockedError{Categories: []string{"adult"}}
	composer := NewComposer(&stubModel{err: blocked}, nil, testLogger())

	_, err := composer.Generate(context.Background(), sampleDirective())
	if err == nil || !strings.HasPrefix(err.Error(), "failed to complete image generation:") {
		t.Fatalf("missing generation prefix: %v", err)
	}
	var got *domain.SafetyBlockedError
	if !errors.As(err, &got) {
		t.Fatalf("typed error lost in wrapping: %v", err)
	}
}

func TestRefineWrapsModelFailures(t *testing.T) {
	composer := NewComposer(&stubModel{err: &domain.NoImageError{Reason: "blurred"}}, nil, testLogger())

	_, err := composer.Refine(context.Background(), domain.ImageAsset{Data: "QUJD", MediaType: "image/png"}, "fix")
	if err == nil || !strings.HasPrefix(err.Error(), "failed to complete image refinement:") {
		t.Fatalf("missing refinement prefix: %v", err)
	}
}

func TestGenerateNotifiesOnSuccessOnly(t *testing.T) {
	notifier := &recordingNotifier{}
	model := &stubModel{asset: &domain.ImageAsset{Data: "QUJD", MediaType: "image/png"}}
	composer := NewComposer(model, notifier, testLogger())

	artifact, err := composer.Generate(context.Background(), sampleDirective())
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(notifier.urls) != 1 || notifier.urls[0] != artifact.URI {
		t.Fatalf("notifier not told about artifact: %#v", notifier.urls)
	}

	model.err = &domain.NoImageError{}
	if _, err := composer.Generate(context.Background(), sampleDirective()); err == nil {
		t.Fatalf("expected failure")
	}
	if len(notifier.urls) != 1 {
		t.Fatalf("notifier must not fire on failure: %#v", notifier.urls)
	}
}
