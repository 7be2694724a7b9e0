package imagegen

import (
	"context"

	"studio/internal/domain"
	"studio/internal/providers/genai"
)

// Background names a backdrop preset. An attached background image takes the
// place of a preset; the two are mutually exclusive.
type Background string

const (
	BackgroundStudio Background = "studio"
	BackgroundStage  Background = "stage"
	BackgroundGarden Background = "garden"
	BackgroundGym    Background = "gym"
	BackgroundPlain  Background = "plain"
)

// AgeGroup selects how the model's apparent age should be framed.
type AgeGroup string

const (
	AgeUnchanged AgeGroup = "unchanged"
	AgeChild     AgeGroup = "child"
	AgePreteen   AgeGroup = "preteen"
	AgeTeen      AgeGroup = "teen"
	AgeAdult     AgeGroup = "adult"
)

// ShotFraming selects how much of the model is in frame.
type ShotFraming string

const (
	ShotFullBody     ShotFraming = "full_body"
	ShotThreeQuarter ShotFraming = "three_quarter"
	ShotHalfBody     ShotFraming = "half_body"
	ShotCloseUp      ShotFraming = "close_up"
)

// AspectRatio is the requested output ratio. The default is the 9:16 tall
// vertical used by the portfolio layout.
type AspectRatio string

const (
	AspectSquare    AspectRatio = "1:1"
	AspectWide      AspectRatio = "16:9"
	AspectVertical  AspectRatio = "9:16"
	AspectLandscape AspectRatio = "4:3"
	AspectPortrait  AspectRatio = "3:4"
)

// Directive is the full structured input for one generation: the images to
// composite plus the text and enum options the instruction is built from.
// It is constructed fresh per request and never mutated after assembly.
type Directive struct {
	Garment          domain.ImageAsset
	Model            domain.ImageAsset
	Background       *domain.ImageAsset
	BackgroundPreset Background
	Age              AgeGroup
	Framing          ShotFraming
	Aspect           AspectRatio
	Palette          []string
	Instructions     string
}

// Validate enforces the directive invariants: exactly one garment and one
// model image, and a background image is mutually exclusive with a named
// preset. The palette is passed through verbatim, never validated for
// color-format correctness.
func (d Directive) Validate() error {
	if d.Garment.Data == "" {
		return domain.ErrMissingGarment
	}
	if d.Model.Data == "" {
		return domain.ErrMissingModel
	}
	if d.Background != nil && d.BackgroundPreset != "" {
		return domain.ErrBackgroundConflict
	}
	return nil
}

// ImageModel is the remote generation capability: ordered multimodal parts
// in, a single image asset or a typed failure out.
type ImageModel interface {
	GenerateImage(ctx context.Context, parts []genai.Part) (*domain.ImageAsset, error)
}
