package imagegen

import (
	"fmt"
	"strings"
)

// BuildInstruction translates the directive's text and enum fields into a
// single natural-language instruction block. Clauses are emitted in a fixed
// order; optional clauses are dropped entirely rather than left blank.
// Images are not referenced here beyond the legend: they travel as separate
// inline parts.
func BuildInstruction(d Directive) string {
	parts := []string{
		"You are a professional fashion photographer compositing a studio-grade photo shoot.",
		legendClause(d),
		"Create a single photorealistic photograph of the model wearing the garment.",
		"Keep the model's face, hair, skin tone and body proportions faithful to the reference image.",
	}
	if clause := ageClause(d.Age); clause != "" {
		parts = append(parts, clause)
	}
	if len(d.Palette) > 0 {
		parts = append(parts, "Recolor the garment using only these colors: "+strings.Join(d.Palette, ", ")+".")
	} else {
		parts = append(parts, "Preserve the garment's original colors, fabric texture and embellishments exactly.")
	}
	parts = append(parts, framingClause(d.Framing))
	parts = append(parts, "Pose the model in a confident, natural stance suited to a dance portfolio.")
	if d.Background != nil {
		parts = append(parts, "Use the attached background image as the scene behind the model.")
	} else {
		parts = append(parts, fmt.Sprintf("The background must be strictly: %q.", backgroundText(d.BackgroundPreset)))
	}
	parts = append(parts, aspectClause(d.Aspect))
	if extra := strings.TrimSpace(d.Instructions); extra != "" {
		parts = append(parts, "Additional instructions: "+extra)
	}
	return strings.Join(parts, " ")
}

// BuildRefinementInstruction wraps the user's change request with a fixed
// framing sentence. The framing reduces spurious safety blocks on benign
// edits such as age or appearance tweaks.
func BuildRefinementInstruction(change string) string {
	return "This is a professional portfolio photograph; keep it photorealistic. " +
		"Apply the following adjustment to the attached image: " + strings.TrimSpace(change)
}

func legendClause(d Directive) string {
	if d.Background != nil {
		return "Attached in order: the garment to feature, the model reference, and the desired background."
	}
	return "Attached in order: the garment to feature and the model reference."
}

func ageClause(age AgeGroup) string {
	switch age {
	case AgeUnchanged, "":
		return ""
	case AgeChild:
		return "Adjust the model to look approximately 7 to 9 years old."
	case AgePreteen:
		return "Adjust the model to look approximately 10 to 12 years old."
	case AgeTeen:
		return "Adjust the model to look approximately 13 to 16 years old."
	case AgeAdult:
		return "Adjust the model to look approximately 20 to 25 years old."
	default:
		return fmt.Sprintf("Adjust the model's apparent age to suit the %s category.", string(age))
	}
}

func framingClause(framing ShotFraming) string {
	switch framing {
	case ShotFullBody, "":
		return "Frame the shot full body, head to toe."
	case ShotThreeQuarter:
		return "Frame the shot three-quarter length, from the knees up."
	case ShotHalfBody:
		return "Frame the shot half body, from the waist up."
	case ShotCloseUp:
		return "Frame the shot as a close-up on the upper body and garment detail."
	default:
		return fmt.Sprintf("Frame the shot as a %s composition.", string(framing))
	}
}

func backgroundText(preset Background) string {
	switch preset {
	case BackgroundStudio, "":
		return "a seamless light-grey photography studio backdrop"
	case BackgroundStage:
		return "a dimly lit theatre stage with a soft spotlight"
	case BackgroundGarden:
		return "a sunlit garden with softly blurred greenery"
	case BackgroundGym:
		return "a bright gymnastics training hall"
	case BackgroundPlain:
		return "a plain white backdrop"
	default:
		return string(preset)
	}
}

func aspectClause(aspect AspectRatio) string {
	switch aspect {
	case AspectSquare:
		return "Render the final image at a 1:1 square aspect ratio."
	case AspectWide:
		return "Render the final image at a 16:9 wide landscape aspect ratio."
	case AspectVertical, "":
		return "Render the final image at a 9:16 tall vertical aspect ratio."
	case AspectLandscape:
		return "Render the final image at a 4:3 standard landscape aspect ratio."
	case AspectPortrait:
		return "Render the final image at a 3:4 standard portrait aspect ratio."
	default:
		return fmt.Sprintf("Render the final image at a %s aspect ratio.", string(aspect))
	}
}
