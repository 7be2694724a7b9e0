package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

// ImageAsset is an image in transit: a base64 payload plus the media type it
// was encoded with. Assets are immutable once constructed and are replaced
// wholesale whenever the owning slot changes.
type ImageAsset struct {
	Data      string `json:"data"`
	MediaType string `json:"media_type"`
}

// DataURI renders the asset as a data URI. Paired with ParseDataURI this is
// an exact round trip: the payload is never re-encoded.
func (a ImageAsset) DataURI() string {
	return "data:" + a.MediaType + ";base64," + a.Data
}

// ParseDataURI splits a base64 data URI back into an ImageAsset.
func ParseDataURI(uri string) (ImageAsset, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return ImageAsset{}, fmt.Errorf("parse data uri: missing data: prefix")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return ImageAsset{}, fmt.Errorf("parse data uri: missing payload separator")
	}
	mediaType, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return ImageAsset{}, fmt.Errorf("parse data uri: only base64 encoding is supported")
	}
	if mediaType == "" {
		return ImageAsset{}, fmt.Errorf("parse data uri: missing media type")
	}
	if _, err := base64.StdEncoding.DecodeString(payload); err != nil {
		return ImageAsset{}, fmt.Errorf("parse data uri: invalid base64 payload: %w", err)
	}
	return ImageAsset{Data: payload, MediaType: mediaType}, nil
}

// GeneratedArtifact is one composited result returned by the remote model.
// Artifacts are appended to the session history newest first and never
// deleted for the lifetime of the session.
type GeneratedArtifact struct {
	URI       string    `json:"uri"`
	CreatedAt time.Time `json:"created_at"`
}
