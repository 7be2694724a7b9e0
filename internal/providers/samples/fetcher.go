package samples

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"studio/internal/domain"
)

// Fetcher downloads sample images by URL and converts them into the local
// ImageAsset representation.
type Fetcher struct {
	client   *http.Client
	maxBytes int64
}

func NewFetcher(client *http.Client, maxBytes int64) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if maxBytes <= 0 {
		maxBytes = 10 << 20
	}
	return &Fetcher{client: client, maxBytes: maxBytes}
}

// Fetch performs a plain GET and returns the body as a base64 image asset.
// The media type comes from the Content-Type header, falling back to byte
// sniffing when the header is absent or unparseable.
func (f *Fetcher) Fetch(ctx context.Context, url string) (domain.ImageAsset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.ImageAsset{}, fmt.Errorf("create sample request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return domain.ImageAsset{}, fmt.Errorf("fetch sample image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.ImageAsset{}, fmt.Errorf("fetch sample image: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return domain.ImageAsset{}, fmt.Errorf("read sample image: %w", err)
	}
	if int64(len(data)) > f.maxBytes {
		return domain.ImageAsset{}, fmt.Errorf("sample image exceeds %d bytes", f.maxBytes)
	}
	if len(data) == 0 {
		return domain.ImageAsset{}, fmt.Errorf("sample image is empty")
	}

	mediaType := ""
	if header := resp.Header.Get("Content-Type"); header != "" {
		if parsed, _, err := mime.ParseMediaType(header); err == nil {
			mediaType = parsed
		}
	}
	if mediaType == "" || !strings.HasPrefix(mediaType, "image/") {
		mediaType = http.DetectContentType(data)
	}

	return domain.ImageAsset{
		Data:      base64.StdEncoding.EncodeToString(data),
		MediaType: mediaType,
	}, nil
}
