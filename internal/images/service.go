// Package images is the boundary around the image-generation endpoints.
// Endpoints are tried in order and every response is converted to a data
// URL; when the whole chain fails a locally rendered gradient placeholder
// is returned, so image generation never fails.
package images

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultPollinationsURL = "https://image.pollinations.ai/prompt"
	defaultPicsumURL       = "https://picsum.photos"

	// generated images can be large; cap what gets inlined as a data URL
	maxImageBytes = 8 << 20

	batchConcurrency = 4
)

// Spec describes one requested image.
type Spec struct {
	Prompt string
	Width  int
	Height int
}

type Service struct {
	client          *http.Client
	pollinationsURL string
	picsumURL       string
}

func NewService() *Service {
	return &Service{
		client:          &http.Client{Timeout: 60 * time.Second},
		pollinationsURL: defaultPollinationsURL,
		picsumURL:       defaultPicsumURL,
	}
}

// endpoints returns the fallback chain for one image: the enhanced flux
// model first, the plain endpoint second, a generic placeholder photo last.
func (s *Service) endpoints(spec Spec) []string {
	prompt := url.PathEscape(spec.Prompt)
	return []string{
		fmt.Sprintf("%s/%s?width=%d&height=%d&model=flux&enhance=true", s.pollinationsURL, prompt, spec.Width, spec.Height),
		fmt.Sprintf("%s/%s?width=%d&height=%d", s.pollinationsURL, prompt, spec.Width, spec.Height),
		fmt.Sprintf("%s/%d/%d", s.picsumURL, spec.Width, spec.Height),
	}
}

// Generate returns a data URL for the requested image. It never fails: when
// every endpoint errors the gradient placeholder is rendered locally.
func (s *Service) Generate(ctx context.Context, spec Spec) string {
	for i, endpoint := range s.endpoints(spec) {
		dataURL, err := s.fetch(ctx, endpoint)
		if err != nil {
			log.Warn().Err(err).Int("endpoint", i+1).Msg("image endpoint failed, trying next")
			continue
		}
		return dataURL
	}
	log.Warn().Str("prompt", spec.Prompt).Msg("all image endpoints failed, using gradient placeholder")
	return GradientPlaceholder(spec.Width, spec.Height)
}

func (s *Service) fetch(ctx context.Context, endpoint string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "image/*")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch image: status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return "", fmt.Errorf("read image body: %w", err)
	}
	if len(body) == 0 {
		return "", fmt.Errorf("empty image body")
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(body)), nil
}

// GenerateBatch resolves a set of images concurrently, bounded at
// batchConcurrency in-flight requests. Results are keyed by slot name, so
// completion order does not matter. Every requested key is present in the
// result.
func (s *Service) GenerateBatch(ctx context.Context, specs map[string]Spec) map[string]string {
	results := make(map[string]string, len(specs))

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		sem = make(chan struct{}, batchConcurrency)
	)
	for key, spec := range specs {
		wg.Add(1)
		go func(key string, spec Spec) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			dataURL := s.Generate(ctx, spec)
			mu.Lock()
			results[key] = dataURL
			mu.Unlock()
		}(key, spec)
	}
	wg.Wait()
	return results
}
