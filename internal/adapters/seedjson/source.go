// Package seedjson contains seed source adapters that read the static
// users.json payload, either from the local filesystem or over HTTP.
// The payload is consumed once, only when the local store is empty at
// initialize time.
package seedjson

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/example/roster/internal/models"
	"github.com/example/roster/internal/ports/secondary"
)

// maxSeedBytes bounds the seed payload. The roster seed is a small
// static file; anything larger is a misconfigured source.
const maxSeedBytes = 32 << 20

// FileSource implements secondary.SeedSource from a local JSON file.
type FileSource struct {
	Path string
}

// NewFileSource creates a seed source reading from path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// FetchUsers reads and decodes the seed file.
func (s *FileSource) FetchUsers(ctx context.Context) ([]models.RawUser, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", secondary.ErrSeedFetch, s.Path, err)
	}
	return decode(data)
}

// HTTPSource implements secondary.SeedSource with a one-shot GET of a
// static JSON resource.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// NewHTTPSource creates a seed source fetching from url with the
// default HTTP client.
func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{URL: url, Client: http.DefaultClient}
}

// FetchUsers performs the GET and decodes the response body.
func (s *HTTPSource) FetchUsers(ctx context.Context) ([]models.RawUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", secondary.ErrSeedFetch, err)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %v", secondary.ErrSeedFetch, s.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: get %s: unexpected status %s", secondary.ErrSeedFetch, s.URL, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSeedBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", secondary.ErrSeedFetch, err)
	}
	return decode(data)
}

func decode(data []byte) ([]models.RawUser, error) {
	var users []models.RawUser
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("%w: decode payload: %v", secondary.ErrSeedFetch, err)
	}
	return users, nil
}

// Ensure both adapters implement the interface
var (
	_ secondary.SeedSource = (*FileSource)(nil)
	_ secondary.SeedSource = (*HTTPSource)(nil)
)
