package loaders

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/boolean-maybe/minidown/minidown"
)

// FileHTTP loads markdown from local files and HTTP(S) URLs. It implements
// minidown.ContentProvider.
type FileHTTP struct {
	// SearchRoots are extra directories to try when resolving relative links.
	SearchRoots []string

	// Client is used for HTTP(S) requests; if nil, http.DefaultClient is used.
	Client *http.Client
}

// Load reads markdown from a file path, an HTTP(S) URL, or stdin ("-").
func (f *FileHTTP) Load(ctx context.Context, location string) (string, error) {
	switch {
	case location == "-":
		return f.read(os.Stdin)
	case isHTTP(location):
		return f.fetchFromWeb(ctx, location)
	default:
		return f.fetchFromLocal(location)
	}
}

func (f *FileHTTP) FetchContent(ctx context.Context, link minidown.Link) (string, error) {
	if link.URL == "" {
		return "", nil
	}

	resolved, err := minidown.ResolveMarkdownPath(link.URL, link.SourceFilePath, f.SearchRoots)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %q: %w", link.URL, err)
	}

	if isHTTP(resolved) {
		return f.fetchFromWeb(ctx, resolved)
	}
	return f.fetchFromLocal(resolved)
}

func (f *FileHTTP) fetchFromWeb(ctx context.Context, url string) (content string, err error) {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close response body: %w", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("server returned non-200 status: %d", resp.StatusCode)
	}
	return f.read(resp.Body)
}

func (f *FileHTTP) fetchFromLocal(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read local file: %w", err)
	}
	return string(content), nil
}

func (f *FileHTTP) read(r io.Reader) (string, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read content: %w", err)
	}
	return string(body), nil
}

func isHTTP(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
