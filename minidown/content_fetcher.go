package minidown

import (
	"context"
	"errors"
	"fmt"
)

// ContentProvider fetches the markdown a link points to.
type ContentProvider interface {
	FetchContent(ctx context.Context, link Link) (string, error)
}

// ContentFetcher follows links selected in a Session.
type ContentFetcher struct {
	provider    ContentProvider
	searchRoots []string
}

// NewContentFetcher creates a ContentFetcher backed by provider.
func NewContentFetcher(provider ContentProvider, searchRoots []string) *ContentFetcher {
	return &ContentFetcher{
		provider:    provider,
		searchRoots: searchRoots,
	}
}

// OnSelect loads the linked markdown into the session and pushes history.
func (cf *ContentFetcher) OnSelect(ctx context.Context, s *Session, link Link) error {
	if s == nil {
		return ErrNilSession
	}
	if link.URL == "" {
		return ErrNotLink
	}

	content, err := cf.provider.FetchContent(ctx, link)
	if err != nil {
		return fmt.Errorf("fetch content for %q: %w", link.URL, err)
	}
	if content == "" {
		return ErrEmptyContent
	}

	source := link.URL
	if !link.IsHTTP() && link.SourceFilePath != "" {
		if resolved, rerr := ResolveMarkdownPath(link.URL, link.SourceFilePath, cf.searchRoots); rerr == nil && resolved != "" {
			source = resolved
		}
	}

	return s.SetMarkdownWithSource(content, source, true)
}

// OnSelectWithErrorDisplay is OnSelect that shows failures as a page in the session.
func (cf *ContentFetcher) OnSelectWithErrorDisplay(ctx context.Context, s *Session, link Link) {
	err := cf.OnSelect(ctx, s, link)
	if err == nil || errors.Is(err, ErrNotLink) || errors.Is(err, ErrNilSession) {
		return
	}
	_ = s.SetMarkdownWithSource(errorPage(link.URL, err), link.SourceFilePath, true)
}

func errorPage(url string, err error) string {
	return "# Error\n\nFailed to load [" + url + "](" + url + "):\n\n" + err.Error()
}
