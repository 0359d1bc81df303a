package minidown

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

var (
	// ErrDirectoryTraversal is returned when a link points outside allowed locations.
	ErrDirectoryTraversal = errors.New("directory traversal not allowed")
	// ErrFileNotFound is returned when no candidate file exists.
	ErrFileNotFound = errors.New("file not found")
)

var sensitiveDirs = []string{"etc", "var", "usr", "sys", "proc", "root"}

// ResolveMarkdownPath resolves a link target to a file path or URL.
//
// HTTP(S) URLs are returned unchanged. Relative targets are tried next to
// sourceFilePath first and then under each search root in order.
func ResolveMarkdownPath(linkURL, sourceFilePath string, searchRoots []string) (string, error) {
	if linkURL == "" {
		return "", nil
	}
	if isHTTPURL(linkURL) {
		return linkURL, nil
	}
	if escapesSandbox(linkURL) {
		return "", ErrDirectoryTraversal
	}

	if filepath.IsAbs(linkURL) {
		if fileExists(linkURL) {
			return linkURL, nil
		}
		return "", ErrFileNotFound
	}

	var candidates []string
	if sourceFilePath != "" && !isHTTPURL(sourceFilePath) {
		candidates = append(candidates, filepath.Join(filepath.Dir(sourceFilePath), linkURL))
	}
	for _, root := range searchRoots {
		if root != "" {
			candidates = append(candidates, filepath.Join(root, linkURL))
		}
	}
	for _, c := range candidates {
		if fileExists(c) {
			return filepath.Clean(c), nil
		}
	}
	return "", ErrFileNotFound
}

func isHTTPURL(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

// escapesSandbox rejects absolute paths into system directories, relative
// paths climbing more than one level, and relative paths naming a system
// directory (any segment once the path climbs out with "..").
func escapesSandbox(path string) bool {
	cleaned := filepath.ToSlash(filepath.Clean(path))

	if filepath.IsAbs(path) {
		// /var is allowed: temp dirs live there on macOS.
		first, _, _ := strings.Cut(strings.TrimPrefix(cleaned, "/"), "/")
		return first != "var" && slices.Contains(sensitiveDirs, first)
	}

	parts := strings.Split(cleaned, "/")
	ups := 0
	for _, p := range parts {
		if p != ".." {
			break
		}
		ups++
	}
	if ups > 1 {
		return true
	}

	// below a parent reference every segment counts, the last one included
	segments := strings.Split(filepath.ToSlash(path), "/")
	if ups == 0 {
		segments = segments[:len(segments)-1]
	}
	for _, p := range segments {
		if slices.Contains(sensitiveDirs, p) {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
