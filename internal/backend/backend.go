// Package backend implements the scanning and inference services the gallery
// session delegates to: a flat folder scan, an Ollama vision-language tagger
// and a persistent annotation cache.
package backend

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"fotogrid/internal/gallery"

	"k8s.io/klog/v2"
)

// Cache abstracts the annotation store for easier testing and decoupling.
type Cache interface {
	Tags(imagePath string) ([]string, error)
	SetTags(imagePath string, tags []string) error
	Description(imagePath string) (string, error)
	SetDescription(imagePath, description string) error
}

// Tagger abstracts the vision-language inference service.
type Tagger interface {
	GenerateTags(ctx context.Context, imagePath string) ([]string, error)
	Describe(ctx context.Context, imagePath string) (string, error)
}

// Service is the backend collaborator handed to the gallery session. It
// satisfies gallery.Backend.
type Service struct {
	cache  Cache
	tagger Tagger
}

var _ gallery.Backend = (*Service)(nil)

// NewService constructs a backend service around a cache and a tagger.
func NewService(cache Cache, tagger Tagger) *Service {
	return &Service{cache: cache, tagger: tagger}
}

// IsImage checks if a file name has a supported image extension.
func IsImage(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp", ".tiff", ".tif", ".svg":
		return true
	default:
		return false
	}
}

// ScanFolder lists the images directly inside folderPath (non-recursive),
// sorted by lowercase file name, with ids unique within the response. Tags
// and descriptions are pre-filled from the cache so previously annotated
// images come back annotated.
func (s *Service) ScanFolder(_ context.Context, folderPath string) ([]gallery.ScanEntry, error) {
	info, err := os.Stat(folderPath)
	if err != nil {
		return nil, fmt.Errorf("folder does not exist: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", folderPath)
	}

	dirEntries, err := os.ReadDir(folderPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var entries []gallery.ScanEntry
	for _, de := range dirEntries {
		if de.IsDir() || !IsImage(de.Name()) {
			continue
		}
		entries = append(entries, gallery.ScanEntry{
			SourcePath: filepath.Join(folderPath, de.Name()),
			Name:       de.Name(),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})

	for i := range entries {
		entries[i].ID = fmt.Sprintf("img_%d", i)
		if s.cache == nil {
			continue
		}
		tags, err := s.cache.Tags(entries[i].SourcePath)
		if err != nil {
			klog.Warningf("scan: cached tags for %s: %v", entries[i].SourcePath, err)
		} else if len(tags) > 0 {
			entries[i].Tags = tags
		}
		description, err := s.cache.Description(entries[i].SourcePath)
		if err != nil {
			klog.Warningf("scan: cached description for %s: %v", entries[i].SourcePath, err)
		} else {
			entries[i].Description = description
		}
	}
	return entries, nil
}

// GenerateTags runs inference for one image and persists the result before
// returning it.
func (s *Service) GenerateTags(ctx context.Context, sourcePath string) ([]string, error) {
	tags, err := s.tagger.GenerateTags(ctx, sourcePath)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetTags(sourcePath, tags); err != nil {
			klog.Warningf("failed to cache tags for %s: %v", sourcePath, err)
		}
	}
	return tags, nil
}

// Describe runs inference to produce a short description for one image and
// persists the result before returning it.
func (s *Service) Describe(ctx context.Context, sourcePath string) (string, error) {
	description, err := s.tagger.Describe(ctx, sourcePath)
	if err != nil {
		return "", err
	}
	if s.cache != nil {
		if err := s.cache.SetDescription(sourcePath, description); err != nil {
			klog.Warningf("failed to cache description for %s: %v", sourcePath, err)
		}
	}
	return description, nil
}
