package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bobmcallan/consilio/internal/common"
)

// ImageCache manages on-disk caching of rendered allocation charts. One
// chart is kept per draft; rendering a new one replaces the old.
type ImageCache struct {
	dir    string
	logger *common.Logger
}

// NewImageCache creates an ImageCache that stores images under dir.
func NewImageCache(dir string, logger *common.Logger) *ImageCache {
	if err := os.MkdirAll(dir, 0755); err != nil {
		logger.Warn().Err(err).Str("dir", dir).Msg("Failed to create image cache directory")
	}
	return &ImageCache{dir: dir, logger: logger}
}

// Put writes image data to disk and returns the absolute file path.
// Older charts for the same draft are removed first.
func (c *ImageCache) Put(name string, data []byte) (string, error) {
	c.cleanOld(name)

	path := filepath.Join(c.dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write image %s: %w", name, err)
	}

	c.logger.Debug().Str("name", name).Int("bytes", len(data)).Msg("Cached chart image")

	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}

// Get reads a cached image from disk.
func (c *ImageCache) Get(name string) ([]byte, bool) {
	data, err := os.ReadFile(filepath.Join(c.dir, name))
	if err != nil {
		return nil, false
	}
	return data, true
}

// ImageName generates a cache filename for a draft allocation chart.
func ImageName(draftID string) string {
	ts := time.Now().Format("20060102-1504")
	return draftID + "-allocation-" + ts + ".png"
}

// cleanOld removes older images with the same draft prefix.
func (c *ImageCache) cleanOld(name string) {
	prefix := ""
	if idx := strings.LastIndex(name, "-allocation-"); idx >= 0 {
		prefix = name[:idx+len("-allocation-")]
	}
	if prefix == "" {
		return
	}

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return
	}

	var matches []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), prefix) && e.Name() != name {
			matches = append(matches, e.Name())
		}
	}
	sort.Strings(matches)

	for _, m := range matches {
		if err := os.Remove(filepath.Join(c.dir, m)); err != nil {
			c.logger.Debug().Err(err).Str("name", m).Msg("Failed to remove stale chart image")
		}
	}
}
