package media

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"

	"github.com/gobwas/glob"
)

// Default file patterns for portfolio media, matched case-insensitively
// against the file name.
const (
	DefaultImagePattern = "*.{png,jpg,jpeg,webp,avif}"
	DefaultVideoPattern = "*.{mp4,webm,mov}"
)

// Source supplies the unordered key -> resource mappings for images and videos.
type Source interface {
	Load() (images, videos map[string]string, err error)
}

// StaticSource serves fixed mappings.
type StaticSource struct {
	Images map[string]string
	Videos map[string]string
}

// Load implements Source.
func (s StaticSource) Load() (map[string]string, map[string]string, error) {
	return copyMap(s.Images), copyMap(s.Videos), nil
}

// DirSource lists the files directly under Root and exposes them below URLPrefix.
type DirSource struct {
	Root      string
	URLPrefix string

	images glob.Glob
	videos glob.Glob
}

// NewDirSource compiles the file patterns. Empty patterns fall back to the defaults.
func NewDirSource(root, urlPrefix, imagePattern, videoPattern string) (*DirSource, error) {
	if strings.TrimSpace(imagePattern) == "" {
		imagePattern = DefaultImagePattern
	}
	if strings.TrimSpace(videoPattern) == "" {
		videoPattern = DefaultVideoPattern
	}
	ig, err := glob.Compile(strings.ToLower(imagePattern), '/')
	if err != nil {
		return nil, fmt.Errorf("media: compile image pattern %q: %w", imagePattern, err)
	}
	vg, err := glob.Compile(strings.ToLower(videoPattern), '/')
	if err != nil {
		return nil, fmt.Errorf("media: compile video pattern %q: %w", videoPattern, err)
	}
	return &DirSource{
		Root:      root,
		URLPrefix: strings.TrimRight(urlPrefix, "/"),
		images:    ig,
		videos:    vg,
	}, nil
}

// Load implements Source. A missing root directory yields empty mappings.
func (s *DirSource) Load() (map[string]string, map[string]string, error) {
	images := map[string]string{}
	videos := map[string]string{}
	entries, err := os.ReadDir(s.Root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return images, videos, nil
		}
		return nil, nil, fmt.Errorf("media: read %s: %w", s.Root, err)
	}
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		name := e.Name()
		lower := strings.ToLower(name)
		src := s.URLPrefix + "/" + url.PathEscape(name)
		switch {
		case s.images.Match(lower):
			images[name] = src
		case s.videos.Match(lower):
			videos[name] = src
		}
	}
	return images, videos, nil
}

func copyMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
