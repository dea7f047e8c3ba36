// Package loader locates and parses configuration documents. It only
// deals with files and syntax; semantic failures are the resolver's and
// the configuration package's business.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/mistenkt/Detox/pkg/constants"
)

// Result holds a located and parsed configuration document together
// with its origin.
type Result struct {
	// Path is the file the document was loaded from.
	Path string

	// Document is the parsed configuration, or nil when the origin was
	// a manifest without a config section.
	Document map[string]any
}

// ErrNotFound is returned by Locate when no candidate file exists.
var ErrNotFound = errors.New("no configuration file found")

// Locate searches dir for a configuration file: the dedicated rc file
// candidates first, then the package manifest as a last resort.
func Locate(dir string) (string, error) {
	candidates := append([]string{}, constants.ConfigFileNames...)
	candidates = append(candidates, constants.ManifestFileName)
	for _, name := range candidates {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", ErrNotFound
}

// Load reads and parses the configuration file at path. A manifest
// yields the document under its config key, or a nil document when the
// key is absent (the file exists, but holds no configuration).
func Load(path string) (*Result, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("configuration file does not exist: %w", err)
		}
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	if filepath.Base(path) == constants.ManifestFileName {
		return loadManifest(path, raw)
	}

	// JSON is valid YAML, so one parser covers .detoxrc, JSON and YAML
	// variants alike.
	var document map[string]any
	if err := yaml.Unmarshal(raw, &document); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %s: %w", path, err)
	}
	return &Result{Path: path, Document: document}, nil
}

// IsMissing reports whether err means the file was absent rather than
// unreadable or malformed.
func IsMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, ErrNotFound)
}

// IsManifestPath reports whether path points at a shared package
// manifest rather than a dedicated configuration file.
func IsManifestPath(path string) bool {
	return strings.HasSuffix(path, constants.ManifestFileName)
}

func loadManifest(path string, raw []byte) (*Result, error) {
	var manifest map[string]any
	if err := json.Unmarshal(raw, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	section, ok := manifest[constants.ManifestConfigKey]
	if !ok {
		return &Result{Path: path}, nil
	}
	document, ok := section.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("manifest %s has a %q section that is not an object", path, constants.ManifestConfigKey)
	}
	return &Result{Path: path, Document: document}, nil
}
