package skins

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ManifestFile is the manifest name looked up at the root of a skin FS.
const ManifestFile = "manifest.yaml"

type manifest struct {
	Skins []manifestEntry `yaml:"skins"`
}

type manifestEntry struct {
	ID          string `yaml:"id"`
	Kind        Kind   `yaml:"kind"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	File        string `yaml:"file"`
	Subject     string `yaml:"subject"`
}

func parseManifest(data []byte) (*manifest, error) {
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Join(ErrInvalidManifest, err)
	}
	if len(m.Skins) == 0 {
		return nil, fmt.Errorf("%w: no skins declared", ErrInvalidManifest)
	}

	seen := make(map[Style]bool, len(m.Skins))
	for i, e := range m.Skins {
		style, ok := ParseStyle(e.ID)
		if !ok {
			return nil, fmt.Errorf("%w: entry %d: %w %q", ErrInvalidManifest, i, ErrUnknownStyle, e.ID)
		}
		if style.Kind() != e.Kind {
			return nil, fmt.Errorf("%w: entry %d: style %q is a %s skin, declared as %q", ErrInvalidManifest, i, style, style.Kind(), e.Kind)
		}
		if e.File == "" {
			return nil, fmt.Errorf("%w: entry %d: file is required", ErrInvalidManifest, i)
		}
		if e.Kind == KindEmail && e.Subject == "" {
			return nil, fmt.Errorf("%w: entry %d: email skin %q needs a subject", ErrInvalidManifest, i, style)
		}
		if seen[style] {
			return nil, fmt.Errorf("%w: duplicate style %q", ErrInvalidManifest, style)
		}
		seen[style] = true
	}
	return &m, nil
}
