// Package config loads the optional .srclist.yaml project manifest.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/felixgeelhaar/srclist/internal/domain"
	"gopkg.in/yaml.v3"
)

const ManifestFile = ".srclist.yaml"

// Defaults are the original Flecs.NET layout; a manifest overrides them
// field by field.
func Defaults() domain.Conventions {
	return domain.Conventions{
		SourceRoot:      "native/flecs/src",
		Extension:       ".c",
		Target:          "src/Flecs.NET.Native/build.zig",
		BackupExtension: ".zig.bak",
		Declaration:     "src_files",
		HelperEntry:     "../../native/flecs_helpers.c",
		EntryPrefix:     "../../",
		RootGroup:       "core",
	}
}

// Load returns the project conventions for root. A missing manifest yields
// the defaults; unknown manifest keys are rejected so typos fail loudly.
func Load(root string) (domain.Conventions, error) {
	conv := Defaults()

	path := filepath.Join(root, ManifestFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return conv, nil
		}
		return domain.Conventions{}, fmt.Errorf("failed to read %s: %w", ManifestFile, err)
	}

	var overrides domain.Conventions
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&overrides); err != nil && err != io.EOF {
		return domain.Conventions{}, fmt.Errorf("failed to parse %s: %w", ManifestFile, err)
	}

	merge(&conv, overrides)
	return conv, nil
}

func merge(conv *domain.Conventions, o domain.Conventions) {
	if o.SourceRoot != "" {
		conv.SourceRoot = o.SourceRoot
	}
	if o.Extension != "" {
		conv.Extension = o.Extension
	}
	if o.Target != "" {
		conv.Target = o.Target
	}
	if o.BackupExtension != "" {
		conv.BackupExtension = o.BackupExtension
	}
	if o.Declaration != "" {
		conv.Declaration = o.Declaration
	}
	if o.HelperEntry != "" {
		conv.HelperEntry = o.HelperEntry
	}
	if o.EntryPrefix != "" {
		conv.EntryPrefix = o.EntryPrefix
	}
	if o.RootGroup != "" {
		conv.RootGroup = o.RootGroup
	}
}
