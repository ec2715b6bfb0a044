package domain

import (
	"path/filepath"
	"strings"
)

// Conventions is the serialized representation of .srclist.yaml. It pins the
// fixed layout a project uses: where sources live, which build file carries
// the generated array, and how entries are written into it.
type Conventions struct {
	SourceRoot      string `yaml:"source_root"`      // e.g. "native/flecs/src"
	Extension       string `yaml:"extension"`        // e.g. ".c"
	Target          string `yaml:"target"`           // e.g. "src/Flecs.NET.Native/build.zig"
	BackupExtension string `yaml:"backup_extension"` // e.g. ".zig.bak"
	Declaration     string `yaml:"declaration"`      // e.g. "src_files"
	HelperEntry     string `yaml:"helper_entry"`     // e.g. "../../native/flecs_helpers.c"
	EntryPrefix     string `yaml:"entry_prefix"`     // e.g. "../../"
	RootGroup       string `yaml:"root_group"`       // label for files directly under SourceRoot
}

// RecognizedPrefix is the slash-terminated source-root prefix entries must
// carry to be rendered. Entries outside it are dropped by collation.
func (c Conventions) RecognizedPrefix() string {
	return strings.TrimSuffix(c.SourceRoot, "/") + "/"
}

// BackupTarget returns the backup sibling of the target path: the target with
// its final extension swapped for BackupExtension (build.zig -> build.zig.bak).
func (c Conventions) BackupTarget() string {
	return strings.TrimSuffix(c.Target, filepath.Ext(c.Target)) + c.BackupExtension
}
