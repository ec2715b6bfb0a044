// Package sourceset collates discovered source paths into labeled groups and
// renders them as the src_files array literal of a Zig build file.
package sourceset

import (
	"sort"
	"strings"

	"github.com/felixgeelhaar/srclist/internal/domain"
)

// FileEntry is a project-root-relative source path with forward-slash
// separators, e.g. "native/flecs/src/addons/json/json.c".
type FileEntry = string

// Group is a labeled run of entries rendered under one comment line.
type Group struct {
	Label   string
	Entries []FileEntry
}

// SourceSet is the collated, ordered input of a render. Building one is a
// pure function of the entry list, so rendering is byte-deterministic.
type SourceSet struct {
	Declaration string
	HelperEntry string
	EntryPrefix string
	Groups      []Group
}

// Collate partitions entries by their first path segment beneath the
// recognized source-root prefix. Entries directly under the prefix land in
// the root group, which always renders first; remaining groups follow in
// lexicographic order, as do entries within each group. Entries outside the
// prefix are dropped.
func Collate(entries []FileEntry, conv domain.Conventions) *SourceSet {
	prefix := conv.RecognizedPrefix()

	grouped := map[string][]FileEntry{}
	for _, e := range entries {
		if !strings.HasPrefix(e, prefix) {
			continue
		}
		rel := strings.TrimPrefix(e, prefix)
		label := conv.RootGroup
		if i := strings.IndexByte(rel, '/'); i >= 0 {
			label = rel[:i]
		}
		grouped[label] = append(grouped[label], e)
	}

	labels := make([]string, 0, len(grouped))
	for label := range grouped {
		if label != conv.RootGroup {
			labels = append(labels, label)
		}
	}
	sort.Strings(labels)
	if _, ok := grouped[conv.RootGroup]; ok {
		labels = append([]string{conv.RootGroup}, labels...)
	}

	set := &SourceSet{
		Declaration: conv.Declaration,
		HelperEntry: conv.HelperEntry,
		EntryPrefix: conv.EntryPrefix,
	}
	for _, label := range labels {
		members := grouped[label]
		sort.Strings(members)
		set.Groups = append(set.Groups, Group{Label: label, Entries: members})
	}
	return set
}

// FileCount returns the number of discovered entries across all groups,
// excluding the fixed helper entry.
func (s *SourceSet) FileCount() int {
	n := 0
	for _, g := range s.Groups {
		n += len(g.Entries)
	}
	return n
}

// Render produces the array-literal block: header, the fixed helper entry,
// then one commented sub-block per group. The closing delimiter carries no
// trailing newline; the patcher owns the separator after the block.
func (s *SourceSet) Render() string {
	var b strings.Builder
	b.WriteString("const " + s.Declaration + " = [_][]const u8{\n")
	b.WriteString("    \"" + s.HelperEntry + "\",\n")
	b.WriteString("\n")
	for _, g := range s.Groups {
		b.WriteString("    // " + g.Label + "\n")
		for _, e := range g.Entries {
			b.WriteString("    \"" + s.EntryPrefix + e + "\",\n")
		}
		b.WriteString("\n")
	}
	b.WriteString("};")
	return b.String()
}
