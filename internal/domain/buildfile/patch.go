// Package buildfile locates and replaces the generated source-list block
// inside a hand-maintained Zig build file. It matches the block's textual
// shape rather than parsing Zig: the declaration keyword, the array-open
// tokens, lazy content, and the closing delimiter line.
package buildfile

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	// ErrPatternNotFound means the target text carries no recognizable
	// declaration block. Proceeding would corrupt unrelated content, so this
	// is a hard stop, never a silent no-op.
	ErrPatternNotFound = errors.New("declaration block not found")

	// ErrMultipleBlocks means more than one region matched; the target file
	// is expected to carry exactly one generated block.
	ErrMultipleBlocks = errors.New("multiple declaration blocks found")
)

// BlockPattern matches "const <declaration> = [_][]const u8{ ... };" lazily,
// plus any blank lines after the closing delimiter so re-patching stays
// byte-idempotent.
func BlockPattern(declaration string) *regexp.Regexp {
	return regexp.MustCompile(`(?s)const\s+` + regexp.QuoteMeta(declaration) + `\s*=\s*\[_\]\[\]const\s+u8\{.*?\n\};\n*`)
}

// Replace substitutes the single declaration block in text with block
// followed by one blank separator line, leaving the rest of the file
// byte-for-byte untouched. It returns new text; callers decide where to
// write it.
func Replace(text, block, declaration string) (string, error) {
	re := BlockPattern(declaration)
	locs := re.FindAllStringIndex(text, -1)
	switch len(locs) {
	case 0:
		return "", fmt.Errorf("%w: const %s", ErrPatternNotFound, declaration)
	case 1:
	default:
		return "", fmt.Errorf("%w: const %s matched %d times", ErrMultipleBlocks, declaration, len(locs))
	}
	loc := locs[0]
	return text[:loc[0]] + block + "\n\n" + text[loc[1]:], nil
}
