package genhooks

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Marker is the sentinel line delimiting the generated region of the
// hooks file. The same line opens and closes the region.
const Marker = "// @@AUTOGEN@@"

// ErrMissingMarkers reports a target file without a sentinel pair.
var ErrMissingMarkers = errors.New("sentinel markers not found")

// GenerateCode renders the registration list declarations followed by
// the dispatch functions for decls. Declarations are sorted by name
// first, so output does not depend on their order in the source list.
func GenerateCode(decls []Hook) (string, error) {
	sorted := make([]Hook, len(decls))
	copy(sorted, decls)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	var b strings.Builder
	for _, h := range sorted {
		line, err := h.ListCode()
		if err != nil {
			return "", err
		}
		b.WriteString(line)
	}
	b.WriteString("\n")
	for i, h := range sorted {
		if i > 0 {
			b.WriteString("\n")
		}
		code, err := h.FireCode()
		if err != nil {
			return "", err
		}
		b.WriteString(code)
	}
	return b.String(), nil
}

// Splice replaces the region between the first occurrence of marker in
// orig and the next with code. Both marker lines are kept; a blank
// line separates the opening marker from the code. Everything outside
// the markers is untouched.
func Splice(orig, code, marker string) (string, error) {
	start := strings.Index(orig, marker)
	if start < 0 {
		return "", fmt.Errorf("%w: no %q line", ErrMissingMarkers, marker)
	}
	rest := orig[start+len(marker):]
	end := strings.Index(rest, marker)
	if end < 0 {
		return "", fmt.Errorf("%w: no closing %q line", ErrMissingMarkers, marker)
	}

	var b strings.Builder
	b.WriteString(orig[:start])
	b.WriteString(marker)
	b.WriteString("\n\n")
	b.WriteString(code)
	b.WriteString(marker)
	b.WriteString(rest[end+len(marker):])
	return b.String(), nil
}

// Render produces the full updated content of the hooks file at path.
func Render(path string, decls []Hook) (string, error) {
	orig, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read hooks file: %w", err)
	}
	code, err := GenerateCode(decls)
	if err != nil {
		return "", err
	}
	return Splice(string(orig), code, Marker)
}

// UpdateFile regenerates the hooks file at path in place. Any
// generation error aborts before the file is touched.
func UpdateFile(path string, decls []Hook) error {
	updated, err := Render(path, decls)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		return fmt.Errorf("failed to write hooks file: %w", err)
	}
	slog.Debug("spliced generated code", "path", path, "hooks", len(decls), "bytes", len(updated))
	return nil
}

// CheckFile reports whether the hooks file at path matches what
// generation would produce. A non-empty diff means the file is stale
// and 'genhooks generate' needs to be rerun.
func CheckFile(path string, decls []Hook) (string, error) {
	want, err := Render(path, decls)
	if err != nil {
		return "", err
	}
	got, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read hooks file: %w", err)
	}
	return cmp.Diff(want, string(got)), nil
}
