package core

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// PreviewLimit caps path listings so a directory full of stems cannot flood
// the preview pane.
const PreviewLimit = 64

var boolPreview = []string{"true", "false"}

var numPreview = []string{"1", "2", "4", "8", "16", "32", "64"}

// BuildPreview derives completion candidates for the text being typed into a
// field. It is a pure function of its inputs, never returns an error, and
// answers an empty list for anything it cannot make sense of.
func BuildPreview(f *Field, partial string) []string {
	if f == nil {
		return nil
	}
	switch f.Type {
	case FieldPath:
		return pathPreview(partial, PreviewLimit)
	case FieldEnum:
		out := make([]string, 0, len(f.Options))
		needle := strings.ToLower(partial)
		for _, opt := range f.Options {
			if strings.Contains(strings.ToLower(opt), needle) {
				out = append(out, opt)
			}
		}
		return out
	case FieldBool:
		return append([]string(nil), boolPreview...)
	case FieldNum:
		out := make([]string, 0, len(numPreview))
		for _, n := range numPreview {
			if strings.Contains(n, partial) {
				out = append(out, n)
			}
		}
		return out
	}
	return nil
}

// pathPreview lists the base directory implied by the typed text, filtered by
// the trailing name component. An existing path is treated as the base with
// no filter; otherwise the text splits at the last separator, defaulting to
// the current directory. Directory entries gain a trailing separator. Any
// filesystem error yields an empty list.
func pathPreview(partial string, limit int) []string {
	trimmed := strings.TrimSpace(partial)
	if trimmed == "" {
		return nil
	}

	base, filter := splitPathInput(trimmed)
	entries, err := os.ReadDir(base)
	if err != nil {
		return nil
	}

	needle := strings.ToLower(filter)
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if needle != "" && !strings.Contains(strings.ToLower(e.Name()), needle) {
			continue
		}
		full := joinDisplay(base, e.Name())
		if e.IsDir() {
			full += string(os.PathSeparator)
		}
		out = append(out, full)
	}
	sort.Strings(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// splitPathInput decides the (base directory, name filter) pair for a typed
// path. Existing paths are their own base; everything else splits on the last
// separator with "." as the fallback base.
func splitPathInput(s string) (base, filter string) {
	if _, err := os.Stat(s); err == nil {
		return s, ""
	}
	dir, name := filepath.Split(s)
	if dir == "" {
		return ".", name
	}
	return dir, name
}

// joinDisplay joins without cleaning, so a typed "./mod" keeps its "./" in
// the suggestions instead of being normalized away by filepath.Join.
func joinDisplay(base, name string) string {
	sep := string(os.PathSeparator)
	if base == "" {
		return name
	}
	if strings.HasSuffix(base, sep) {
		return base + name
	}
	return base + sep + name
}
