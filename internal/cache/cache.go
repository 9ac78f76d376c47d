// Package cache persists field values as flat id=value text, one entry per
// line. The format round-trips every supported field type because values are
// written in their canonical string form and re-coerced by the registry on
// load.
package cache

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Load reads a cache file into an id -> raw value map. A missing file is not
// an error: it yields an empty map, the first-run case.
func Load(path string) (map[int]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return map[int]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	defer f.Close()

	values := map[int]string{}
	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		raw := sc.Text()
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		// Cut the raw line: only the key side tolerates whitespace. The value
		// is kept byte-for-byte so edits with leading or trailing spaces
		// survive a save/load cycle.
		key, value, ok := strings.Cut(raw, "=")
		if !ok {
			return nil, fmt.Errorf("cache line %d: missing '='", lineNo)
		}
		id, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return nil, fmt.Errorf("cache line %d: bad field id %q", lineNo, key)
		}
		values[id] = value
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read cache: %w", err)
	}
	return values, nil
}

// Save writes the full map atomically (write temp, rename), in ascending id
// order so diffs stay stable.
func Save(path string, values map[int]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir cache dir: %w", err)
	}

	ids := make([]int, 0, len(values))
	for id := range values {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var b strings.Builder
	b.WriteString("# sepdash field cache\n")
	for _, id := range ids {
		fmt.Fprintf(&b, "%d=%s\n", id, values[id])
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write cache: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace cache: %w", err)
	}
	return nil
}
