// Package fonts finds font files on disk by family name, so the editor can use a monospace face.
package fonts

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Exts are the extensions considered font files.
var Exts = []string{".ttf", ".otf"}

// Dirs returns the directories searched by Find, relative to the process cwd.
func Dirs() []string {
	return []string{"assets/fonts", "../../assets/fonts"}
}

// Scan returns relative paths of all font files under dir (e.g. "JetBrainsMono/JetBrainsMono-Regular.ttf").
// Paths use forward slashes and are sorted. A missing dir yields no paths and no error.
func Scan(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() || !isFont(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	sort.Strings(out)
	return out, err
}

func isFont(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// normalize lowercases and removes spaces, dashes, and underscores for fuzzy matching.
func normalize(s string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(s))
}

// Find returns the path of the first font under dirs whose relative path contains search (fuzzy).
// search may also be a path to an existing file. Among several matches a "Regular" face wins.
func Find(dirs []string, search string) (string, error) {
	search = strings.TrimSpace(search)
	if search == "" {
		return "", fmt.Errorf("font: empty name: %w", os.ErrNotExist)
	}
	if isFont(search) {
		if _, err := os.Stat(search); err == nil {
			return search, nil
		}
	}
	norm := normalize(strings.TrimSuffix(search, filepath.Ext(search)))
	var matches []string
	for _, base := range dirs {
		list, err := Scan(base)
		if err != nil {
			continue
		}
		for _, rel := range list {
			if strings.Contains(normalize(rel), norm) {
				matches = append(matches, filepath.Join(base, filepath.FromSlash(rel)))
			}
		}
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("font %q: %w", search, os.ErrNotExist)
	}
	for _, m := range matches {
		if strings.Contains(strings.ToLower(filepath.Base(m)), "regular") {
			return m, nil
		}
	}
	return matches[0], nil
}
