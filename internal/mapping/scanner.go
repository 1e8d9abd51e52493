package mapping

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var sectionHeaderPattern = regexp.MustCompile(`\[([A-Z0-9_]+)\]`)

// discoverSetupFiles mirrors the reference mapper's three-tier search: a
// car-specific generic/last.ini, falling back to the first last.ini found
// under any track folder, falling back to up to three arbitrary .ini files
// anywhere under the car directory.
func discoverSetupFiles(carDir string) ([]string, error) {
	info, err := os.Stat(carDir)
	if err != nil || !info.IsDir() {
		return nil, nil
	}

	var found []string

	genericLast := filepath.Join(carDir, "generic", "last.ini")
	if fileExists(genericLast) {
		found = append(found, genericLast)
	}

	entries, err := os.ReadDir(carDir)
	if err != nil {
		return found, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	if len(found) == 0 {
		for _, e := range entries {
			if !e.IsDir() {
				continue
			}
			candidate := filepath.Join(carDir, e.Name(), "last.ini")
			if fileExists(candidate) {
				found = append(found, candidate)
				break
			}
		}
	}

	if len(found) == 0 {
		err := filepath.WalkDir(carDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			if filepath.Ext(path) == ".ini" {
				found = append(found, path)
				if len(found) >= 3 {
					return filepath.SkipAll
				}
			}
			return nil
		})
		if err != nil {
			return found, err
		}
	}

	return found, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// readSetupText reads a setup file trying utf-8, then utf-16, then
// latin-1, matching the reference parser's fallback chain. A file that
// decodes under none of them is skipped rather than erroring the scan.
func readSetupText(path string) (string, bool) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}

	if utf8.Valid(raw) {
		return string(raw), true
	}

	if text, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder().Bytes(raw); err == nil {
		return string(text), true
	}

	if text, err := charmap.ISO8859_1.NewDecoder().Bytes(raw); err == nil {
		return string(text), true
	}

	return "", false
}

// parseSetupFile extracts section-header parameter names from a setup
// file, skipping meta sections (CAR, __EXT_PATCH, VERSION, INFO).
func parseSetupFile(path string) []string {
	text, ok := readSetupText(path)
	if !ok {
		return nil
	}

	var params []string
	for _, m := range sectionHeaderPattern.FindAllStringSubmatch(text, -1) {
		name := m[1]
		if metaSections[name] {
			continue
		}
		params = append(params, name)
	}
	return params
}
