package content

import (
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// #region load

// Load returns the catalog described by cfg: lesson files under cfg.Root when
// set, otherwise the built-in sample catalog.
func Load(cfg Config) (Catalog, error) {
	if cfg.Root == "" {
		return SampleCatalog(), nil
	}
	return LoadCatalog(os.DirFS(cfg.Root), cfg.Patterns)
}

// LoadCatalog reads every lesson file matching patterns. A file may hold a
// single lesson or a {lessons: [...]} document. Lessons are ordered by ID.
func LoadCatalog(fsys fs.FS, patterns []string) (Catalog, error) {
	seen := make(map[string]bool)
	var cat Catalog
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return Catalog{}, fmt.Errorf("glob %s: %w", pattern, err)
		}
		for _, path := range matches {
			if seen[path] {
				continue
			}
			seen[path] = true
			lessons, err := readLessonFile(fsys, path)
			if err != nil {
				return Catalog{}, err
			}
			cat.Lessons = append(cat.Lessons, lessons...)
		}
	}
	sort.SliceStable(cat.Lessons, func(i, j int) bool {
		return cat.Lessons[i].ID < cat.Lessons[j].ID
	})
	return cat, nil
}

func readLessonFile(fsys fs.FS, path string) ([]Lesson, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read lesson %s: %w", path, err)
	}
	var doc struct {
		Lesson  `yaml:",inline"`
		Lessons []Lesson `yaml:"lessons"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse lesson %s: %w", path, err)
	}
	if len(doc.Lessons) > 0 {
		return doc.Lessons, nil
	}
	if doc.Lesson.ID == "" {
		return nil, fmt.Errorf("parse lesson %s: missing id", path)
	}
	return []Lesson{doc.Lesson}, nil
}

// #endregion load

// #region measures

// IsDevanagari reports whether s contains Devanagari script.
func IsDevanagari(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Devanagari, r) {
			return true
		}
	}
	return false
}

// HasHindi reports whether the entry carries a Hindi translation in Devanagari.
func (e Entry) HasHindi() bool {
	return IsDevanagari(strings.TrimSpace(e.Hindi))
}

// HindiCompleteness returns the percentage of entries with a Hindi translation.
func HindiCompleteness(cat Catalog) float64 {
	total, translated := 0, 0
	for _, l := range cat.Lessons {
		for _, e := range l.Entries {
			total++
			if e.HasHindi() {
				translated++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return 100 * float64(translated) / float64(total)
}

// Gaps lists human-readable content gaps: thin lessons and untranslated entries.
func Gaps(cat Catalog, minEntries int) []string {
	var gaps []string
	for _, l := range cat.Lessons {
		if len(l.Entries) < minEntries {
			gaps = append(gaps, fmt.Sprintf("lesson %s has %d entries (minimum %d)", l.ID, len(l.Entries), minEntries))
		}
		missing := 0
		for _, e := range l.Entries {
			if !e.HasHindi() {
				missing++
			}
		}
		if missing > 0 {
			gaps = append(gaps, fmt.Sprintf("lesson %s has %d entries without Hindi", l.ID, missing))
		}
	}
	return gaps
}

// #endregion measures
