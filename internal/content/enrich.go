package content

import (
	"strings"
)

// #region enricher

// Enricher fills untranslated entries from a glossary. It runs between the
// audit and the virtual-user simulation so later producers see the
// augmented catalog.
type Enricher struct {
	glossary map[string]string
}

// EnrichmentStats counts what Enrich changed.
type EnrichmentStats struct {
	TranslationsAdded int      `json:"translationsAdded"`
	StillMissing      []string `json:"stillMissing,omitempty"` // "lesson/english" pairs with no glossary entry
}

// NewEnricher builds an enricher over DefaultGlossary merged with extra.
// Keys are matched case-insensitively.
func NewEnricher(extra map[string]string) *Enricher {
	g := make(map[string]string)
	for k, v := range DefaultGlossary() {
		g[normalize(k)] = v
	}
	for k, v := range extra {
		g[normalize(k)] = v
	}
	return &Enricher{glossary: g}
}

// Enrich returns an enriched copy of cat; cat itself is not modified.
func (e *Enricher) Enrich(cat Catalog) (Catalog, EnrichmentStats) {
	out := cat.Clone()
	var stats EnrichmentStats
	for li := range out.Lessons {
		l := &out.Lessons[li]
		for ei := range l.Entries {
			entry := &l.Entries[ei]
			if entry.HasHindi() {
				continue
			}
			if hindi, ok := e.glossary[normalize(entry.English)]; ok && IsDevanagari(hindi) {
				entry.Hindi = hindi
				stats.TranslationsAdded++
				continue
			}
			stats.StillMissing = append(stats.StillMissing, l.ID+"/"+entry.English)
		}
	}
	return out, stats
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// #endregion enricher
