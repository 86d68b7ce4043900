// Package resolver links unresolved cross-reference text to converted
// entries. It runs after the import transform and never changes entries.
package resolver

import (
	"log/slog"

	"github.com/heartmarshall/mmo-importer/internal/domain"
)

// Match names the index that resolved a link.
type Match string

const (
	MatchExact      Match = "exact"
	MatchNormalized Match = "normalized"
	MatchSlug       Match = "slug"
)

// Link is one related-entry record and its resolution outcome.
type Link struct {
	EntryID        int    `json:"entry_id"                  yaml:"entry_id"                  toml:"entry_id"`
	SubentryID     int    `json:"subentry_id"               yaml:"subentry_id"               toml:"subentry_id"`
	RelatedEntryID int    `json:"related_entry_id"          yaml:"related_entry_id"          toml:"related_entry_id"`
	Text           string `json:"unresolved_text"           yaml:"unresolved_text"           toml:"unresolved_text"`
	Resolved       bool   `json:"resolved"                  yaml:"resolved"                  toml:"resolved"`
	TargetEntryID  int    `json:"target_entry_id,omitempty" yaml:"target_entry_id,omitempty" toml:"target_entry_id,omitempty"`
	Match          Match  `json:"match,omitempty"           yaml:"match,omitempty"           toml:"match,omitempty"`
}

// Report is the outcome of one resolve pass.
type Report struct {
	Resolved   int    `json:"resolved"   yaml:"resolved"   toml:"resolved"`
	Unresolved int    `json:"unresolved" yaml:"unresolved" toml:"unresolved"`
	Links      []Link `json:"links"      yaml:"links"      toml:"link"`
}

// Index maps headwords to entry ids at three strictness levels.
// The first entry claiming a key keeps it.
type Index struct {
	exact      map[string]int
	normalized map[string]int
	slug       map[string]int
}

// BuildIndex indexes entries by their primary-orthography headword.
func BuildIndex(entries []domain.Entry, log *slog.Logger) *Index {
	ix := &Index{
		exact:      make(map[string]int, len(entries)),
		normalized: make(map[string]int, len(entries)),
		slug:       make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		headword := e.Headword()
		if headword == "" {
			continue
		}
		if prev, ok := ix.exact[headword]; ok {
			log.Debug("duplicate headword",
				slog.String("headword", headword),
				slog.Int("entry_id", e.EntryID),
				slog.Int("kept_entry_id", prev),
			)
		}
		claim(ix.exact, headword, e.EntryID)
		claim(ix.normalized, domain.NormalizeText(headword), e.EntryID)
		claim(ix.slug, domain.Slugify(headword), e.EntryID)
	}
	return ix
}

// Len returns the number of distinct headwords indexed.
func (ix *Index) Len() int { return len(ix.exact) }

// Lookup finds the entry a cross-reference names. Exact text wins over
// normalized text, which wins over the slug.
func (ix *Index) Lookup(text string) (int, Match, bool) {
	if id, ok := ix.exact[text]; ok {
		return id, MatchExact, true
	}
	if id, ok := ix.normalized[domain.NormalizeText(text)]; ok {
		return id, MatchNormalized, true
	}
	if id, ok := ix.slug[domain.Slugify(text)]; ok {
		return id, MatchSlug, true
	}
	return 0, "", false
}

// Resolve looks up every related-entry record of entries in ix.
// Links that match nothing stay unresolved and are logged.
func Resolve(entries []domain.Entry, ix *Index, log *slog.Logger) Report {
	report := Report{Links: []Link{}}
	for _, e := range entries {
		for _, s := range e.Subentry {
			for _, r := range s.RelatedEntry {
				link := Link{
					EntryID:        e.EntryID,
					SubentryID:     s.SubentryID,
					RelatedEntryID: r.RelatedEntryID,
					Text:           r.UnresolvedText,
				}
				if id, match, ok := ix.Lookup(r.UnresolvedText); ok {
					link.Resolved = true
					link.TargetEntryID = id
					link.Match = match
					report.Resolved++
				} else {
					report.Unresolved++
					log.Warn("unresolved cross-reference",
						slog.String("lexeme", e.Headword()),
						slog.Int("related_entry_id", r.RelatedEntryID),
						slog.String("text", r.UnresolvedText),
					)
				}
				report.Links = append(report.Links, link)
			}
		}
	}
	log.Info("cross-references resolved",
		slog.Int("resolved", report.Resolved),
		slog.Int("unresolved", report.Unresolved),
	)
	return report
}

func claim(m map[string]int, key string, id int) {
	if key == "" {
		return
	}
	if _, ok := m[key]; !ok {
		m[key] = id
	}
}
