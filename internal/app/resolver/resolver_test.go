package resolver

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/mmo-importer/internal/domain"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func entry(id int, headword string, related ...string) domain.Entry {
	sub := domain.Subentry{SubentryID: id + 1}
	for i, text := range related {
		sub.RelatedEntry = append(sub.RelatedEntry, domain.RelatedEntry{RelatedEntryID: id + 2 + i, UnresolvedText: text})
	}
	return domain.Entry{
		EntryID:  id,
		Spelling: []domain.Spelling{{SpellingID: id + 50, Variant: domain.VariantListuguj, Text: headword}},
		Subentry: []domain.Subentry{sub},
	}
}

func TestIndex_Lookup(t *testing.T) {
	t.Parallel()

	ix := BuildIndex([]domain.Entry{
		entry(100, "lame'g"),
		entry(200, "Apje'j"),
		entry(300, "lame'g"),
		{EntryID: 400},
	}, discard())
	assert.Equal(t, 2, ix.Len())

	tests := []struct {
		name  string
		text  string
		id    int
		match Match
		ok    bool
	}{
		{name: "exact", text: "lame'g", id: 100, match: MatchExact, ok: true},
		{name: "normalized case and spaces", text: "  apje'j ", id: 200, match: MatchNormalized, ok: true},
		{name: "slug", text: "lame_g", id: 100, match: MatchSlug, ok: true},
		{name: "missing", text: "nothing here", ok: false},
		{name: "empty", text: "", ok: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			id, match, ok := ix.Lookup(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.id, id)
			assert.Equal(t, tt.match, match)
		})
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	entries := []domain.Entry{
		entry(100, "foo", "bar", "missing"),
		entry(200, "bar", "Foo"),
	}
	report := Resolve(entries, BuildIndex(entries, discard()), discard())

	assert.Equal(t, 2, report.Resolved)
	assert.Equal(t, 1, report.Unresolved)
	require.Len(t, report.Links, 3)

	assert.Equal(t, Link{EntryID: 100, SubentryID: 101, RelatedEntryID: 102, Text: "bar", Resolved: true, TargetEntryID: 200, Match: MatchExact}, report.Links[0])
	assert.Equal(t, Link{EntryID: 100, SubentryID: 101, RelatedEntryID: 103, Text: "missing"}, report.Links[1])
	assert.Equal(t, 100, report.Links[2].TargetEntryID)
	assert.Equal(t, MatchNormalized, report.Links[2].Match)
}

func TestResolve_DoesNotMutateEntries(t *testing.T) {
	t.Parallel()

	entries := []domain.Entry{entry(100, "foo", "foo")}
	_ = Resolve(entries, BuildIndex(entries, discard()), discard())
	assert.Equal(t, "foo", entries[0].Subentry[0].RelatedEntry[0].UnresolvedText)
}

func TestResolve_NoLinks(t *testing.T) {
	t.Parallel()

	report := Resolve(nil, BuildIndex(nil, discard()), discard())
	assert.NotNil(t, report.Links)
	assert.Empty(t, report.Links)
}
