package importer

import (
	"github.com/heartmarshall/mmo-importer/internal/domain"
	"github.com/heartmarshall/mmo-importer/internal/idalloc"
)

// orthoTexts builds zero, one or two orthography-variant records: the
// primary orthography first, then the secondary. Empty values are skipped.
func orthoTexts[T any](ids *idalloc.Allocator, li, sf string, build func(id int, variant domain.OrthographyVariant, text string) T) []T {
	out := make([]T, 0, 2)
	if li != "" {
		out = append(out, build(ids.Next(), domain.VariantListuguj, li))
	}
	if sf != "" {
		out = append(out, build(ids.Next(), domain.VariantSmithFrancis, sf))
	}
	return out
}

func newSpelling(id int, variant domain.OrthographyVariant, text string) domain.Spelling {
	return domain.Spelling{SpellingID: id, Variant: variant, Text: text}
}

func newPronunciationGuide(id int, variant domain.OrthographyVariant, text string) domain.PronunciationGuide {
	return domain.PronunciationGuide{PronunciationGuideID: id, Variant: variant, Text: text}
}

func newExampleText(id int, variant domain.OrthographyVariant, text string) domain.ExampleText {
	return domain.ExampleText{ExampleTextID: id, Variant: variant, Text: text}
}

func newAlternateFormText(id int, variant domain.OrthographyVariant, text string) domain.AlternateFormText {
	return domain.AlternateFormText{AlternateFormTextID: id, Variant: variant, Text: text}
}

func newRecording(id int, path, speaker string) domain.Recording {
	return domain.Recording{RecordingID: id, Recording: path, Speaker: speaker}
}

func newExampleRecording(id int, path, speaker string) domain.ExampleRecording {
	return domain.ExampleRecording{ExampleRecordingID: id, Recording: path, Speaker: speaker}
}

func newStatus(ids *idalloc.Allocator, status string) domain.Status {
	return domain.Status{StatusID: ids.Next(), Variant: domain.VariantListuguj, Status: status}
}

func newRelatedEntry(ids *idalloc.Allocator, text string) domain.RelatedEntry {
	return domain.RelatedEntry{RelatedEntryID: ids.Next(), UnresolvedText: text}
}

func newTranslation(ids *idalloc.Allocator, text string) domain.Translation {
	return domain.Translation{TranslationID: ids.Next(), Translation: text}
}

func newNote(ids *idalloc.Allocator, text string) domain.Note {
	return domain.Note{NoteID: ids.Next(), Note: text}
}

func newPicture(ids *idalloc.Allocator, picture string) domain.Picture {
	return domain.Picture{PictureID: ids.Next(), Picture: picture}
}

func newExampleTranslation(ids *idalloc.Allocator, text string) domain.ExampleTranslation {
	return domain.ExampleTranslation{ExampleTranslationID: ids.Next(), Text: text}
}

func newGloss(ids *idalloc.Allocator, text string) domain.Gloss {
	return domain.Gloss{GlossID: ids.Next(), Gloss: text}
}

func newCategory(ids *idalloc.Allocator, category string) domain.Category {
	return domain.Category{CategoryID: ids.Next(), Category: category}
}

func newOtherRegionalForm(ids *idalloc.Allocator, text string) domain.OtherRegionalForm {
	return domain.OtherRegionalForm{OtherRegionalFormID: ids.Next(), Text: text}
}

// attrSet accumulates optional attributes. Keys keep their first insertion
// position; a later set overwrites the value.
type attrSet struct {
	keys []string
	vals map[string]string
}

func newAttrSet() *attrSet {
	return &attrSet{vals: make(map[string]string)}
}

func (a *attrSet) set(key, value string) {
	if _, ok := a.vals[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.vals[key] = value
}

func (a *attrSet) records(ids *idalloc.Allocator) []domain.Attr {
	out := make([]domain.Attr, 0, len(a.keys))
	for _, k := range a.keys {
		out = append(out, domain.Attr{AttrID: ids.Next(), Attr: k, Value: a.vals[k]})
	}
	return out
}
