package importer

import (
	"fmt"
	"log/slog"

	"github.com/heartmarshall/mmo-importer/internal/domain"
	"github.com/heartmarshall/mmo-importer/internal/idalloc"
	"github.com/heartmarshall/mmo-importer/internal/legacy"
)

// Stats counts what a Converter produced and skipped.
type Stats struct {
	Entries              int
	Subentries           int
	DroppedRecordings    int
	NormalizedRecordings int
	RecordingWarnings    int
}

// Converter maps legacy lexemes to new-schema entries. Every record gets a
// fresh identifier from the injected allocator. Legacy fields are consumed
// as they are mapped, so the source tree keeps only unmapped fields.
type Converter struct {
	ids   *idalloc.Allocator
	log   *slog.Logger
	stats Stats
}

// NewConverter creates a Converter drawing identifiers from ids.
func NewConverter(ids *idalloc.Allocator, log *slog.Logger) *Converter {
	return &Converter{ids: ids, log: log}
}

// Stats returns the counters accumulated so far.
func (c *Converter) Stats() Stats { return c.stats }

// senseContext carries lexeme and part-of-speech level values into each sense.
type senseContext struct {
	lexeme       string
	note         string
	borrowedWord string
	phoneticForm string
	partOfSpeech string
}

// Lexeme converts one legacy lexeme into an Entry. Subentries are built
// (and numbered) before the entry record itself.
func (c *Converter) Lexeme(src *legacy.Object) (domain.Entry, error) {
	if _, err := src.Pop("date"); err != nil {
		return domain.Entry{}, err
	}
	name, err := src.PopString("name")
	if err != nil {
		return domain.Entry{}, err
	}
	derivedID, err := src.PopString("id")
	if err != nil {
		return domain.Entry{}, wrapLexeme(name, err)
	}
	if err := checkSlug(name, derivedID); err != nil {
		return domain.Entry{}, err
	}
	note, err := src.PopString("note")
	if err != nil {
		return domain.Entry{}, wrapLexeme(name, err)
	}
	if _, err := src.Pop("picture"); err != nil {
		return domain.Entry{}, wrapLexeme(name, err)
	}
	status, err := src.PopString("status")
	if err != nil {
		return domain.Entry{}, wrapLexeme(name, err)
	}
	explicitSf, err := src.PopTruthy("explicitSfGloss")
	if err != nil {
		return domain.Entry{}, wrapLexeme(name, err)
	}
	if explicitSf {
		return domain.Entry{}, errExplicitSfGloss(name)
	}

	subentries, err := src.GetObjects("subentries")
	if err != nil {
		return domain.Entry{}, wrapLexeme(name, err)
	}
	if len(subentries) != 1 {
		return domain.Entry{}, errSubentryCount(name, len(subentries))
	}
	subentry := subentries[0]
	parts, err := subentry.GetObjects("partsOfSpeech")
	if err != nil {
		return domain.Entry{}, wrapLexeme(name, err)
	}
	if err := checkPartsOfSpeech(name, len(parts)); err != nil {
		return domain.Entry{}, err
	}

	watson, err := src.PopString("watsonSpelling")
	if err != nil {
		return domain.Entry{}, wrapLexeme(name, err)
	}
	if watson != "" && watson != name {
		c.log.Debug("dropping watson spelling", slog.String("lexeme", derivedID), slog.String("watson_spelling", watson))
	}

	borrowedWord, _, err := popOptional(subentry, "borrowedWord")
	if err != nil {
		return domain.Entry{}, wrapLexeme(name, err)
	}
	label, err := subentry.PopTruthy("label")
	if err != nil {
		return domain.Entry{}, wrapLexeme(name, err)
	}
	if label {
		return domain.Entry{}, errSubentryLabel(name)
	}
	phoneticForm, err := subentry.PopString("phoneticForm")
	if err != nil {
		return domain.Entry{}, wrapLexeme(name, err)
	}

	senses := make([]domain.Subentry, 0, len(parts))
	for _, pos := range parts {
		posLabel, err := pos.PopString("label")
		if err != nil {
			return domain.Entry{}, wrapLexeme(name, err)
		}
		sctx := senseContext{
			lexeme:       name,
			note:         note,
			borrowedWord: borrowedWord,
			phoneticForm: phoneticForm,
			partOfSpeech: posLabel,
		}
		attrs := newAttrSet()
		items, err := pos.GetObjects("senses")
		if err != nil {
			return domain.Entry{}, wrapLexeme(name, err)
		}
		for _, item := range items {
			sense, err := c.sense(sctx, attrs, item)
			if err != nil {
				return domain.Entry{}, err
			}
			senses = append(senses, sense)
		}
	}

	entry := domain.Entry{
		EntryID:   c.ids.Next(),
		Published: domain.IsPublishedStatus(status),
		Spelling:  orthoTexts(c.ids, name, "", newSpelling),
	}
	recordings, err := subentry.PopObjects("recordings")
	if err != nil {
		return domain.Entry{}, wrapLexeme(name, err)
	}
	entry.Recording, err = convertRecordings(c, derivedID, recordings, newRecording)
	if err != nil {
		return domain.Entry{}, wrapLexeme(name, err)
	}
	entry.Subentry = senses
	entry.InternalNote = note
	entry.Status = []domain.Status{newStatus(c.ids, status)}

	c.stats.Entries++
	c.stats.Subentries += len(senses)
	c.log.Debug("lexeme converted",
		slog.String("lexeme", derivedID),
		slog.Int("entry_id", entry.EntryID),
		slog.String("status", status),
		slog.Int("subentries", len(senses)),
		slog.Any("unmapped_fields", src.Keys()),
	)
	return entry, nil
}

// sense converts one legacy sense into a Subentry. attrs is shared by all
// senses of the enclosing part of speech and accumulates across them.
func (c *Converter) sense(sctx senseContext, attrs *attrSet, src *legacy.Object) (domain.Subentry, error) {
	out := domain.Subentry{SubentryID: c.ids.Next()}
	if sctx.borrowedWord != "" {
		attrs.set(domain.AttrBorrowedWord, sctx.borrowedWord)
	}

	out.PronunciationGuide = orthoTexts(c.ids, sctx.phoneticForm, "", newPronunciationGuide)
	out.PartOfSpeech = sctx.partOfSpeech

	crossRef, err := src.PopString("crossRef")
	if err != nil {
		return out, wrapLexeme(sctx.lexeme, err)
	}
	related := ParseRelatedEntries(crossRef)
	out.RelatedEntry = make([]domain.RelatedEntry, 0, len(related))
	for _, text := range related {
		out.RelatedEntry = append(out.RelatedEntry, newRelatedEntry(c.ids, text))
	}

	definition, err := src.PopString("definition")
	if err != nil {
		return out, wrapLexeme(sctx.lexeme, err)
	}
	out.Translation = []domain.Translation{newTranslation(c.ids, definition)}

	noteItems, err := src.PopObjects("notes")
	if err != nil {
		return out, wrapLexeme(sctx.lexeme, err)
	}
	notes := make([]string, 0, len(noteItems)+1)
	for _, n := range noteItems {
		text, err := n.GetString("text")
		if err != nil {
			return out, wrapLexeme(sctx.lexeme, err)
		}
		notes = append(notes, text)
	}
	if sctx.note != "" {
		notes = append(notes, sctx.note)
	}
	out.Note = make([]domain.Note, 0, len(notes))
	for _, n := range notes {
		out.Note = append(out.Note, newNote(c.ids, n))
	}

	out.Picture = []domain.Picture{}
	picture, ok, err := popOptional(src, "picture")
	if err != nil {
		return out, wrapLexeme(sctx.lexeme, err)
	}
	if ok {
		out.Picture = append(out.Picture, newPicture(c.ids, picture))
	}

	for _, f := range []struct{ field, attr string }{
		{"scientificName", domain.AttrScientificName},
		{"table", domain.AttrLegacyAlternateGrammaticalForm},
		{"literally", domain.AttrLiterally},
	} {
		value, ok, err := popOptional(src, f.field)
		if err != nil {
			return out, wrapLexeme(sctx.lexeme, err)
		}
		if ok {
			attrs.set(f.attr, value)
		}
	}

	examples, err := src.GetObjects("examples")
	if err != nil {
		return out, wrapLexeme(sctx.lexeme, err)
	}
	out.Example = make([]domain.Example, 0, len(examples))
	for _, ex := range examples {
		example, err := c.example(sctx.lexeme, ex)
		if err != nil {
			return out, wrapLexeme(sctx.lexeme, err)
		}
		out.Example = append(out.Example, example)
	}

	glosses, err := src.PopObjects("glosses")
	if err != nil {
		return out, wrapLexeme(sctx.lexeme, err)
	}
	out.Gloss = make([]domain.Gloss, 0, len(glosses))
	for _, g := range glosses {
		text, err := g.PopString("text")
		if err != nil {
			return out, wrapLexeme(sctx.lexeme, err)
		}
		out.Gloss = append(out.Gloss, newGloss(c.ids, text))
	}

	functions, err := src.GetObjects("lexicalFunctions")
	if err != nil {
		return out, wrapLexeme(sctx.lexeme, err)
	}
	out.AlternateGrammaticalForm = make([]domain.AlternateGrammaticalForm, 0, len(functions))
	for _, fn := range functions {
		form, err := c.alternateForm(fn)
		if err != nil {
			return out, wrapLexeme(sctx.lexeme, err)
		}
		out.AlternateGrammaticalForm = append(out.AlternateGrammaticalForm, form)
	}

	domains, err := src.PopArray("semanticDomains")
	if err != nil {
		return out, wrapLexeme(sctx.lexeme, err)
	}
	out.Category = make([]domain.Category, 0, len(domains))
	for _, d := range domains {
		out.Category = append(out.Category, newCategory(c.ids, legacy.Text(d)))
	}

	variants, err := src.PopObjects("variantForms")
	if err != nil {
		return out, wrapLexeme(sctx.lexeme, err)
	}
	out.OtherRegionalForm = make([]domain.OtherRegionalForm, 0, len(variants))
	for _, v := range variants {
		label, err := v.GetString("label")
		if err != nil {
			return out, wrapLexeme(sctx.lexeme, err)
		}
		out.OtherRegionalForm = append(out.OtherRegionalForm, newOtherRegionalForm(c.ids, label))
	}

	out.Attr = attrs.records(c.ids)
	return out, nil
}

func (c *Converter) example(lexeme string, src *legacy.Object) (domain.Example, error) {
	out := domain.Example{ExampleID: c.ids.Next()}

	sentence, err := src.PopString("exampleSentence")
	if err != nil {
		return out, err
	}
	sf, err := src.PopString("exampleSf")
	if err != nil {
		return out, err
	}
	out.ExampleText = orthoTexts(c.ids, sentence, sf, newExampleText)

	english, err := src.PopString("exampleEnglish")
	if err != nil {
		return out, err
	}
	out.ExampleTranslation = []domain.ExampleTranslation{newExampleTranslation(c.ids, english)}

	recordings, err := src.PopObjects("recordings")
	if err != nil {
		return out, err
	}
	out.ExampleRecording, err = convertRecordings(c, lexeme, recordings, newExampleRecording)
	if err != nil {
		return out, err
	}
	return out, nil
}

func (c *Converter) alternateForm(src *legacy.Object) (domain.AlternateGrammaticalForm, error) {
	out := domain.AlternateGrammaticalForm{AlternateGrammaticalFormID: c.ids.Next()}

	var err error
	if out.Gloss, err = src.PopString("gloss"); err != nil {
		return out, err
	}
	if out.GrammaticalForm, err = src.PopText("label"); err != nil {
		return out, err
	}
	li, err := src.PopString("lexeme")
	if err != nil {
		return out, err
	}
	sf, err := src.PopString("sfGloss")
	if err != nil {
		return out, err
	}
	out.AlternateFormText = orthoTexts(c.ids, li, sf, newAlternateFormText)
	return out, nil
}

// popOptional consumes a field and returns its text when the value is set.
func popOptional(o *legacy.Object, key string) (string, bool, error) {
	v, err := o.Pop(key)
	if err != nil {
		return "", false, err
	}
	if !legacy.Truthy(v) {
		return "", false, nil
	}
	return legacy.Text(v), true, nil
}

func wrapLexeme(name string, err error) error {
	return fmt.Errorf("lexeme %q: %w", name, err)
}
