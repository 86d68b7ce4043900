package domain

// Entry is one converted dictionary headword in the new schema.
// Records are built once during an import run and never mutated afterwards.
type Entry struct {
	EntryID      int         `json:"entry_id"      yaml:"entry_id"      toml:"entry_id"`
	Published    bool        `json:"published"     yaml:"published"     toml:"published"`
	Spelling     []Spelling  `json:"spelling"      yaml:"spelling"      toml:"spelling"`
	Recording    []Recording `json:"recording"     yaml:"recording"     toml:"recording"`
	Subentry     []Subentry  `json:"subentry"      yaml:"subentry"      toml:"subentry"`
	InternalNote string      `json:"internal_note" yaml:"internal_note" toml:"internal_note"`
	PublicNote   string      `json:"public_note"   yaml:"public_note"   toml:"public_note"`
	Status       []Status    `json:"status"        yaml:"status"        toml:"status"`
}

// Subentry is one sense of an entry under a single part of speech.
type Subentry struct {
	SubentryID               int                        `json:"subentry_id"                yaml:"subentry_id"                toml:"subentry_id"`
	PronunciationGuide       []PronunciationGuide       `json:"pronunciation_guide"        yaml:"pronunciation_guide"        toml:"pronunciation_guide"`
	PartOfSpeech             string                     `json:"part_of_speech"             yaml:"part_of_speech"             toml:"part_of_speech"`
	RelatedEntry             []RelatedEntry             `json:"related_entry"              yaml:"related_entry"              toml:"related_entry"`
	Translation              []Translation              `json:"translation"                yaml:"translation"                toml:"translation"`
	Note                     []Note                     `json:"note"                       yaml:"note"                       toml:"note"`
	Picture                  []Picture                  `json:"picture"                    yaml:"picture"                    toml:"picture"`
	Example                  []Example                  `json:"example"                    yaml:"example"                    toml:"example"`
	Gloss                    []Gloss                    `json:"gloss"                      yaml:"gloss"                      toml:"gloss"`
	AlternateGrammaticalForm []AlternateGrammaticalForm `json:"alternate_grammatical_form" yaml:"alternate_grammatical_form" toml:"alternate_grammatical_form"`
	Category                 []Category                 `json:"category"                   yaml:"category"                   toml:"category"`
	OtherRegionalForm        []OtherRegionalForm        `json:"other_regional_form"        yaml:"other_regional_form"        toml:"other_regional_form"`
	Attr                     []Attr                     `json:"attr"                       yaml:"attr"                       toml:"attr"`
}

// Spelling is an orthography-variant record for the entry headword.
type Spelling struct {
	SpellingID int                `json:"spelling_id" yaml:"spelling_id" toml:"spelling_id"`
	Variant    OrthographyVariant `json:"variant"     yaml:"variant"     toml:"variant"`
	Text       string             `json:"text"        yaml:"text"        toml:"text"`
}

// PronunciationGuide is an orthography-variant record for the phonetic form.
type PronunciationGuide struct {
	PronunciationGuideID int                `json:"pronunciation_guide_id" yaml:"pronunciation_guide_id" toml:"pronunciation_guide_id"`
	Variant              OrthographyVariant `json:"variant"                yaml:"variant"                toml:"variant"`
	Text                 string             `json:"text"                   yaml:"text"                   toml:"text"`
}

// ExampleText is an orthography-variant record for an example sentence.
type ExampleText struct {
	ExampleTextID int                `json:"example_text_id" yaml:"example_text_id" toml:"example_text_id"`
	Variant       OrthographyVariant `json:"variant"         yaml:"variant"         toml:"variant"`
	Text          string             `json:"text"            yaml:"text"            toml:"text"`
}

// AlternateFormText is an orthography-variant record for an alternate form.
type AlternateFormText struct {
	AlternateFormTextID int                `json:"alternate_form_text_id" yaml:"alternate_form_text_id" toml:"alternate_form_text_id"`
	Variant             OrthographyVariant `json:"variant"                yaml:"variant"                toml:"variant"`
	Text                string             `json:"text"                   yaml:"text"                   toml:"text"`
}

// Recording references an audio file of the headword.
type Recording struct {
	RecordingID int    `json:"recording_id" yaml:"recording_id" toml:"recording_id"`
	Recording   string `json:"recording"    yaml:"recording"    toml:"recording"`
	Speaker     string `json:"speaker"      yaml:"speaker"      toml:"speaker"`
}

// ExampleRecording references an audio file of an example sentence.
type ExampleRecording struct {
	ExampleRecordingID int    `json:"example_recording_id" yaml:"example_recording_id" toml:"example_recording_id"`
	Recording          string `json:"recording"            yaml:"recording"            toml:"recording"`
	Speaker            string `json:"speaker"              yaml:"speaker"              toml:"speaker"`
}

// Status is the editorial status of an entry.
type Status struct {
	StatusID int                `json:"status_id" yaml:"status_id" toml:"status_id"`
	Variant  OrthographyVariant `json:"variant"   yaml:"variant"   toml:"variant"`
	Status   string             `json:"status"    yaml:"status"    toml:"status"`
	Details  string             `json:"details"   yaml:"details"   toml:"details"`
}

// RelatedEntry is a cross-reference that has not been resolved to an entry id.
type RelatedEntry struct {
	RelatedEntryID int    `json:"related_entry_id" yaml:"related_entry_id" toml:"related_entry_id"`
	UnresolvedText string `json:"unresolved_text"  yaml:"unresolved_text"  toml:"unresolved_text"`
}

type Translation struct {
	TranslationID int    `json:"translation_id" yaml:"translation_id" toml:"translation_id"`
	Translation   string `json:"translation"    yaml:"translation"    toml:"translation"`
}

type Note struct {
	NoteID int    `json:"note_id" yaml:"note_id" toml:"note_id"`
	Note   string `json:"note"    yaml:"note"    toml:"note"`
}

type Picture struct {
	PictureID int    `json:"picture_id" yaml:"picture_id" toml:"picture_id"`
	Picture   string `json:"picture"    yaml:"picture"    toml:"picture"`
}

// Example is a usage sentence with its translation and recordings.
type Example struct {
	ExampleID          int                  `json:"example_id"          yaml:"example_id"          toml:"example_id"`
	ExampleText        []ExampleText        `json:"example_text"        yaml:"example_text"        toml:"example_text"`
	ExampleTranslation []ExampleTranslation `json:"example_translation" yaml:"example_translation" toml:"example_translation"`
	ExampleRecording   []ExampleRecording   `json:"example_recording"   yaml:"example_recording"   toml:"example_recording"`
}

type ExampleTranslation struct {
	ExampleTranslationID int    `json:"example_translation_id" yaml:"example_translation_id" toml:"example_translation_id"`
	Text                 string `json:"text"                   yaml:"text"                   toml:"text"`
}

type Gloss struct {
	GlossID int    `json:"gloss_id" yaml:"gloss_id" toml:"gloss_id"`
	Gloss   string `json:"gloss"    yaml:"gloss"    toml:"gloss"`
}

// AlternateGrammaticalForm is an inflected or derived form (a legacy lexical function).
type AlternateGrammaticalForm struct {
	AlternateGrammaticalFormID int                 `json:"alternate_grammatical_form_id" yaml:"alternate_grammatical_form_id" toml:"alternate_grammatical_form_id"`
	Gloss                      string              `json:"gloss"                         yaml:"gloss"                         toml:"gloss"`
	GrammaticalForm            string              `json:"grammatical_form"              yaml:"grammatical_form"              toml:"grammatical_form"`
	AlternateFormText          []AlternateFormText `json:"alternate_form_text"           yaml:"alternate_form_text"           toml:"alternate_form_text"`
}

type Category struct {
	CategoryID int    `json:"category_id" yaml:"category_id" toml:"category_id"`
	Category   string `json:"category"    yaml:"category"    toml:"category"`
}

type OtherRegionalForm struct {
	OtherRegionalFormID int    `json:"other_regional_form_id" yaml:"other_regional_form_id" toml:"other_regional_form_id"`
	Text                string `json:"text"                   yaml:"text"                   toml:"text"`
}

// Attr is a key/value pair for optional or rare fields.
type Attr struct {
	AttrID int    `json:"attr_id" yaml:"attr_id" toml:"attr_id"`
	Attr   string `json:"attr"    yaml:"attr"    toml:"attr"`
	Value  string `json:"value"   yaml:"value"   toml:"value"`
}

// Headword returns the primary-orthography spelling of the entry, or "".
func (e Entry) Headword() string {
	for _, s := range e.Spelling {
		if s.Variant == VariantListuguj {
			return s.Text
		}
	}
	return ""
}

// IDs returns every identifier carried by the entry and its nested records,
// in document order.
func (e Entry) IDs() []int {
	ids := []int{e.EntryID}
	for _, s := range e.Spelling {
		ids = append(ids, s.SpellingID)
	}
	for _, r := range e.Recording {
		ids = append(ids, r.RecordingID)
	}
	for _, s := range e.Subentry {
		ids = append(ids, s.IDs()...)
	}
	for _, s := range e.Status {
		ids = append(ids, s.StatusID)
	}
	return ids
}

// IDs returns every identifier carried by the subentry and its nested records.
func (s Subentry) IDs() []int {
	ids := []int{s.SubentryID}
	for _, p := range s.PronunciationGuide {
		ids = append(ids, p.PronunciationGuideID)
	}
	for _, r := range s.RelatedEntry {
		ids = append(ids, r.RelatedEntryID)
	}
	for _, t := range s.Translation {
		ids = append(ids, t.TranslationID)
	}
	for _, n := range s.Note {
		ids = append(ids, n.NoteID)
	}
	for _, p := range s.Picture {
		ids = append(ids, p.PictureID)
	}
	for _, ex := range s.Example {
		ids = append(ids, ex.ExampleID)
		for _, t := range ex.ExampleText {
			ids = append(ids, t.ExampleTextID)
		}
		for _, t := range ex.ExampleTranslation {
			ids = append(ids, t.ExampleTranslationID)
		}
		for _, r := range ex.ExampleRecording {
			ids = append(ids, r.ExampleRecordingID)
		}
	}
	for _, g := range s.Gloss {
		ids = append(ids, g.GlossID)
	}
	for _, af := range s.AlternateGrammaticalForm {
		ids = append(ids, af.AlternateGrammaticalFormID)
		for _, t := range af.AlternateFormText {
			ids = append(ids, t.AlternateFormTextID)
		}
	}
	for _, c := range s.Category {
		ids = append(ids, c.CategoryID)
	}
	for _, f := range s.OtherRegionalForm {
		ids = append(ids, f.OtherRegionalFormID)
	}
	for _, a := range s.Attr {
		ids = append(ids, a.AttrID)
	}
	return ids
}
