package domain

// OrthographyVariant tags one of the two parallel spelling systems.
type OrthographyVariant string

const (
	// VariantListuguj is the primary orthography.
	VariantListuguj OrthographyVariant = "mm-li"
	// VariantSmithFrancis is the secondary orthography.
	VariantSmithFrancis OrthographyVariant = "mm-sf"
)

func (v OrthographyVariant) String() string { return string(v) }

func (v OrthographyVariant) IsValid() bool {
	switch v {
	case VariantListuguj, VariantSmithFrancis:
		return true
	}
	return false
}

// Legacy status tags that mark a lexeme as complete.
const (
	StatusDone = "done"
	StatusPost = "post"
)

// IsPublishedStatus reports whether a legacy status tag marks the entry as published.
func IsPublishedStatus(status string) bool {
	return status == StatusDone || status == StatusPost
}

// Attribute keys for rare optional fields carried in Subentry.Attr.
const (
	AttrBorrowedWord                   = "borrowed_word"
	AttrScientificName                 = "scientific_name"
	AttrLegacyAlternateGrammaticalForm = "legacy_alternate_grammatical_forms"
	AttrLiterally                      = "literally"
)
