package schema

// CatalogTagTranslationTable represents the 'tag_translations' table
type CatalogTagTranslationTable struct {
	Table string
	ID    string
	TagID string
	Lang  string
	Name  string

	// TagLangKey is the unique constraint on (TagID, Lang).
	TagLangKey string
}

// CatalogTagTranslation is the schema definition for tag_translations
var CatalogTagTranslation = CatalogTagTranslationTable{
	Table:      "tag_translations",
	ID:         "id",
	TagID:      "tag_id",
	Lang:       "lang",
	Name:       "name",
	TagLangKey: "tag_translations_tag_id_lang_key",
}

func (t CatalogTagTranslationTable) Columns() []string {
	return []string{t.ID, t.TagID, t.Lang, t.Name}
}
