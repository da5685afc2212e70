package schema

// CatalogItemTranslationTable represents the 'item_translations' table
type CatalogItemTranslationTable struct {
	Table           string
	ID              string
	ItemID          string
	Lang            string
	Title           string
	Summary         string
	ContentMarkdown string

	// ItemLangKey is the unique constraint on (ItemID, Lang).
	ItemLangKey string
}

// CatalogItemTranslation is the schema definition for item_translations
var CatalogItemTranslation = CatalogItemTranslationTable{
	Table:           "item_translations",
	ID:              "id",
	ItemID:          "item_id",
	Lang:            "lang",
	Title:           "title",
	Summary:         "summary",
	ContentMarkdown: "content_markdown",
	ItemLangKey:     "item_translations_item_id_lang_key",
}

func (t CatalogItemTranslationTable) Columns() []string {
	return []string{t.ID, t.ItemID, t.Lang, t.Title, t.Summary, t.ContentMarkdown}
}
