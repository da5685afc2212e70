package schema

// CatalogItemTagTable represents the 'item_tags' junction table
type CatalogItemTagTable struct {
	Table  string
	ItemID string
	TagID  string
}

// CatalogItemTag is the schema definition for item_tags
var CatalogItemTag = CatalogItemTagTable{
	Table:  "item_tags",
	ItemID: "item_id",
	TagID:  "tag_id",
}

func (t CatalogItemTagTable) Columns() []string {
	return []string{t.ItemID, t.TagID}
}
