package schema

// CatalogTagTable represents the 'tags' table
type CatalogTagTable struct {
	Table     string
	ID        string
	Slug      string
	CreatedAt string
	UpdatedAt string

	// SlugKey is the unique constraint on Slug.
	SlugKey string
}

// CatalogTag is the schema definition for tags
var CatalogTag = CatalogTagTable{
	Table:     "tags",
	ID:        "id",
	Slug:      "slug",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
	SlugKey:   "tags_slug_key",
}

func (t CatalogTagTable) Columns() []string {
	return []string{t.ID, t.Slug, t.CreatedAt, t.UpdatedAt}
}
