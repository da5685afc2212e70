package schema

// CatalogItemTable represents the 'items' table
type CatalogItemTable struct {
	Table         string
	ID            string
	Slug          string
	Status        string
	CoverImageURL string
	RepoURL       string
	DemoURL       string
	PublishedAt   string
	CreatedAt     string
	UpdatedAt     string

	// SlugKey is the unique constraint on Slug.
	SlugKey string
}

// CatalogItem is the schema definition for items
var CatalogItem = CatalogItemTable{
	Table:         "items",
	ID:            "id",
	Slug:          "slug",
	Status:        "status",
	CoverImageURL: "cover_image_url",
	RepoURL:       "repo_url",
	DemoURL:       "demo_url",
	PublishedAt:   "published_at",
	CreatedAt:     "created_at",
	UpdatedAt:     "updated_at",
	SlugKey:       "items_slug_key",
}

func (t CatalogItemTable) Columns() []string {
	return []string{t.ID, t.Slug, t.Status, t.CoverImageURL, t.RepoURL, t.DemoURL, t.PublishedAt, t.CreatedAt, t.UpdatedAt}
}
