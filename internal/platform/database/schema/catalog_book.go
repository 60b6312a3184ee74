package schema

// CatalogBookTable represents the 'catalog.book' table
type CatalogBookTable struct {
	Table       string
	ID          string
	Title       string
	ImageURL    string
	FileURL     string
	Description string
	BestSelling string
	Recommended string
	Rating      string
	ReleasedAt  string
	AuthorID    string
	CreatedAt   string
	UpdatedAt   string
}

// CatalogBook is the schema definition for catalog.book
var CatalogBook = CatalogBookTable{
	Table:       "catalog.book",
	ID:          "id",
	Title:       "title",
	ImageURL:    "image_url",
	FileURL:     "file_url",
	Description: "description",
	BestSelling: "best_selling",
	Recommended: "recommended",
	Rating:      "rating",
	ReleasedAt:  "released_at",
	AuthorID:    "author_id",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}

func (t CatalogBookTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.ImageURL, t.FileURL, t.Description, t.BestSelling,
		t.Recommended, t.Rating, t.ReleasedAt, t.AuthorID,
		t.CreatedAt, t.UpdatedAt,
	}
}
