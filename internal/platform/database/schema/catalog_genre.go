package schema

// CatalogGenreTable represents the 'catalog.genre' table
type CatalogGenreTable struct {
	Table       string
	ID          string
	Title       string
	Description string
	CreatedAt   string
	UpdatedAt   string
}

// CatalogGenre is the schema definition for catalog.genre
var CatalogGenre = CatalogGenreTable{
	Table:       "catalog.genre",
	ID:          "id",
	Title:       "title",
	Description: "description",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}

func (t CatalogGenreTable) Columns() []string {
	return []string{t.ID, t.Title, t.Description, t.CreatedAt, t.UpdatedAt}
}
