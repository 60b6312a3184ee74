package schema

// CatalogAuthorTable represents the 'catalog.author' table
type CatalogAuthorTable struct {
	Table       string
	ID          string
	FirstName   string
	LastName    string
	FullName    string
	Description string
	CreatedAt   string
	UpdatedAt   string
}

// CatalogAuthor is the schema definition for catalog.author
var CatalogAuthor = CatalogAuthorTable{
	Table:       "catalog.author",
	ID:          "id",
	FirstName:   "first_name",
	LastName:    "last_name",
	FullName:    "full_name",
	Description: "description",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}

func (t CatalogAuthorTable) Columns() []string {
	return []string{
		t.ID, t.FirstName, t.LastName, t.FullName, t.Description,
		t.CreatedAt, t.UpdatedAt,
	}
}
