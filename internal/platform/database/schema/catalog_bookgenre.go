package schema

// BookGenreTable represents the 'catalog.book_genre' junction table
type BookGenreTable struct {
	Table   string
	BookID  string
	GenreID string
}

// BookGenre is the schema definition for catalog.book_genre
var BookGenre = BookGenreTable{
	Table:   "catalog.book_genre",
	BookID:  "book_id",
	GenreID: "genre_id",
}
