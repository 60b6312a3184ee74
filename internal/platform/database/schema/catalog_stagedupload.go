package schema

// StagedUploadTable represents the 'catalog.staged_upload' table
type StagedUploadTable struct {
	Table     string
	ID        string
	BookTitle string
	FileKey   string
	FileURL   string
	CoverKey  string
	CoverURL  string
	ExpiresAt string
	CreatedAt string
}

// StagedUpload is the schema definition for catalog.staged_upload
var StagedUpload = StagedUploadTable{
	Table:     "catalog.staged_upload",
	ID:        "id",
	BookTitle: "book_title",
	FileKey:   "file_key",
	FileURL:   "file_url",
	CoverKey:  "cover_key",
	CoverURL:  "cover_url",
	ExpiresAt: "expires_at",
	CreatedAt: "created_at",
}

func (t StagedUploadTable) Columns() []string {
	return []string{
		t.ID, t.BookTitle, t.FileKey, t.FileURL, t.CoverKey, t.CoverURL,
		t.ExpiresAt, t.CreatedAt,
	}
}
