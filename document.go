package littlesearch

// DocumentID identifies a document in the corpus. For the file storage it is
// the document's file name as listed in the manifest.
type DocumentID string

type Document struct {
	ID   DocumentID `db:"name"`
	Body string     `db:"body"`
}

func NewDocument(id DocumentID, body string) Document {
	return Document{
		ID:   id,
		Body: body,
	}
}
