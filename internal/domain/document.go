package domain

// Document is the whole store file: two ordered collections and two
// singleton records. It is read and rewritten wholesale on every mutation.
type Document struct {
	Projects   []Project    `json:"projects"`
	Experience []Experience `json:"experience"`
	About      About        `json:"about"`
	CV         CV           `json:"cv"`
}

// NewDocument returns an empty document with non-nil collections, so a
// freshly seeded store serializes as [] rather than null.
func NewDocument() *Document {
	return &Document{
		Projects:   []Project{},
		Experience: []Experience{},
	}
}
