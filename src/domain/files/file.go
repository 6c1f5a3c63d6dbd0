package files

// FileRecord is a single file of the flat store.
// ContentType is derived from the name and never persisted.
type FileRecord struct {
	Name        string `json:"filename"`
	Content     []byte `json:"-"`
	ContentType string `json:"contentType"`
}

// Size returns the content length in bytes
func (f FileRecord) Size() int64 {
	return int64(len(f.Content))
}

// Envelope is the wire form of a FileRecord for base64 read responses.
// Content holds the standard, padded base64 encoding of the file bytes.
type Envelope struct {
	Content  string `json:"content"`
	Filename string `json:"filename"`
}
