package storage

// UploadedFile carries the bytes and metadata of one inbound multipart file,
// decoupling services from the HTTP layer.
type UploadedFile struct {
	Name        string
	ContentType string
	Data        []byte
}
