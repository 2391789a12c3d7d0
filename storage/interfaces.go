package storage

// PageWriter is the interface any rendered-page destination must satisfy.
type PageWriter interface {
	WritePage(content []byte) error
	Path() string
}
