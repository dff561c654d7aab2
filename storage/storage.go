package storage

// Storage is the blob store collaborator: documents go in as bytes, come back
// out as a downloadable URL. Handles are backend-specific (a local file path
// or a gs:// URL).
type Storage interface {
	Store(content []byte, caseID uint, docType, filename string) (string, error)
	ResolveURL(handle string) (string, bool)
	Ping() error
}

// Active is the process-wide blob store, selected from config in main.
var Active Storage
