package storage

import (
	"github.com/isabella232/ducktape/internal/domain"
)

// Storage persists and loads the completed results of a session. The test
// runner saves a collection when the run finishes; the report commands load
// it back.
type Storage interface {
	Save(results *domain.ResultCollection) error
	Load() (*domain.ResultCollection, error)
}

// JSONStorage stores the collection as results.json in the session results
// directory.
type JSONStorage struct {
	path string
}

// NewJSONStorage returns a Storage backed by the given results file path.
func NewJSONStorage(path string) *JSONStorage {
	return &JSONStorage{path: path}
}
