package registry

import (
	"fmt"

	"github.com/suparena/tablestore/storagemodels"
)

// ReaderFunc projects a raw table entity into a typed object.
type ReaderFunc func(e *storagemodels.Entity) (interface{}, error)

// readerRegistry holds the mapping from an entity kind (like "PL", "DR", etc.) to its reader.
var readerRegistry = make(map[string]ReaderFunc)

// RegisterReader registers a reader for a given entity kind.
// If a reader is already registered for the given kind, it panics to prevent accidental overrides.
func RegisterReader(kind string, fn ReaderFunc) {
	if _, exists := readerRegistry[kind]; exists {
		panic(fmt.Sprintf("reader registry: reader for kind %q already registered", kind))
	}
	readerRegistry[kind] = fn
}

// GetReader returns the registered reader for the given entity kind.
// If no reader is registered, it returns an error.
func GetReader(kind string) (ReaderFunc, error) {
	fn, ok := readerRegistry[kind]
	if !ok {
		return nil, fmt.Errorf("reader registry: no reader registered for kind %q", kind)
	}
	return fn, nil
}
