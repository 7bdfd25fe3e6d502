// Package storage defines the persistence capability the data engine runs
// against: four named collections, each read and replaced as a whole. The
// backing substrate has no partial-write API, indexing, or cross-collection
// transactions; every mutation is a read-modify-write of one collection.
package storage

import "context"

// Collection names a record collection.
type Collection string

const (
	CollectionLists   Collection = "lists"
	CollectionItems   Collection = "items"
	CollectionHistory Collection = "history"
	CollectionStores  Collection = "stores"
)

// Store is the injectable persistence capability. Read returns the
// collection's JSON-encoded record array, or nil when the collection has
// never been written (first run). Write atomically replaces the whole
// collection.
type Store interface {
	Read(ctx context.Context, c Collection) ([]byte, error)
	Write(ctx context.Context, c Collection, data []byte) error
}
