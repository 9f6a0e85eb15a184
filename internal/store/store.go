package store

import (
	"context"
	"errors"
)

// MaxIDsPerQuery is the hard cap the backing document store places on a
// single multi-id lookup. Firestore rejects "in" queries above this size.
const MaxIDsPerQuery = 10

var (
	ErrNotFound   = errors.New("store: document not found")
	ErrTooManyIDs = errors.New("store: too many ids for a single lookup")
)

// Filter is a single field comparison applied to a collection query.
type Filter struct {
	Field string
	Op    string
	Value any
}

// Query describes a filtered, optionally ordered and paginated collection read.
type Query struct {
	Filters []Filter
	OrderBy string
	Desc    bool
	Limit   int
	Offset  int
}

// Where is shorthand for an equality filter.
func Where(field string, value any) Filter {
	return Filter{Field: field, Op: "==", Value: value}
}

// Doc is a single document returned by a Store. Decode unmarshals the
// document body into dst; a decode failure affects only this document, so
// callers can drop the bad one and keep processing the rest of a batch.
type Doc struct {
	ID     string
	decode func(dst any) error
}

// NewDoc builds a Doc from an id and a decode function. Store
// implementations use it; tests can too.
func NewDoc(id string, decode func(dst any) error) Doc {
	return Doc{ID: id, decode: decode}
}

func (d Doc) Decode(dst any) error {
	if d.decode == nil {
		return errors.New("store: empty document")
	}
	return d.decode(dst)
}

// Store is the document-store contract the backend is written against.
// All operations are single remote calls with no cross-call transaction.
type Store interface {
	// Get returns one document by id, or ErrNotFound.
	Get(ctx context.Context, collection, id string) (Doc, error)

	// Query returns the documents matching q.
	Query(ctx context.Context, collection string, q Query) ([]Doc, error)

	// QueryByIDs looks up at most MaxIDsPerQuery documents by id. Ids that no
	// longer resolve are omitted, not an error. Larger id sets go through
	// ResolveByIDs.
	QueryByIDs(ctx context.Context, collection string, ids []string) ([]Doc, error)

	// Create inserts doc under a store-assigned id and returns that id.
	Create(ctx context.Context, collection string, doc any) (string, error)

	// Set writes doc under the given id. With merge true only the provided
	// fields are touched; doc must then be a map of field names to values.
	Set(ctx context.Context, collection, id string, doc any, merge bool) error

	// Delete removes one document. Deleting a missing document is not an error.
	Delete(ctx context.Context, collection, id string) error

	// Increment atomically adds delta to a numeric field of one document.
	Increment(ctx context.Context, collection, id, field string, delta int64) error
}
