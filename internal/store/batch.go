package store

import (
	"context"
	"fmt"
)

// ResolveByIDs resolves an arbitrary-size id list against a collection by
// splitting it into ordered chunks of at most MaxIDsPerQuery ids and issuing
// one lookup per chunk. Callers pass ids already deduplicated. Documents that
// no longer exist are silently omitted, so the result holds at most len(ids)
// documents, in no particular order across chunks. A failure on any chunk
// aborts the whole resolve; no partial result is returned.
func ResolveByIDs(ctx context.Context, s Store, collection string, ids []string) ([]Doc, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	out := make([]Doc, 0, len(ids))
	for start := 0; start < len(ids); start += MaxIDsPerQuery {
		end := start + MaxIDsPerQuery
		if end > len(ids) {
			end = len(ids)
		}

		docs, err := s.QueryByIDs(ctx, collection, ids[start:end])
		if err != nil {
			return nil, fmt.Errorf("resolve %s ids: %w", collection, err)
		}
		out = append(out, docs...)
	}
	return out, nil
}
