package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Firestore implements Store on a Cloud Firestore database.
type Firestore struct {
	client *firestore.Client
}

func NewFirestore(client *firestore.Client) *Firestore {
	return &Firestore{client: client}
}

// OpenFirestore connects to Firestore for the given project. When
// credentialsPath is empty, application default credentials are used.
func OpenFirestore(ctx context.Context, projectID, credentialsPath string) (*Firestore, error) {
	if projectID == "" {
		return nil, fmt.Errorf("firestore project id is required")
	}

	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("firestore connect: %w", err)
	}
	return &Firestore{client: client}, nil
}

func (f *Firestore) Close() error {
	return f.client.Close()
}

func (f *Firestore) Get(ctx context.Context, collection, id string) (Doc, error) {
	snap, err := f.client.Collection(collection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return Doc{}, ErrNotFound
	}
	if err != nil {
		return Doc{}, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	if !snap.Exists() {
		return Doc{}, ErrNotFound
	}
	return snapshotDoc(snap), nil
}

func (f *Firestore) Query(ctx context.Context, collection string, q Query) ([]Doc, error) {
	fq := f.client.Collection(collection).Query
	for _, flt := range q.Filters {
		fq = fq.Where(flt.Field, flt.Op, flt.Value)
	}
	if q.OrderBy != "" {
		dir := firestore.Asc
		if q.Desc {
			dir = firestore.Desc
		}
		fq = fq.OrderBy(q.OrderBy, dir)
	}
	if q.Offset > 0 {
		fq = fq.Offset(q.Offset)
	}
	if q.Limit > 0 {
		fq = fq.Limit(q.Limit)
	}
	return drain(fq.Documents(ctx), collection)
}

func (f *Firestore) QueryByIDs(ctx context.Context, collection string, ids []string) ([]Doc, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if len(ids) > MaxIDsPerQuery {
		return nil, ErrTooManyIDs
	}

	col := f.client.Collection(collection)
	refs := make([]*firestore.DocumentRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, col.Doc(id))
	}

	it := col.Query.Where(firestore.DocumentID, "in", refs).Documents(ctx)
	return drain(it, collection)
}

func (f *Firestore) Create(ctx context.Context, collection string, doc any) (string, error) {
	ref, _, err := f.client.Collection(collection).Add(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("create in %s: %w", collection, err)
	}
	return ref.ID, nil
}

func (f *Firestore) Set(ctx context.Context, collection, id string, doc any, merge bool) error {
	ref := f.client.Collection(collection).Doc(id)

	var err error
	if merge {
		_, err = ref.Set(ctx, doc, firestore.MergeAll)
	} else {
		_, err = ref.Set(ctx, doc)
	}
	if err != nil {
		return fmt.Errorf("set %s/%s: %w", collection, id, err)
	}
	return nil
}

func (f *Firestore) Delete(ctx context.Context, collection, id string) error {
	if _, err := f.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	return nil
}

func (f *Firestore) Increment(ctx context.Context, collection, id, field string, delta int64) error {
	_, err := f.client.Collection(collection).Doc(id).Update(ctx, []firestore.Update{
		{Path: field, Value: firestore.Increment(delta)},
	})
	if err != nil {
		return fmt.Errorf("increment %s on %s/%s: %w", field, collection, id, err)
	}
	return nil
}

func snapshotDoc(snap *firestore.DocumentSnapshot) Doc {
	return NewDoc(snap.Ref.ID, snap.DataTo)
}

func drain(it *firestore.DocumentIterator, collection string) ([]Doc, error) {
	defer it.Stop()

	var out []Doc
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("query %s: %w", collection, err)
		}
		out = append(out, snapshotDoc(snap))
	}
}
