package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Memory is an in-memory Store used by tests and local development without a
// Firestore project. Documents are normalized through JSON so field names and
// value types behave like decoded Firestore data.
type Memory struct {
	mu   sync.RWMutex
	data map[string]map[string]map[string]any
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]map[string]map[string]any)}
}

func (m *Memory) Get(ctx context.Context, collection, id string) (Doc, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	fields, ok := m.data[collection][id]
	if !ok {
		return Doc{}, ErrNotFound
	}
	return memDoc(id, fields), nil
}

func (m *Memory) Query(ctx context.Context, collection string, q Query) ([]Doc, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	type entry struct {
		id     string
		fields map[string]any
	}

	var matched []entry
	for id, fields := range m.data[collection] {
		ok := true
		for _, flt := range q.Filters {
			hit, err := matchFilter(fields[flt.Field], flt.Op, flt.Value)
			if err != nil {
				return nil, err
			}
			if !hit {
				ok = false
				break
			}
		}
		if ok {
			matched = append(matched, entry{id: id, fields: fields})
		}
	}

	if q.OrderBy != "" {
		sort.SliceStable(matched, func(i, j int) bool {
			less := lessValue(matched[i].fields[q.OrderBy], matched[j].fields[q.OrderBy])
			if q.Desc {
				return !less && !jsonEqual(matched[i].fields[q.OrderBy], matched[j].fields[q.OrderBy])
			}
			return less
		})
	} else {
		// Deterministic order for pagination.
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].id < matched[j].id })
	}

	if q.Offset > 0 {
		if q.Offset >= len(matched) {
			matched = nil
		} else {
			matched = matched[q.Offset:]
		}
	}
	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}

	out := make([]Doc, 0, len(matched))
	for _, e := range matched {
		out = append(out, memDoc(e.id, e.fields))
	}
	return out, nil
}

func (m *Memory) QueryByIDs(ctx context.Context, collection string, ids []string) ([]Doc, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if len(ids) > MaxIDsPerQuery {
		return nil, ErrTooManyIDs
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Doc
	for _, id := range ids {
		if fields, ok := m.data[collection][id]; ok {
			out = append(out, memDoc(id, fields))
		}
	}
	return out, nil
}

func (m *Memory) Create(ctx context.Context, collection string, doc any) (string, error) {
	fields, err := toFields(doc)
	if err != nil {
		return "", fmt.Errorf("create in %s: %w", collection, err)
	}

	id := uuid.New().String()

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data[collection] == nil {
		m.data[collection] = make(map[string]map[string]any)
	}
	m.data[collection][id] = fields
	return id, nil
}

func (m *Memory) Set(ctx context.Context, collection, id string, doc any, merge bool) error {
	fields, err := toFields(doc)
	if err != nil {
		return fmt.Errorf("set %s/%s: %w", collection, id, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data[collection] == nil {
		m.data[collection] = make(map[string]map[string]any)
	}

	if merge {
		existing, ok := m.data[collection][id]
		if !ok {
			existing = make(map[string]any)
			m.data[collection][id] = existing
		}
		for k, v := range fields {
			existing[k] = v
		}
		return nil
	}

	m.data[collection][id] = fields
	return nil
}

func (m *Memory) Delete(ctx context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data[collection], id)
	return nil
}

func (m *Memory) Increment(ctx context.Context, collection, id, field string, delta int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	fields, ok := m.data[collection][id]
	if !ok {
		return ErrNotFound
	}

	current, _ := fields[field].(float64)
	fields[field] = current + float64(delta)
	return nil
}

func toFields(doc any) (map[string]any, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func memDoc(id string, fields map[string]any) Doc {
	return NewDoc(id, func(dst any) error {
		raw, err := json.Marshal(fields)
		if err != nil {
			return err
		}
		return json.Unmarshal(raw, dst)
	})
}

// matchFilter applies one filter to a stored field. Range operators follow
// Firestore semantics: documents missing the field, or holding a value of a
// different type, never match.
func matchFilter(field any, op string, want any) (bool, error) {
	switch op {
	case "==":
		return jsonEqual(field, want), nil
	case "<", "<=", ">", ">=":
		norm, err := normalize(want)
		if err != nil {
			return false, err
		}
		cmp, comparable := compareValues(field, norm)
		if !comparable {
			return false, nil
		}
		switch op {
		case "<":
			return cmp < 0, nil
		case "<=":
			return cmp <= 0, nil
		case ">":
			return cmp > 0, nil
		default:
			return cmp >= 0, nil
		}
	default:
		return false, fmt.Errorf("memory store: unsupported filter op %q", op)
	}
}

// normalize runs a typed value through JSON so it compares like stored data.
func normalize(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func compareValues(a, b any) (int, bool) {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		if !ok {
			return 0, false
		}
		return strings.Compare(av, bv), true
	case float64:
		bv, ok := b.(float64)
		if !ok {
			return 0, false
		}
		switch {
		case av < bv:
			return -1, true
		case av > bv:
			return 1, true
		default:
			return 0, true
		}
	default:
		return 0, false
	}
}

func jsonEqual(a, b any) bool {
	ra, errA := json.Marshal(a)
	rb, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return string(ra) == string(rb)
}

func lessValue(a, b any) bool {
	switch av := a.(type) {
	case string:
		bv, _ := b.(string)
		return av < bv
	case float64:
		bv, _ := b.(float64)
		return av < bv
	case bool:
		bv, _ := b.(bool)
		return !av && bv
	default:
		return false
	}
}
