package sitegen

import (
	"context"
	"fmt"
	"sort"
)

// MemoryStore holds documents in memory. It stands in for remote content
// APIs and is used in tests.
type MemoryStore struct {
	collections map[string][]Document
}

// NewMemoryStore groups docs by their Collection field.
func NewMemoryStore(docs ...Document) *MemoryStore {
	s := &MemoryStore{collections: make(map[string][]Document)}
	for _, d := range docs {
		s.collections[d.Collection] = append(s.collections[d.Collection], d)
	}
	return s
}

// Collections returns the collection names, sorted.
func (s *MemoryStore) Collections(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// FetchCollection returns a copy of the named collection filtered by policy.
func (s *MemoryStore) FetchCollection(ctx context.Context, name string, policy VisibilityPolicy) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	docs, ok := s.collections[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCollectionAbsent, name)
	}

	out := make([]Document, 0, len(docs))
	for _, d := range docs {
		if policy.Allows(d.Frontmatter) {
			out = append(out, d)
		}
	}
	return out, nil
}
