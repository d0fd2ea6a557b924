package queries

import "context"

type FlavorProjectReadStore interface {
	List(ctx context.Context, filter FlavorProjectFilter) ([]*FlavorProjectView, error)
}

type FlavorProjectQueries interface {
	List(ctx context.Context, filter FlavorProjectFilter) ([]*FlavorProjectView, error)
}

type flavorProjectQueriesImpl struct {
	store FlavorProjectReadStore
}

func NewFlavorProjectQueries(store FlavorProjectReadStore) FlavorProjectQueries {
	return &flavorProjectQueriesImpl{store: store}
}

func (q *flavorProjectQueriesImpl) List(ctx context.Context, filter FlavorProjectFilter) ([]*FlavorProjectView, error) {
	return q.store.List(ctx, filter)
}
