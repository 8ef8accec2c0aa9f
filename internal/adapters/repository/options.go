package repository

import "github.com/mergington/activities/internal/domain/model"

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithActivity adds a single activity to the catalog.
func WithActivity(name string, a model.Activity) Option {
	return func(s *MemStore) {
		if name != "" {
			s.add(name, a)
		}
	}
}

// WithCatalog adds every activity from catalog in the given order.
func WithCatalog(catalog []SeedActivity) Option {
	return func(s *MemStore) {
		for _, e := range catalog {
			if e.Name == "" {
				continue
			}
			s.add(e.Name, e.Activity)
		}
	}
}

// WithDefaultCatalog seeds the store with the school's standard catalog.
func WithDefaultCatalog() Option {
	return WithCatalog(DefaultCatalog())
}
