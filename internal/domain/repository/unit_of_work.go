package repository

import "context"

// Repositories is the set of stores bound to one transaction.
type Repositories struct {
	Users     UserRepository
	Catalog   CatalogRepository
	Favorites FavoriteRepository
}

// UnitOfWork runs fn against transaction-bound repositories. The work is
// committed when fn returns nil and rolled back otherwise.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(r Repositories) error) error
}
