package persistence

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/oksasatya/starwars-api/internal/domain/repository"
	"github.com/oksasatya/starwars-api/internal/infrastructure/database"
)

// UnitOfWork opens one transaction per call and hands out repositories bound
// to it.
type UnitOfWork struct {
	db *database.DB
}

func NewUnitOfWork(db *database.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

func (u *UnitOfWork) Do(ctx context.Context, fn func(r repository.Repositories) error) error {
	return u.db.InTx(ctx, func(tx *sqlx.Tx) error {
		return fn(Bind(tx))
	})
}

// Bind builds the repository set over any pool or transaction.
func Bind(q sqlx.ExtContext) repository.Repositories {
	return repository.Repositories{
		Users:     NewUserRepository(q),
		Catalog:   NewCatalogRepository(q),
		Favorites: NewFavoriteRepository(q),
	}
}

var _ repository.UnitOfWork = (*UnitOfWork)(nil)
