package repository

import (
	"context"

	"github.com/oksasatya/starwars-api/internal/domain/entity"
)

// FavoriteRepository stores the user/catalog join rows.
type FavoriteRepository interface {
	Create(ctx context.Context, f *entity.Favorite) error
	Find(ctx context.Context, userID int64, kind entity.FavoriteKind, targetID int64) (*entity.Favorite, error)
	Delete(ctx context.Context, id int64) error
	ListDetailsByUser(ctx context.Context, userID int64) ([]entity.FavoriteDetail, error)
	ListDetailsByUsers(ctx context.Context, userIDs []int64) ([]entity.FavoriteDetail, error)
}
