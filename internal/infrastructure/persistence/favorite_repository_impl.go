package persistence

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/oksasatya/starwars-api/internal/domain/entity"
	"github.com/oksasatya/starwars-api/internal/domain/repository"
)

type FavoriteRepository struct {
	q sqlx.ExtContext
}

func NewFavoriteRepository(q sqlx.ExtContext) *FavoriteRepository {
	return &FavoriteRepository{q: q}
}

const favoriteDetailSelect = `
	SELECT f.id, f.user_id, f.planet_id, f.people_id,
		u.email AS user_email, pl.name AS planet_name, pe.name AS people_name
	FROM favorites f
	JOIN users u ON u.id = f.user_id
	LEFT JOIN planets pl ON pl.id = f.planet_id
	LEFT JOIN people pe ON pe.id = f.people_id`

// Create inserts f after checking the one-target invariant and sets f.ID.
// A second favorite for the same target yields repository.ErrDuplicate.
func (r *FavoriteRepository) Create(ctx context.Context, f *entity.Favorite) error {
	if err := f.Validate(); err != nil {
		return err
	}
	row := r.q.QueryRowxContext(ctx, r.q.Rebind(`
		INSERT INTO favorites (user_id, planet_id, people_id)
		VALUES (?, ?, ?)
		RETURNING id
	`), f.UserID, f.PlanetID, f.PeopleID)
	return translate(row.Scan(&f.ID))
}

func (r *FavoriteRepository) Find(ctx context.Context, userID int64, kind entity.FavoriteKind, targetID int64) (*entity.Favorite, error) {
	var column string
	switch kind {
	case entity.FavoritePlanet:
		column = "planet_id"
	case entity.FavoritePeople:
		column = "people_id"
	default:
		return nil, fmt.Errorf("find favorite: %w", entity.ErrFavoriteTarget)
	}

	f := &entity.Favorite{}
	err := sqlx.GetContext(ctx, r.q, f, r.q.Rebind(
		`SELECT id, user_id, planet_id, people_id FROM favorites WHERE user_id = ? AND `+column+` = ?`),
		userID, targetID)
	if err != nil {
		return nil, translate(err)
	}
	return f, nil
}

func (r *FavoriteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.q.ExecContext(ctx, r.q.Rebind(`DELETE FROM favorites WHERE id = ?`), id)
	if err != nil {
		return translate(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *FavoriteRepository) ListDetailsByUser(ctx context.Context, userID int64) ([]entity.FavoriteDetail, error) {
	details := []entity.FavoriteDetail{}
	err := sqlx.SelectContext(ctx, r.q, &details, r.q.Rebind(favoriteDetailSelect+` WHERE f.user_id = ? ORDER BY f.id`), userID)
	return details, translate(err)
}

func (r *FavoriteRepository) ListDetailsByUsers(ctx context.Context, userIDs []int64) ([]entity.FavoriteDetail, error) {
	details := []entity.FavoriteDetail{}
	if len(userIDs) == 0 {
		return details, nil
	}
	query, args, err := sqlx.In(favoriteDetailSelect+` WHERE f.user_id IN (?) ORDER BY f.user_id, f.id`, userIDs)
	if err != nil {
		return nil, err
	}
	err = sqlx.SelectContext(ctx, r.q, &details, r.q.Rebind(query), args...)
	return details, translate(err)
}

var _ repository.FavoriteRepository = (*FavoriteRepository)(nil)
