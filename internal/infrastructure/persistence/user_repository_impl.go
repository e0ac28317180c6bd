package persistence

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/oksasatya/starwars-api/internal/domain/entity"
	"github.com/oksasatya/starwars-api/internal/domain/repository"
)

type UserRepository struct {
	q sqlx.ExtContext
}

// NewUserRepository binds the repository to a pool or a transaction.
func NewUserRepository(q sqlx.ExtContext) *UserRepository {
	return &UserRepository{q: q}
}

const userColumns = `id, email, password, is_active`

func (r *UserRepository) List(ctx context.Context) ([]entity.User, error) {
	users := []entity.User{}
	err := sqlx.SelectContext(ctx, r.q, &users, `SELECT `+userColumns+` FROM users ORDER BY id`)
	return users, translate(err)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	u := &entity.User{}
	err := sqlx.GetContext(ctx, r.q, u, r.q.Rebind(`SELECT `+userColumns+` FROM users WHERE id = ?`), id)
	if err != nil {
		return nil, translate(err)
	}
	return u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u := &entity.User{}
	err := sqlx.GetContext(ctx, r.q, u, r.q.Rebind(`SELECT `+userColumns+` FROM users WHERE email = ?`), email)
	if err != nil {
		return nil, translate(err)
	}
	return u, nil
}

// Upsert inserts the user or refreshes password and is_active for an
// existing email. It sets u.ID.
func (r *UserRepository) Upsert(ctx context.Context, u *entity.User) error {
	row := r.q.QueryRowxContext(ctx, r.q.Rebind(`
		INSERT INTO users (email, password, is_active)
		VALUES (?, ?, ?)
		ON CONFLICT (email) DO UPDATE SET password = excluded.password, is_active = excluded.is_active
		RETURNING id
	`), u.Email, u.Password, u.IsActive)
	return translate(row.Scan(&u.ID))
}

var _ repository.UserRepository = (*UserRepository)(nil)
