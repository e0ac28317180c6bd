package application

import (
	"context"
	"errors"

	"github.com/oksasatya/starwars-api/internal/domain/entity"
	repo "github.com/oksasatya/starwars-api/internal/domain/repository"
)

// UserService is the read side of the identity store.
type UserService struct {
	UoW repo.UnitOfWork
}

func NewUserService(uow repo.UnitOfWork) *UserService {
	return &UserService{UoW: uow}
}

func (s *UserService) List(ctx context.Context) ([]UserView, error) {
	var out []UserView
	err := s.UoW.Do(ctx, func(r repo.Repositories) error {
		users, err := r.Users.List(ctx)
		if err != nil {
			return err
		}
		ids := make([]int64, 0, len(users))
		for _, u := range users {
			ids = append(ids, u.ID)
		}
		details, err := r.Favorites.ListDetailsByUsers(ctx, ids)
		if err != nil {
			return err
		}
		byUser := make(map[int64][]entity.FavoriteDetail, len(users))
		for _, d := range details {
			byUser[d.UserID] = append(byUser[d.UserID], d)
		}
		out = make([]UserView, 0, len(users))
		for _, u := range users {
			out = append(out, newUserView(u, byUser[u.ID]))
		}
		return nil
	})
	return out, err
}

func (s *UserService) Get(ctx context.Context, id int64) (*UserView, error) {
	var out *UserView
	err := s.UoW.Do(ctx, func(r repo.Repositories) error {
		u, err := r.Users.GetByID(ctx, id)
		if errors.Is(err, repo.ErrNotFound) {
			return newError(ErrNotFound, "user not found")
		}
		if err != nil {
			return err
		}
		out, err = loadUserView(ctx, r, u)
		return err
	})
	return out, err
}
