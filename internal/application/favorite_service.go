package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/starwars-api/internal/domain/entity"
	repo "github.com/oksasatya/starwars-api/internal/domain/repository"
)

// Favorite event types published after a committed toggle.
const (
	EventFavoriteAdded   = "favorite.added"
	EventFavoriteRemoved = "favorite.removed"
)

// EventPublisher delivers favorite events. helpers.RabbitPublisher satisfies it.
type EventPublisher interface {
	PublishJSON(ctx context.Context, msgType string, body any) error
}

// FavoriteEvent is the payload of a favorite event.
type FavoriteEvent struct {
	Type       string              `json:"type"`
	UserID     int64               `json:"user_id"`
	Email      string              `json:"email"`
	FavoriteID int64               `json:"favorite_id"`
	Kind       entity.FavoriteKind `json:"kind"`
	TargetID   int64               `json:"target_id"`
	OccurredAt time.Time           `json:"occurred_at"`
}

// FavoriteService owns the favorites join table. The acting user always
// comes from the verified identity claim, never from request input.
type FavoriteService struct {
	UoW    repo.UnitOfWork
	Events EventPublisher
	Logger *logrus.Logger
}

func NewFavoriteService(uow repo.UnitOfWork, events EventPublisher, logger *logrus.Logger) *FavoriteService {
	return &FavoriteService{UoW: uow, Events: events, Logger: logger}
}

func (s *FavoriteService) AddPlanetFavorite(ctx context.Context, identity string, planetID int64) (*UserView, error) {
	return s.Add(ctx, identity, entity.FavoritePlanet, planetID)
}

func (s *FavoriteService) RemovePlanetFavorite(ctx context.Context, identity string, planetID int64) (*UserView, error) {
	return s.Remove(ctx, identity, entity.FavoritePlanet, planetID)
}

func (s *FavoriteService) AddPersonFavorite(ctx context.Context, identity string, peopleID int64) (*UserView, error) {
	return s.Add(ctx, identity, entity.FavoritePeople, peopleID)
}

func (s *FavoriteService) RemovePersonFavorite(ctx context.Context, identity string, peopleID int64) (*UserView, error) {
	return s.Remove(ctx, identity, entity.FavoritePeople, peopleID)
}

// ListFavoritesForUser returns the acting user with all their favorites.
func (s *FavoriteService) ListFavoritesForUser(ctx context.Context, identity string) (*UserView, error) {
	var out *UserView
	err := s.UoW.Do(ctx, func(r repo.Repositories) error {
		u, err := resolveIdentity(ctx, r, identity)
		if err != nil {
			return err
		}
		out, err = loadUserView(ctx, r, u)
		return err
	})
	return out, err
}

// Add favorites the target for the acting user. The target must exist and
// must not already be a favorite.
func (s *FavoriteService) Add(ctx context.Context, identity string, kind entity.FavoriteKind, targetID int64) (*UserView, error) {
	var (
		out *UserView
		fav *entity.Favorite
	)
	err := s.UoW.Do(ctx, func(r repo.Repositories) error {
		u, err := resolveIdentity(ctx, r, identity)
		if err != nil {
			return err
		}

		exists, err := targetExists(ctx, r, kind, targetID)
		if err != nil {
			return err
		}
		if !exists {
			return newError(ErrNotFound, invalidIDMessage(kind))
		}

		_, err = r.Favorites.Find(ctx, u.ID, kind, targetID)
		if err == nil {
			return newError(ErrConflict, string(kind)+" already in favorites")
		}
		if !errors.Is(err, repo.ErrNotFound) {
			return err
		}

		fav, err = entity.NewFavorite(u.ID, kind, targetID)
		if err != nil {
			return err
		}
		if err := r.Favorites.Create(ctx, fav); err != nil {
			if errors.Is(err, repo.ErrDuplicate) {
				return newError(ErrConflict, string(kind)+" already in favorites")
			}
			return err
		}

		out, err = loadUserView(ctx, r, u)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, EventFavoriteAdded, out, fav)
	return out, nil
}

// Remove deletes the acting user's favorite for the target.
func (s *FavoriteService) Remove(ctx context.Context, identity string, kind entity.FavoriteKind, targetID int64) (*UserView, error) {
	var (
		out *UserView
		fav *entity.Favorite
	)
	err := s.UoW.Do(ctx, func(r repo.Repositories) error {
		u, err := resolveIdentity(ctx, r, identity)
		if err != nil {
			return err
		}

		fav, err = r.Favorites.Find(ctx, u.ID, kind, targetID)
		if errors.Is(err, repo.ErrNotFound) {
			return newError(ErrNotFound, invalidIDMessage(kind))
		}
		if err != nil {
			return err
		}
		if err := r.Favorites.Delete(ctx, fav.ID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return newError(ErrNotFound, invalidIDMessage(kind))
			}
			return err
		}

		out, err = loadUserView(ctx, r, u)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, EventFavoriteRemoved, out, fav)
	return out, nil
}

func (s *FavoriteService) publish(ctx context.Context, eventType string, user *UserView, fav *entity.Favorite) {
	if s.Events == nil || user == nil || fav == nil {
		return
	}
	ev := FavoriteEvent{
		Type:       eventType,
		UserID:     user.ID,
		Email:      user.Email,
		FavoriteID: fav.ID,
		Kind:       fav.Kind(),
		TargetID:   fav.TargetID(),
		OccurredAt: time.Now().UTC(),
	}
	if err := s.Events.PublishJSON(ctx, eventType, ev); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithFields(logrus.Fields{
			"event":       eventType,
			"favorite_id": fav.ID,
		}).Warn("failed to publish favorite event")
	}
}

func targetExists(ctx context.Context, r repo.Repositories, kind entity.FavoriteKind, id int64) (bool, error) {
	switch kind {
	case entity.FavoritePlanet:
		return r.Catalog.PlanetExists(ctx, id)
	case entity.FavoritePeople:
		return r.Catalog.PersonExists(ctx, id)
	default:
		return false, newError(ErrValidation, "unknown favorite kind")
	}
}

func invalidIDMessage(kind entity.FavoriteKind) string {
	return "invalid " + string(kind) + " id"
}

func loadUserView(ctx context.Context, r repo.Repositories, u *entity.User) (*UserView, error) {
	details, err := r.Favorites.ListDetailsByUser(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	v := newUserView(*u, details)
	return &v, nil
}
