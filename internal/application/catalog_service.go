package application

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	repo "github.com/oksasatya/starwars-api/internal/domain/repository"
	"github.com/oksasatya/starwars-api/pkg/helpers"
)

const catalogKeyPrefix = "catalog:"

// CatalogService reads planets and people. The catalog never changes at
// runtime so serialized results are cached in Redis when a client is set.
type CatalogService struct {
	UoW      repo.UnitOfWork
	Redis    *redis.Client
	CacheTTL time.Duration
	Logger   *logrus.Logger
}

func NewCatalogService(uow repo.UnitOfWork, rdb *redis.Client, ttl time.Duration, logger *logrus.Logger) *CatalogService {
	return &CatalogService{UoW: uow, Redis: rdb, CacheTTL: ttl, Logger: logger}
}

func planetsKey() string { return catalogKeyPrefix + "planets" }
func planetKey(id int64) string { return catalogKeyPrefix + "planet:" + strconv.FormatInt(id, 10) }
func peopleKey() string { return catalogKeyPrefix + "people" }
func personKey(id int64) string { return catalogKeyPrefix + "person:" + strconv.FormatInt(id, 10) }

// Invalidate drops every cached catalog entry. Call it after the catalog
// tables are rewritten, e.g. by the seeder.
func (s *CatalogService) Invalidate(ctx context.Context) error {
	if s.Redis == nil {
		return nil
	}
	_, err := helpers.RedisDeletePrefix(ctx, s.Redis, catalogKeyPrefix)
	return err
}

func (s *CatalogService) ListPlanets(ctx context.Context) ([]PlanetView, error) {
	return cached(ctx, s, planetsKey(), func(r repo.Repositories) ([]PlanetView, error) {
		planets, err := r.Catalog.ListPlanets(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]PlanetView, 0, len(planets))
		for _, p := range planets {
			out = append(out, newPlanetView(p))
		}
		return out, nil
	})
}

func (s *CatalogService) GetPlanet(ctx context.Context, id int64) (*PlanetView, error) {
	return cached(ctx, s, planetKey(id), func(r repo.Repositories) (*PlanetView, error) {
		p, err := r.Catalog.GetPlanet(ctx, id)
		if errors.Is(err, repo.ErrNotFound) {
			return nil, newError(ErrNotFound, "planet was not found")
		}
		if err != nil {
			return nil, err
		}
		v := newPlanetView(*p)
		return &v, nil
	})
}

func (s *CatalogService) ListPeople(ctx context.Context) ([]PersonView, error) {
	return cached(ctx, s, peopleKey(), func(r repo.Repositories) ([]PersonView, error) {
		people, err := r.Catalog.ListPeople(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]PersonView, 0, len(people))
		for _, p := range people {
			out = append(out, newPersonView(p))
		}
		return out, nil
	})
}

func (s *CatalogService) GetPerson(ctx context.Context, id int64) (*PersonView, error) {
	return cached(ctx, s, personKey(id), func(r repo.Repositories) (*PersonView, error) {
		p, err := r.Catalog.GetPerson(ctx, id)
		if errors.Is(err, repo.ErrNotFound) {
			return nil, newError(ErrNotFound, "person not found")
		}
		if err != nil {
			return nil, err
		}
		v := newPersonView(*p)
		return &v, nil
	})
}

// cached is a read-through wrapper. Redis failures are logged and the store
// is queried instead; errors are never cached.
func cached[T any](ctx context.Context, s *CatalogService, key string, load func(r repo.Repositories) (T, error)) (T, error) {
	var out T
	if s.Redis != nil {
		hit, err := helpers.RedisGetJSON(ctx, s.Redis, key, &out)
		if err != nil {
			s.warn(err, key, "catalog cache read failed")
		} else if hit {
			return out, nil
		}
	}

	err := s.UoW.Do(ctx, func(r repo.Repositories) error {
		v, err := load(r)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, key, out, s.CacheTTL); err != nil {
			s.warn(err, key, "catalog cache write failed")
		}
	}
	return out, nil
}

func (s *CatalogService) warn(err error, key, msg string) {
	if s.Logger != nil {
		s.Logger.WithError(err).WithField("key", key).Warn(msg)
	}
}
