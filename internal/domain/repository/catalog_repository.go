package repository

import (
	"context"

	"github.com/oksasatya/starwars-api/internal/domain/entity"
)

// CatalogRepository reads planets and people. Writes exist only for seeding.
type CatalogRepository interface {
	ListPlanets(ctx context.Context) ([]entity.Planet, error)
	GetPlanet(ctx context.Context, id int64) (*entity.Planet, error)
	PlanetExists(ctx context.Context, id int64) (bool, error)
	ListPeople(ctx context.Context) ([]entity.People, error)
	GetPerson(ctx context.Context, id int64) (*entity.People, error)
	PersonExists(ctx context.Context, id int64) (bool, error)

	UpsertPlanet(ctx context.Context, p *entity.Planet) error
	UpsertPerson(ctx context.Context, p *entity.People) error
}
