package persistence

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/oksasatya/starwars-api/internal/domain/entity"
	"github.com/oksasatya/starwars-api/internal/domain/repository"
)

type CatalogRepository struct {
	q sqlx.ExtContext
}

func NewCatalogRepository(q sqlx.ExtContext) *CatalogRepository {
	return &CatalogRepository{q: q}
}

const (
	planetColumns = `id, name, population, diameter, climate, terrain`
	peopleColumns = `id, name, hair_color, skin_color, gender, homeworld_id`
)

// ListPlanets returns every planet with its residents attached.
func (r *CatalogRepository) ListPlanets(ctx context.Context) ([]entity.Planet, error) {
	planets := []entity.Planet{}
	if err := sqlx.SelectContext(ctx, r.q, &planets, `SELECT `+planetColumns+` FROM planets ORDER BY id`); err != nil {
		return nil, translate(err)
	}
	if len(planets) == 0 {
		return planets, nil
	}

	var residents []entity.People
	err := sqlx.SelectContext(ctx, r.q, &residents,
		`SELECT `+peopleColumns+` FROM people WHERE homeworld_id IS NOT NULL ORDER BY id`)
	if err != nil {
		return nil, translate(err)
	}
	byPlanet := make(map[int64][]entity.People, len(planets))
	for _, p := range residents {
		byPlanet[p.HomeworldID.Int64] = append(byPlanet[p.HomeworldID.Int64], p)
	}
	for i := range planets {
		planets[i].Residents = byPlanet[planets[i].ID]
		if planets[i].Residents == nil {
			planets[i].Residents = []entity.People{}
		}
	}
	return planets, nil
}

func (r *CatalogRepository) GetPlanet(ctx context.Context, id int64) (*entity.Planet, error) {
	p := &entity.Planet{}
	if err := sqlx.GetContext(ctx, r.q, p, r.q.Rebind(`SELECT `+planetColumns+` FROM planets WHERE id = ?`), id); err != nil {
		return nil, translate(err)
	}
	p.Residents = []entity.People{}
	err := sqlx.SelectContext(ctx, r.q, &p.Residents,
		r.q.Rebind(`SELECT `+peopleColumns+` FROM people WHERE homeworld_id = ? ORDER BY id`), id)
	if err != nil {
		return nil, translate(err)
	}
	return p, nil
}

func (r *CatalogRepository) PlanetExists(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM planets WHERE id = ?)`, id)
}

func (r *CatalogRepository) ListPeople(ctx context.Context) ([]entity.People, error) {
	people := []entity.People{}
	err := sqlx.SelectContext(ctx, r.q, &people, `SELECT `+peopleColumns+` FROM people ORDER BY id`)
	return people, translate(err)
}

func (r *CatalogRepository) GetPerson(ctx context.Context, id int64) (*entity.People, error) {
	p := &entity.People{}
	if err := sqlx.GetContext(ctx, r.q, p, r.q.Rebind(`SELECT `+peopleColumns+` FROM people WHERE id = ?`), id); err != nil {
		return nil, translate(err)
	}
	return p, nil
}

func (r *CatalogRepository) PersonExists(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM people WHERE id = ?)`, id)
}

func (r *CatalogRepository) exists(ctx context.Context, query string, id int64) (bool, error) {
	var ok bool
	if err := sqlx.GetContext(ctx, r.q, &ok, r.q.Rebind(query), id); err != nil {
		return false, translate(err)
	}
	return ok, nil
}

// UpsertPlanet is used by the seeder; the API never writes the catalog.
func (r *CatalogRepository) UpsertPlanet(ctx context.Context, p *entity.Planet) error {
	row := r.q.QueryRowxContext(ctx, r.q.Rebind(`
		INSERT INTO planets (name, population, diameter, climate, terrain)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET population = excluded.population, diameter = excluded.diameter,
			climate = excluded.climate, terrain = excluded.terrain
		RETURNING id
	`), p.Name, p.Population, p.Diameter, p.Climate, p.Terrain)
	return translate(row.Scan(&p.ID))
}

func (r *CatalogRepository) UpsertPerson(ctx context.Context, p *entity.People) error {
	row := r.q.QueryRowxContext(ctx, r.q.Rebind(`
		INSERT INTO people (name, hair_color, skin_color, gender, homeworld_id)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET hair_color = excluded.hair_color, skin_color = excluded.skin_color,
			gender = excluded.gender, homeworld_id = excluded.homeworld_id
		RETURNING id
	`), p.Name, p.HairColor, p.SkinColor, p.Gender, p.HomeworldID)
	return translate(row.Scan(&p.ID))
}

var _ repository.CatalogRepository = (*CatalogRepository)(nil)
