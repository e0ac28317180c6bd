// Package testutil builds migrated SQLite stores and fixtures for tests.
package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/starwars-api/internal/domain/entity"
	"github.com/oksasatya/starwars-api/internal/infrastructure/database"
	"github.com/oksasatya/starwars-api/internal/infrastructure/persistence"
	"github.com/oksasatya/starwars-api/pkg/helpers"
)

// NewDB opens a fresh SQLite file under t.TempDir and applies the schema.
func NewDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.Open(context.Background(), database.Options{
		SQLitePath: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate(nil))
	return db
}

// Fixtures is the seeded data most tests work against.
type Fixtures struct {
	Tatooine entity.Planet
	Alderaan entity.Planet
	Luke     entity.People
	Leia     entity.People
	Yoda     entity.People
	User     entity.User
	Other    entity.User
	Inactive entity.User
}

// Passwords used by the seeded users.
const (
	UserPassword  = "x"
	OtherPassword = "other-password"
)

// Seed inserts two planets, three people and three users.
func Seed(t *testing.T, db *database.DB) Fixtures {
	t.Helper()
	ctx := context.Background()
	catalog := persistence.NewCatalogRepository(db)
	users := persistence.NewUserRepository(db)

	f := Fixtures{
		Tatooine: entity.Planet{Name: "Tatooine", Population: 200000, Diameter: 10465, Climate: "arid", Terrain: "desert"},
		Alderaan: entity.Planet{Name: "Alderaan", Population: 2000000000, Diameter: 12500, Climate: "temperate", Terrain: "grasslands, mountains"},
	}
	require.NoError(t, catalog.UpsertPlanet(ctx, &f.Tatooine))
	require.NoError(t, catalog.UpsertPlanet(ctx, &f.Alderaan))

	f.Luke = entity.People{Name: "Luke Skywalker", HairColor: "blond", SkinColor: "fair", Gender: "male",
		HomeworldID: sql.NullInt64{Int64: f.Tatooine.ID, Valid: true}}
	f.Leia = entity.People{Name: "Leia Organa", HairColor: "brown", SkinColor: "light", Gender: "female",
		HomeworldID: sql.NullInt64{Int64: f.Alderaan.ID, Valid: true}}
	f.Yoda = entity.People{Name: "Yoda", HairColor: "white", SkinColor: "green", Gender: "male"}
	require.NoError(t, catalog.UpsertPerson(ctx, &f.Luke))
	require.NoError(t, catalog.UpsertPerson(ctx, &f.Leia))
	require.NoError(t, catalog.UpsertPerson(ctx, &f.Yoda))

	f.User = entity.User{Email: "a@b.com", Password: Hash(t, UserPassword), IsActive: true}
	f.Other = entity.User{Email: "other@b.com", Password: Hash(t, OtherPassword), IsActive: true}
	f.Inactive = entity.User{Email: "gone@b.com", Password: Hash(t, UserPassword), IsActive: false}
	require.NoError(t, users.Upsert(ctx, &f.User))
	require.NoError(t, users.Upsert(ctx, &f.Other))
	require.NoError(t, users.Upsert(ctx, &f.Inactive))

	return f
}

// Hash bcrypt-hashes with the minimum cost to keep tests fast.
func Hash(t *testing.T, plain string) string {
	t.Helper()
	hash, err := helpers.HashPasswordWithCost(plain, bcrypt.MinCost)
	require.NoError(t, err)
	return hash
}

// CountFavorites returns the number of favorite rows.
func CountFavorites(t *testing.T, db *database.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM favorites`))
	return n
}
