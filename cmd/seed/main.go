package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/starwars-api/config"
	"github.com/oksasatya/starwars-api/internal/application"
	"github.com/oksasatya/starwars-api/internal/domain/entity"
	"github.com/oksasatya/starwars-api/internal/domain/repository"
	"github.com/oksasatya/starwars-api/internal/infrastructure/database"
	"github.com/oksasatya/starwars-api/internal/infrastructure/persistence"
	"github.com/oksasatya/starwars-api/pkg/helpers"
)

type seedPerson struct {
	person    entity.People
	homeworld string
}

var planets = []entity.Planet{
	{Name: "Tatooine", Population: 200000, Diameter: 10465, Climate: "arid", Terrain: "desert"},
	{Name: "Alderaan", Population: 2000000000, Diameter: 12500, Climate: "temperate", Terrain: "grasslands, mountains"},
	{Name: "Naboo", Population: 4500000000, Diameter: 12120, Climate: "temperate", Terrain: "grassy hills, swamps, forests, mountains"},
	{Name: "Dagobah", Population: 0, Diameter: 8900, Climate: "murky", Terrain: "swamp, jungles"},
}

var people = []seedPerson{
	{entity.People{Name: "Luke Skywalker", HairColor: "blond", SkinColor: "fair", Gender: "male"}, "Tatooine"},
	{entity.People{Name: "C-3PO", HairColor: "n/a", SkinColor: "gold", Gender: "n/a"}, "Tatooine"},
	{entity.People{Name: "Darth Vader", HairColor: "none", SkinColor: "white", Gender: "male"}, "Tatooine"},
	{entity.People{Name: "Leia Organa", HairColor: "brown", SkinColor: "light", Gender: "female"}, "Alderaan"},
	{entity.People{Name: "Padmé Amidala", HairColor: "brown", SkinColor: "light", Gender: "female"}, "Naboo"},
	{entity.People{Name: "Yoda", HairColor: "white", SkinColor: "green", Gender: "male"}, ""},
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)
	ctx := context.Background()

	db, err := database.Open(ctx, database.Options{
		URL:        cfg.NormalizedDatabaseURL(),
		SQLitePath: cfg.SQLitePath,
	})
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Migrate(logger); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	email := getenv("SEED_USER_EMAIL", "demo@starwars.dev")
	password := getenv("SEED_USER_PASSWORD", "password123")
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	uow := persistence.NewUnitOfWork(db)
	err = uow.Do(ctx, func(r repository.Repositories) error {
		ids := make(map[string]int64, len(planets))
		for i := range planets {
			p := planets[i]
			if err := r.Catalog.UpsertPlanet(ctx, &p); err != nil {
				return fmt.Errorf("planet %s: %w", p.Name, err)
			}
			ids[p.Name] = p.ID
		}
		for _, sp := range people {
			p := sp.person
			if id, ok := ids[sp.homeworld]; ok {
				p.HomeworldID = sql.NullInt64{Int64: id, Valid: true}
			}
			if err := r.Catalog.UpsertPerson(ctx, &p); err != nil {
				return fmt.Errorf("person %s: %w", p.Name, err)
			}
		}
		return r.Users.Upsert(ctx, &entity.User{Email: email, Password: hash, IsActive: true})
	})
	if err != nil {
		log.Fatalf("failed to seed: %v", err)
	}
	logger.WithField("planets", len(planets)).WithField("people", len(people)).Info("catalog seeded")

	if cfg.RedisAddr != "" {
		rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer func() { _ = rdb.Close() }()
		catalog := application.NewCatalogService(uow, rdb, cfg.CatalogCacheTTL, logger)
		if err := catalog.Invalidate(ctx); err != nil {
			helpers.LogError(logger, "failed to invalidate catalog cache", err, nil)
		}
	}
	announceDemoUser(logger, email)
}

// announceDemoUser logs who was seeded. The credential itself stays in
// SEED_USER_PASSWORD and is never written out.
func announceDemoUser(logger *logrus.Logger, email string) {
	logger.WithField("email", email).Info("demo user seeded; password is the value of SEED_USER_PASSWORD")
}
