package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/starwars-api/internal/application"
	"github.com/oksasatya/starwars-api/internal/infrastructure/persistence"
	"github.com/oksasatya/starwars-api/internal/testutil"
	"github.com/oksasatya/starwars-api/pkg/helpers"
)

func TestCatalogService_WithoutCache(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.Seed(t, db)
	svc := application.NewCatalogService(persistence.NewUnitOfWork(db), nil, time.Minute, nil)
	ctx := context.Background()

	planets, err := svc.ListPlanets(ctx)
	require.NoError(t, err)
	require.Len(t, planets, 2)
	require.Len(t, planets[0].Residents, 1)
	assert.Equal(t, "Luke Skywalker", planets[0].Residents[0].Name)

	planet, err := svc.GetPlanet(ctx, fx.Tatooine.ID)
	require.NoError(t, err)
	assert.Equal(t, "arid", planet.Climate)

	_, err = svc.GetPlanet(ctx, 999)
	require.ErrorIs(t, err, application.ErrNotFound)
	assert.Equal(t, "planet was not found", application.Message(err, ""))

	people, err := svc.ListPeople(ctx)
	require.NoError(t, err)
	assert.Len(t, people, 3)

	person, err := svc.GetPerson(ctx, fx.Yoda.ID)
	require.NoError(t, err)
	assert.Equal(t, "green", person.SkinColor)

	_, err = svc.GetPerson(ctx, 999)
	require.ErrorIs(t, err, application.ErrNotFound)
	assert.Equal(t, "person not found", application.Message(err, ""))
}

func TestCatalogService_ReadThroughCache(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.Seed(t, db)
	mr := miniredis.RunT(t)
	rdb := helpers.NewRedisClient(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = rdb.Close() })
	svc := application.NewCatalogService(persistence.NewUnitOfWork(db), rdb, time.Minute, helpers.NewNopLogger())
	ctx := context.Background()

	first, err := svc.GetPlanet(ctx, fx.Tatooine.ID)
	require.NoError(t, err)
	assert.True(t, mr.Exists("catalog:planet:1"))

	// the cached copy wins until it expires
	_, err = db.Exec(`UPDATE planets SET climate = 'frozen' WHERE id = ?`, fx.Tatooine.ID)
	require.NoError(t, err)

	second, err := svc.GetPlanet(ctx, fx.Tatooine.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	mr.FastForward(2 * time.Minute)
	third, err := svc.GetPlanet(ctx, fx.Tatooine.ID)
	require.NoError(t, err)
	assert.Equal(t, "frozen", third.Climate)

	// misses are not cached
	_, err = svc.GetPerson(ctx, 999)
	require.ErrorIs(t, err, application.ErrNotFound)
	assert.False(t, mr.Exists("catalog:person:999"))
}

func TestCatalogService_RedisDownFallsBackToStore(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.Seed(t, db)
	mr := miniredis.RunT(t)
	rdb := helpers.NewRedisClient(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = rdb.Close() })
	mr.Close()

	svc := application.NewCatalogService(persistence.NewUnitOfWork(db), rdb, time.Minute, helpers.NewNopLogger())
	people, err := svc.ListPeople(context.Background())
	require.NoError(t, err)
	assert.Len(t, people, 3)
}

func TestCatalogService_Invalidate(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.Seed(t, db)
	mr := miniredis.RunT(t)
	rdb := helpers.NewRedisClient(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = rdb.Close() })
	svc := application.NewCatalogService(persistence.NewUnitOfWork(db), rdb, time.Hour, helpers.NewNopLogger())
	ctx := context.Background()

	_, err := svc.ListPlanets(ctx)
	require.NoError(t, err)
	_, err = svc.GetPlanet(ctx, fx.Alderaan.ID)
	require.NoError(t, err)

	_, err = db.Exec(`UPDATE planets SET population = 0 WHERE id = ?`, fx.Alderaan.ID)
	require.NoError(t, err)
	require.NoError(t, svc.Invalidate(ctx))
	assert.False(t, mr.Exists("catalog:planets"))

	planet, err := svc.GetPlanet(ctx, fx.Alderaan.ID)
	require.NoError(t, err)
	assert.Zero(t, planet.Population)

	noCache := application.NewCatalogService(persistence.NewUnitOfWork(db), nil, time.Hour, helpers.NewNopLogger())
	assert.NoError(t, noCache.Invalidate(ctx))
}
