package entity

import (
	"database/sql"
	"errors"
)

// FavoriteKind tells which catalog slot a favorite targets
type FavoriteKind string

const (
	FavoritePlanet FavoriteKind = "planet"
	FavoritePeople FavoriteKind = "people"
)

var ErrFavoriteTarget = errors.New("favorite must target exactly one of planet or people")

// Favorite links one user to exactly one planet or one person.
type Favorite struct {
	ID       int64         `db:"id"`
	UserID   int64         `db:"user_id"`
	PlanetID sql.NullInt64 `db:"planet_id"`
	PeopleID sql.NullInt64 `db:"people_id"`
}

// FavoriteDetail is a favorite joined with the names it displays.
type FavoriteDetail struct {
	Favorite
	UserEmail  string         `db:"user_email"`
	PlanetName sql.NullString `db:"planet_name"`
	PeopleName sql.NullString `db:"people_name"`
}

// NewFavorite builds a favorite for the given kind, leaving the other slot null
func NewFavorite(userID int64, kind FavoriteKind, targetID int64) (*Favorite, error) {
	f := &Favorite{UserID: userID}
	switch kind {
	case FavoritePlanet:
		f.PlanetID = sql.NullInt64{Int64: targetID, Valid: true}
	case FavoritePeople:
		f.PeopleID = sql.NullInt64{Int64: targetID, Valid: true}
	default:
		return nil, ErrFavoriteTarget
	}
	return f, f.Validate()
}

// Validate checks the exactly-one-target invariant.
func (f *Favorite) Validate() error {
	if f.PlanetID.Valid == f.PeopleID.Valid {
		return ErrFavoriteTarget
	}
	return nil
}

// Kind returns which slot is set. Callers must Validate first.
func (f *Favorite) Kind() FavoriteKind {
	if f.PlanetID.Valid {
		return FavoritePlanet
	}
	return FavoritePeople
}

// TargetID returns the id in the populated slot.
func (f *Favorite) TargetID() int64 {
	if f.PlanetID.Valid {
		return f.PlanetID.Int64
	}
	return f.PeopleID.Int64
}
