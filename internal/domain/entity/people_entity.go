package entity

import "database/sql"

// People is a single catalog character.
type People struct {
	ID          int64         `db:"id"`
	Name        string        `db:"name"`
	HairColor   string        `db:"hair_color"`
	SkinColor   string        `db:"skin_color"`
	Gender      string        `db:"gender"`
	HomeworldID sql.NullInt64 `db:"homeworld_id"`
}
