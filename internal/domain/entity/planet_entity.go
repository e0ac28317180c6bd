package entity

// Planet is read-only catalog data. Residents are the people whose
// homeworld points at it.
type Planet struct {
	ID         int64  `db:"id"`
	Name       string `db:"name"`
	Population int64  `db:"population"`
	Diameter   int64  `db:"diameter"`
	Climate    string `db:"climate"`
	Terrain    string `db:"terrain"`

	Residents []People `db:"-"`
}
