package application

import "github.com/oksasatya/starwars-api/internal/domain/entity"

// FavoriteView names the favorited item; the unused slot is null.
type FavoriteView struct {
	ID     int64   `json:"id"`
	User   string  `json:"user"`
	Planet *string `json:"planet"`
	People *string `json:"people"`
}

// UserView is a user together with their favorites. Password and is_active
// are never serialized.
type UserView struct {
	ID        int64          `json:"id"`
	Email     string         `json:"email"`
	Favorites []FavoriteView `json:"favorites"`
}

// PersonView deliberately omits the homeworld.
type PersonView struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	HairColor string `json:"hair_color"`
	SkinColor string `json:"skin_color"`
	Gender    string `json:"gender"`
}

// PlanetView nests residents by value.
type PlanetView struct {
	ID         int64        `json:"id"`
	Name       string       `json:"name"`
	Population int64        `json:"population"`
	Diameter   int64        `json:"diameter"`
	Climate    string       `json:"climate"`
	Terrain    string       `json:"terrain"`
	Residents  []PersonView `json:"residents"`
}

func newFavoriteView(d entity.FavoriteDetail) FavoriteView {
	v := FavoriteView{ID: d.ID, User: d.UserEmail}
	if d.PlanetName.Valid {
		name := d.PlanetName.String
		v.Planet = &name
	}
	if d.PeopleName.Valid {
		name := d.PeopleName.String
		v.People = &name
	}
	return v
}

func newUserView(u entity.User, details []entity.FavoriteDetail) UserView {
	v := UserView{ID: u.ID, Email: u.Email, Favorites: make([]FavoriteView, 0, len(details))}
	for _, d := range details {
		v.Favorites = append(v.Favorites, newFavoriteView(d))
	}
	return v
}

func newPersonView(p entity.People) PersonView {
	return PersonView{
		ID:        p.ID,
		Name:      p.Name,
		HairColor: p.HairColor,
		SkinColor: p.SkinColor,
		Gender:    p.Gender,
	}
}

func newPlanetView(p entity.Planet) PlanetView {
	v := PlanetView{
		ID:         p.ID,
		Name:       p.Name,
		Population: p.Population,
		Diameter:   p.Diameter,
		Climate:    p.Climate,
		Terrain:    p.Terrain,
		Residents:  make([]PersonView, 0, len(p.Residents)),
	}
	for _, r := range p.Residents {
		v.Residents = append(v.Residents, newPersonView(r))
	}
	return v
}
