package favorites

// Serialize projects a user without the password
func (u User) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":        u.ID,
		"name":      u.Name,
		"last_name": u.LastName,
		"email":     u.Email,
	}
}

// Serialize projects a favorite list with the names of its planets and people inlined.
// Join rows must be preloaded with their catalog entry for the names to appear.
func (f Favorite) Serialize() map[string]interface{} {
	planets := make([]string, 0, len(f.FavPlanets))
	for _, fp := range f.FavPlanets {
		if fp.Planet != nil {
			planets = append(planets, fp.Planet.NamePlanet)
		}
	}

	peoples := make([]string, 0, len(f.FavPeoples))
	for _, fp := range f.FavPeoples {
		if fp.People != nil {
			peoples = append(peoples, fp.People.NamePeople)
		}
	}

	return map[string]interface{}{
		"id":      f.ID,
		"user_id": f.UserID,
		"planets": planets,
		"peoples": peoples,
	}
}

// Serialize projects a favorite planet row
func (fp FavPlanet) Serialize() map[string]interface{} {
	out := map[string]interface{}{
		"fav_id":    fp.FavID,
		"planet_id": fp.PlanetID,
	}
	if fp.Planet != nil {
		out["planet"] = fp.Planet.NamePlanet
	}
	return out
}

// Serialize projects a favorite people row
func (fp FavPeople) Serialize() map[string]interface{} {
	out := map[string]interface{}{
		"fav_id":    fp.FavID,
		"people_id": fp.PeopleID,
	}
	if fp.People != nil {
		out["people"] = fp.People.NamePeople
	}
	return out
}

// Serialize projects a planet
func (p Planet) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":   p.ID,
		"name": p.NamePlanet,
	}
}

// Serialize projects a person
func (p People) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":   p.ID,
		"name": p.NamePeople,
	}
}
