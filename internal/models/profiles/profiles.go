// Package profiles holds the many-to-many data model: each user has a Profile
// associated with planets and people through plain association tables.
package profiles

// User represents an account
type User struct {
	ID       uint     `gorm:"primaryKey;autoIncrement"`
	Email    string   `gorm:"size:120;uniqueIndex;not null"`
	Password string   `gorm:"not null"`
	Profile  *Profile `gorm:"foreignKey:UserID"`
}

// Profile owns the favorite planets and people of a user
type Profile struct {
	ID      uint     `gorm:"primaryKey;autoIncrement"`
	UserID  uint     `gorm:"index"`
	User    *User    `gorm:"foreignKey:UserID"`
	Planets []Planet `gorm:"many2many:profile_planet;"`
	Peoples []People `gorm:"many2many:profile_people;"`
}

// Planet is a catalog entry
type Planet struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	NamePlanet string `gorm:"size:100;uniqueIndex"`
}

// People is a catalog entry for a character
type People struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	NamePeople string `gorm:"size:100;uniqueIndex"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}

// TableName overrides the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}

// TableName overrides the table name for Planet
func (Planet) TableName() string {
	return "planets"
}

// TableName overrides the table name for People
func (People) TableName() string {
	return "peoples"
}

// All returns every model of the schema in migration order.
// The association tables are created from the Profile many2many tags.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Planet{},
		&People{},
		&Profile{},
	}
}

// Serialize projects a user without the password
func (u User) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":    u.ID,
		"email": u.Email,
	}
}

// Serialize projects a profile with the names of its favorites inlined
func (p Profile) Serialize() map[string]interface{} {
	planets := make([]string, 0, len(p.Planets))
	for _, planet := range p.Planets {
		planets = append(planets, planet.NamePlanet)
	}
	peoples := make([]string, 0, len(p.Peoples))
	for _, people := range p.Peoples {
		peoples = append(peoples, people.NamePeople)
	}

	return map[string]interface{}{
		"id":                p.ID,
		"Favourite Planets": planets,
		"Favourite People":  peoples,
	}
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
