// Package favorites holds the list-of-join-rows data model: each user owns a
// Favorite list whose FavPlanet and FavPeople rows point into the catalog.
package favorites

// User represents an account that owns favorite lists
type User struct {
	ID        uint       `gorm:"primaryKey;autoIncrement"`
	Name      string     `gorm:"size:120;not null"`
	LastName  string     `gorm:"size:120;not null"`
	Email     string     `gorm:"size:120;uniqueIndex;not null"`
	Password  string     `gorm:"not null"`
	Favorites []Favorite `gorm:"foreignKey:UserID"`
}

// Favorite is the per-user collection root
type Favorite struct {
	ID         uint        `gorm:"primaryKey;autoIncrement"`
	UserID     uint        `gorm:"not null;index"`
	User       *User       `gorm:"foreignKey:UserID"`
	FavPlanets []FavPlanet `gorm:"foreignKey:FavID"`
	FavPeoples []FavPeople `gorm:"foreignKey:FavID"`
}

// FavPlanet links a favorite list to a planet. The composite key keeps a
// planet at most once per list.
type FavPlanet struct {
	FavID    uint      `gorm:"primaryKey;autoIncrement:false"`
	PlanetID uint      `gorm:"primaryKey;autoIncrement:false"`
	Favorite *Favorite `gorm:"foreignKey:FavID"`
	Planet   *Planet   `gorm:"foreignKey:PlanetID"`
}

// FavPeople links a favorite list to a person
type FavPeople struct {
	FavID    uint      `gorm:"primaryKey;autoIncrement:false"`
	PeopleID uint      `gorm:"primaryKey;autoIncrement:false"`
	Favorite *Favorite `gorm:"foreignKey:FavID"`
	People   *People   `gorm:"foreignKey:PeopleID"`
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

// TableName overrides the table name for Favorite
func (Favorite) TableName() string {
	return "favorites"
}

// TableName overrides the table name for FavPlanet
func (FavPlanet) TableName() string {
	return "fav_planets"
}

// TableName overrides the table name for FavPeople
func (FavPeople) TableName() string {
	return "fav_peoples"
}

// TableName overrides the table name for Planet
func (Planet) TableName() string {
	return "planets"
}

// TableName overrides the table name for People
func (People) TableName() string {
	return "peoples"
}

// All returns every model of the schema in migration order
func All() []interface{} {
	return []interface{}{
		&User{},
		&Planet{},
		&People{},
		&Favorite{},
		&FavPlanet{},
		&FavPeople{},
	}
}
