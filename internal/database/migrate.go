package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/data"
	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/config"
	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/models/favorites"
	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/models/profiles"
	"gorm.io/gorm"
)

// Models returns the models of the named schema
func Models(schema string) ([]interface{}, error) {
	switch schema {
	case config.SchemaProfile:
		return profiles.All(), nil
	case config.SchemaFavorites:
		return favorites.All(), nil
	}
	return nil, fmt.Errorf("unknown schema: %s", schema)
}

// ErrSchemaConflict is returned by AutoMigrate when the database already
// holds the tables of the other schema
var ErrSchemaConflict = errors.New("database holds the tables of another schema")

// MigrateHint tells the operator how to switch an existing database to another schema
const MigrateHint = "the two schemas cannot share a database; run `migrate -drop` (irreversible) and start again to switch SCHEMA"

// InstalledSchema names the schema whose own tables exist in the database,
// or returns "" when neither is installed
func InstalledSchema(db *gorm.DB) string {
	m := db.Migrator()
	switch {
	case m.HasTable("profiles"):
		return config.SchemaProfile
	case m.HasTable("favorites"):
		return config.SchemaFavorites
	}
	return ""
}

// AutoMigrate runs automatic migrations for all models of the schema
func AutoMigrate(db *gorm.DB, schema string) error {
	models, err := Models(schema)
	if err != nil {
		return err
	}
	if installed := InstalledSchema(db); installed != "" && installed != schema {
		return fmt.Errorf("%w: found %s tables, want %s", ErrSchemaConflict, installed, schema)
	}
	return db.AutoMigrate(models...)
}

// DropAll runs the destructive migration that removes the tables of both
// schemas. It cannot be reversed.
func DropAll(db *gorm.DB) error {
	return ExecScript(db, data.MigrationDropAllTables)
}

// ExecScript executes a semicolon separated SQL script one statement at a time.
// Line comments introduced by "--" are stripped, quoted text is left alone.
func ExecScript(db *gorm.DB, script string) error {
	lines := strings.Split(script, "\n")

	var stripped []string
	for _, l := range lines {
		stripped = append(stripped, excludeComment(l))
	}

	joined := strings.Join(stripped, " ")
	for _, q := range strings.Split(joined, ";") {
		q = strings.TrimSpace(q)
		if q == "" {
			continue
		}
		if err := db.Exec(q).Error; err != nil {
			return fmt.Errorf("%w : when executing > %s", err, q)
		}
	}
	return nil
}

func excludeComment(line string) string {
	const (
		d = "\""
		s = "'"
		c = "--"
	)

	var nc string
	ck := line
	mx := len(line) + 1

	for {
		if len(ck) == 0 {
			return nc
		}

		di := strings.Index(ck, d)
		si := strings.Index(ck, s)
		ci := strings.Index(ck, c)

		if di < 0 {
			di = mx
		}
		if si < 0 {
			si = mx
		}
		if ci < 0 {
			ci = mx
		}

		var quote string
		switch {
		case di < si && di < ci:
			quote = d
		case si < di && si < ci:
			quote = s
		case ci < di && ci < si:
			return nc + ck[:ci]
		default:
			return nc + ck
		}

		qi := strings.Index(ck, quote)
		nc += ck[:qi+1]
		ck = ck[qi+1:]

		ei := strings.Index(ck, quote)
		if ei < 0 {
			// unterminated quote, keep the rest verbatim
			return nc + ck
		}
		nc += ck[:ei+1]
		ck = ck[ei+1:]
	}
}
