// Package storage persists the user profile and the meal diary in a local
// sqlite database, the service-side stand-in for the client's key-value
// store. All meal operations are scoped to one calendar-date bucket.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

var db *sql.DB

// InitDB opens the database at path, creating the schema if needed.
func InitDB(path string) error {
	var err error

	db, err = sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("storage: failed to open database: %w", err)
	}
	if err = db.Ping(); err != nil {
		return fmt.Errorf("storage: failed to connect to database: %w", err)
	}

	createProfileTable := `
	CREATE TABLE IF NOT EXISTS user_profile (
			"id" INTEGER PRIMARY KEY CHECK (id = 1),
			"gender" TEXT,
			"age" INTEGER,
			"height" REAL,
			"weight" REAL,
			"health_tags" TEXT,
			"allergens" TEXT,
			"activity_level" TEXT,
			"updated_at" TEXT
	);`
	createMealsTable := `
	CREATE TABLE IF NOT EXISTS meal_records (
			"id" TEXT NOT NULL,
			"date" TEXT NOT NULL,
			"meal_type" TEXT,
			"name" TEXT,
			"icon" TEXT,
			"weight" REAL,
			"calories" REAL,
			"protein" REAL,
			"carbs" REAL,
			"fat" REAL,
			"health_level" TEXT,
			"advice" TEXT,
			"image" TEXT,
			"created_at" TEXT NOT NULL,
			PRIMARY KEY ("date", "id")
	);`

	if _, err := db.Exec(createProfileTable); err != nil {
		return fmt.Errorf("storage: failed to create user_profile table: %w", err)
	}
	if _, err := db.Exec(createMealsTable); err != nil {
		return fmt.Errorf("storage: failed to create meal_records table: %w", err)
	}

	log.Info().Str("path", path).Msg("database ready")
	return nil
}
