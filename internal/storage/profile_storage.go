package storage

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/hidden-1992/ai-healthy-menu/internal/models"
)

// SaveUserProfile writes the single profile row, replacing any previous one.
// The stored UpdatedAt is set here, not by the caller.
func SaveUserProfile(p models.UserProfile) (models.UserProfile, error) {
	tags, err := json.Marshal(p.HealthTags)
	if err != nil {
		return p, err
	}
	allergens, err := json.Marshal(p.Allergens)
	if err != nil {
		return p, err
	}
	p.UpdatedAt = time.Now().Format(time.RFC3339)

	stmt, err := db.Prepare(`
		INSERT INTO user_profile(id, gender, age, height, weight, health_tags, allergens, activity_level, updated_at)
		VALUES(1, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			gender = excluded.gender,
			age = excluded.age,
			height = excluded.height,
			weight = excluded.weight,
			health_tags = excluded.health_tags,
			allergens = excluded.allergens,
			activity_level = excluded.activity_level,
			updated_at = excluded.updated_at
	`)
	if err != nil {
		return p, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(p.Gender, p.Age, p.Height, p.Weight, string(tags), string(allergens), p.ActivityLevel, p.UpdatedAt)
	return p, err
}

// GetUserProfile returns the stored profile, or nil if none was saved yet.
func GetUserProfile() (*models.UserProfile, error) {
	row := db.QueryRow(`
		SELECT gender, age, height, weight, health_tags, allergens, activity_level, updated_at
		FROM user_profile WHERE id = 1
	`)

	var p models.UserProfile
	var tags, allergens sql.NullString
	var gender, activityLevel, updatedAt sql.NullString
	var age sql.NullInt64
	var height, weight sql.NullFloat64

	if err := row.Scan(&gender, &age, &height, &weight, &tags, &allergens, &activityLevel, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	p.Gender = gender.String
	p.Age = int(age.Int64)
	p.Height = height.Float64
	p.Weight = weight.Float64
	p.ActivityLevel = activityLevel.String
	p.UpdatedAt = updatedAt.String
	if tags.Valid && tags.String != "" {
		if err := json.Unmarshal([]byte(tags.String), &p.HealthTags); err != nil {
			return nil, err
		}
	}
	if allergens.Valid && allergens.String != "" {
		if err := json.Unmarshal([]byte(allergens.String), &p.Allergens); err != nil {
			return nil, err
		}
	}

	return &p, nil
}
