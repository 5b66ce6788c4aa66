package storage

import (
	"errors"
	"strconv"
	"time"

	"github.com/hidden-1992/ai-healthy-menu/internal/models"
)

var ErrMealNotFound = errors.New("meal record not found")

// AddMealRecord appends a record to the date bucket. The id is derived from
// the creation timestamp; nanosecond resolution keeps rapid adds distinct.
func AddMealRecord(date string, rec models.MealRecord) (models.MealRecord, error) {
	now := time.Now()
	rec.ID = strconv.FormatInt(now.UnixNano(), 10)
	rec.CreatedAt = now

	stmt, err := db.Prepare(`
		INSERT INTO meal_records(id, date, meal_type, name, icon, weight, calories, protein, carbs, fat, health_level, advice, image, created_at)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return rec, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(
		rec.ID, date, rec.MealType, rec.Name, rec.Icon,
		rec.Weight, rec.Calories, rec.Protein, rec.Carbs, rec.Fat,
		rec.HealthLevel, rec.Advice, rec.Image, rec.CreatedAt.Format(time.RFC3339Nano),
	)
	return rec, err
}

// GetMealRecords returns the date bucket in creation order.
func GetMealRecords(date string) ([]models.MealRecord, error) {
	query := `
		SELECT id, meal_type, name, icon, weight, calories, protein, carbs, fat, health_level, advice, image, created_at
		FROM meal_records
		WHERE date = ?
		ORDER BY created_at
	`
	rows, err := db.Query(query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.MealRecord{}
	for rows.Next() {
		var r models.MealRecord
		var createdStr string

		if err := rows.Scan(
			&r.ID, &r.MealType, &r.Name, &r.Icon,
			&r.Weight, &r.Calories, &r.Protein, &r.Carbs, &r.Fat,
			&r.HealthLevel, &r.Advice, &r.Image, &createdStr,
		); err != nil {
			return nil, err
		}

		r.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		records = append(records, r)
	}
	return records, rows.Err()
}

// DeleteMealRecord removes one record from its date bucket.
func DeleteMealRecord(date, id string) error {
	res, err := db.Exec("DELETE FROM meal_records WHERE date = ? AND id = ?", date, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrMealNotFound
	}
	return nil
}
