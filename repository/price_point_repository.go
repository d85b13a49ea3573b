package repository

import (
	"fmt"

	"menuwatch/database"
	"menuwatch/models"
)

type PricePointRepository struct{}

func NewPricePointRepository() *PricePointRepository {
	return &PricePointRepository{}
}

// Record inserts one run's price points for a competitor.
func (r *PricePointRepository) Record(competitor string, points []models.PricePoint) error {
	query := `
		INSERT INTO price_points (competitor, category_id, price, checked_at)
		VALUES ($1, $2, $3, $4)
	`

	for _, p := range points {
		if _, err := database.DB.Exec(query, competitor, p.CategoryID, p.Price, p.CheckedAt); err != nil {
			return fmt.Errorf("failed to record price point: %v", err)
		}
	}
	return nil
}

// GetRecent returns the most recent price points for a competitor,
// newest first.
func (r *PricePointRepository) GetRecent(competitor string, limit int) ([]models.PricePoint, error) {
	query := `
		SELECT category_id, price, checked_at
		FROM price_points
		WHERE competitor = $1
		ORDER BY checked_at DESC
		LIMIT $2
	`

	rows, err := database.DB.Query(query, competitor, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get price points: %v", err)
	}
	defer rows.Close()

	var points []models.PricePoint
	for rows.Next() {
		var p models.PricePoint
		if err := rows.Scan(&p.CategoryID, &p.Price, &p.CheckedAt); err != nil {
			return nil, fmt.Errorf("failed to scan price point: %v", err)
		}
		points = append(points, p)
	}
	return points, rows.Err()
}
