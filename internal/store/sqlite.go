package store

import (
	"database/sql"
	"time"

	"github.com/jasonacox/vibescape/internal/models"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) InsertGeneration(g models.Generation) error {
	_, err := s.db.Exec(`
		INSERT INTO generations (season, prompt, provider, success, duration_seconds, image_size_bytes, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, g.Season, g.Prompt, g.Provider, g.Success, g.DurationSeconds, g.ImageSizeBytes, g.Error, g.CreatedAt.UTC())
	return err
}

func (s *Store) RecentGenerations(limit int) ([]models.Generation, error) {
	rows, err := s.db.Query(`
		SELECT id, season, prompt, provider, success, duration_seconds, image_size_bytes, error, created_at
		FROM generations
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var generations []models.Generation
	for rows.Next() {
		var g models.Generation
		if err := rows.Scan(&g.ID, &g.Season, &g.Prompt, &g.Provider, &g.Success, &g.DurationSeconds, &g.ImageSizeBytes, &g.Error, &g.CreatedAt); err != nil {
			return nil, err
		}
		generations = append(generations, g)
	}
	return generations, rows.Err()
}

func (s *Store) LastGeneration() (*models.Generation, error) {
	row := s.db.QueryRow(`
		SELECT id, season, prompt, provider, success, duration_seconds, image_size_bytes, error, created_at
		FROM generations
		WHERE success = TRUE
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`)

	var g models.Generation
	err := row.Scan(&g.ID, &g.Season, &g.Prompt, &g.Provider, &g.Success, &g.DurationSeconds, &g.ImageSizeBytes, &g.Error, &g.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *Store) GenerationStats() (models.GenerationStats, error) {
	var stats models.GenerationStats
	// Duration aggregates intentionally skip failed attempts, which
	// record time spent waiting on an error.
	err := s.db.QueryRow(`
		SELECT
			COALESCE(SUM(CASE WHEN success THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN success THEN 0 ELSE 1 END), 0),
			MIN(CASE WHEN success THEN duration_seconds END),
			MAX(CASE WHEN success THEN duration_seconds END),
			AVG(CASE WHEN success THEN duration_seconds END)
		FROM generations
	`).Scan(&stats.Generated, &stats.Failed, &stats.MinSeconds, &stats.MaxSeconds, &stats.AvgSeconds)
	if err != nil {
		return models.GenerationStats{}, err
	}
	return stats, nil
}

func (s *Store) SeasonCounts() (map[string]int, error) {
	rows, err := s.db.Query(`
		SELECT season, COUNT(*)
		FROM generations
		WHERE success = TRUE
		GROUP BY season
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var season string
		var count int
		if err := rows.Scan(&season, &count); err != nil {
			return nil, err
		}
		counts[season] = count
	}
	return counts, rows.Err()
}

func (s *Store) PruneGenerationsBefore(cutoff time.Time) (int64, error) {
	res, err := s.db.Exec(`DELETE FROM generations WHERE created_at < ?`, cutoff.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
