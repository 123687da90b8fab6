package models

import (
	"database/sql"
	"time"
)

type Scene struct {
	Prompt    string
	Season    string
	ImageData string // data:image/jpeg;base64,... URI served to browsers
	CreatedAt time.Time
}

type Generation struct {
	ID              int64
	Season          string
	Prompt          string
	Provider        string // "swarmui" or "openai"
	Success         bool
	DurationSeconds sql.NullFloat64
	ImageSizeBytes  sql.NullInt64
	Error           sql.NullString
	CreatedAt       time.Time
}

type GenerationStats struct {
	Generated  int
	Failed     int
	MinSeconds sql.NullFloat64 // successful generations only
	MaxSeconds sql.NullFloat64
	AvgSeconds sql.NullFloat64
}
