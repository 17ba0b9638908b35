package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/safetrail/safetrail/internal/pkg/models"
	"github.com/safetrail/safetrail/services/presence"
)

const historyColumns = `tourist_id, user_id, latitude, longitude, accuracy, safety_score, recorded_at`

type historyRow struct {
	TouristID   string          `db:"tourist_id"`
	UserID      sql.NullString  `db:"user_id"`
	Latitude    float64         `db:"latitude"`
	Longitude   float64         `db:"longitude"`
	Accuracy    sql.NullFloat64 `db:"accuracy"`
	SafetyScore sql.NullFloat64 `db:"safety_score"`
	RecordedAt  time.Time       `db:"recorded_at"`
}

func (r historyRow) toSample() *models.PositionSample {
	sample := &models.PositionSample{
		ID:        r.TouristID,
		UserID:    r.UserID.String,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Timestamp: r.RecordedAt,
	}
	if r.Accuracy.Valid {
		v := r.Accuracy.Float64
		sample.Accuracy = &v
	}
	if r.SafetyScore.Valid {
		v := r.SafetyScore.Float64
		sample.SafetyScore = &v
	}
	return sample
}

// HistoryRepo stores accepted samples in the location_history table
type HistoryRepo struct {
	db *sqlx.DB
}

// NewHistoryRepository creates a Postgres backed location history
func NewHistoryRepository(db *sqlx.DB) presence.HistoryRepo {
	return &HistoryRepo{db: db}
}

// StoreSample inserts one sample
func (r *HistoryRepo) StoreSample(ctx context.Context, sample *models.PositionSample) error {
	query := `
		INSERT INTO location_history (` + historyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		sample.ID,
		nullString(sample.UserID),
		sample.Latitude,
		sample.Longitude,
		nullFloat(sample.Accuracy),
		nullFloat(sample.SafetyScore),
		sample.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to store sample: %w", err)
	}
	return nil
}

// History returns one page of samples matching filter, newest first unless Ascending is set
func (r *HistoryRepo) History(ctx context.Context, filter models.HistoryFilter) (*models.HistoryPage, error) {
	var (
		conds []string
		args  []interface{}
	)
	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.TouristID != "" {
		add("tourist_id = $%d", filter.TouristID)
	}
	if filter.StartTime != nil {
		add("recorded_at >= $%d", *filter.StartTime)
	}
	if filter.EndTime != nil {
		add("recorded_at <= $%d", *filter.EndTime)
	}
	if filter.MinScore != nil {
		add("safety_score >= $%d", *filter.MinScore)
	}
	if filter.MaxScore != nil {
		add("safety_score <= $%d", *filter.MaxScore)
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM location_history"+where, args...); err != nil {
		return nil, fmt.Errorf("failed to count history: %w", err)
	}

	order := "DESC"
	if filter.Ascending {
		order = "ASC"
	}
	query := fmt.Sprintf("SELECT %s FROM location_history%s ORDER BY recorded_at %s LIMIT $%d OFFSET $%d",
		historyColumns, where, order, len(args)+1, len(args)+2)

	var rows []historyRow
	offset := (filter.Page - 1) * filter.Limit
	if err := r.db.SelectContext(ctx, &rows, query, append(args, filter.Limit, offset)...); err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}

	page := &models.HistoryPage{
		Samples: toSamples(rows),
		Page:    filter.Page,
		Limit:   filter.Limit,
		Total:   total,
	}
	if filter.Limit > 0 {
		page.Pages = (total + filter.Limit - 1) / filter.Limit
	}
	return page, nil
}

// HighRisk returns samples recorded since the given time with a score below maxScore, lowest first
func (r *HistoryRepo) HighRisk(ctx context.Context, maxScore float64, since time.Time, limit int) ([]*models.PositionSample, error) {
	query := `
		SELECT ` + historyColumns + `
		FROM location_history
		WHERE safety_score < $1 AND recorded_at >= $2
		ORDER BY safety_score ASC, recorded_at DESC
		LIMIT $3
	`

	var rows []historyRow
	if err := r.db.SelectContext(ctx, &rows, query, maxScore, since, limit); err != nil {
		return nil, fmt.Errorf("failed to query high risk locations: %w", err)
	}
	return toSamples(rows), nil
}

// Stats aggregates samples recorded since the given time, for one tourist when touristID is set
func (r *HistoryRepo) Stats(ctx context.Context, touristID string, since time.Time) (*models.LocationStats, error) {
	query := `
		SELECT
			COUNT(*) AS total_locations,
			COALESCE(AVG(safety_score), 0)::float8 AS average_safety_score,
			COALESCE(MAX(safety_score), 0)::float8 AS max_safety_score,
			COALESCE(MIN(safety_score), 0)::float8 AS min_safety_score,
			COUNT(DISTINCT tourist_id) AS unique_tourists
		FROM location_history
		WHERE recorded_at >= $1`
	args := []interface{}{since}
	if touristID != "" {
		query += " AND tourist_id = $2"
		args = append(args, touristID)
	}

	stats := &models.LocationStats{}
	if err := r.db.GetContext(ctx, stats, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query location stats: %w", err)
	}
	return stats, nil
}

func toSamples(rows []historyRow) []*models.PositionSample {
	samples := make([]*models.PositionSample, len(rows))
	for i, row := range rows {
		samples[i] = row.toSample()
	}
	return samples
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
