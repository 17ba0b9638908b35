package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/safetrail/safetrail/internal/pkg/models"
	"github.com/safetrail/safetrail/services/alerts"
)

type alertRow struct {
	TouristID           string          `db:"tourist_id"`
	UserID              sql.NullString  `db:"user_id"`
	Type                string          `db:"type"`
	Latitude            float64         `db:"latitude"`
	Longitude           float64         `db:"longitude"`
	DeclaredSafetyScore sql.NullFloat64 `db:"declared_safety_score"`
	ClientTimestamp     sql.NullTime    `db:"client_timestamp"`
	RaisedAt            time.Time       `db:"raised_at"`
}

func (r alertRow) toAlert() *models.PanicAlert {
	alert := &models.PanicAlert{
		TouristID: r.TouristID,
		UserID:    r.UserID.String,
		Type:      r.Type,
		Location:  models.AlertLocation{Lat: r.Latitude, Lng: r.Longitude},
		Timestamp: r.RaisedAt,
	}
	if r.DeclaredSafetyScore.Valid {
		v := r.DeclaredSafetyScore.Float64
		alert.DeclaredSafetyScore = &v
	}
	if r.ClientTimestamp.Valid {
		v := r.ClientTimestamp.Time
		alert.ClientTimestamp = &v
	}
	return alert
}

// AlertRepo stores panic alerts in the panic_alerts table
type AlertRepo struct {
	db *sqlx.DB
}

// NewAlertRepository creates a Postgres backed alert repository
func NewAlertRepository(db *sqlx.DB) alerts.AlertRepo {
	return &AlertRepo{db: db}
}

// Insert stores the alert. Redelivered messages hit the (tourist_id, raised_at) key and are ignored.
func (r *AlertRepo) Insert(ctx context.Context, alert *models.PanicAlert) (bool, error) {
	query := `
		INSERT INTO panic_alerts (
			tourist_id, user_id, type, latitude, longitude,
			declared_safety_score, client_timestamp, raised_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (tourist_id, raised_at) DO NOTHING
	`

	var clientTS sql.NullTime
	if alert.ClientTimestamp != nil {
		clientTS = sql.NullTime{Time: *alert.ClientTimestamp, Valid: true}
	}
	var declared sql.NullFloat64
	if alert.DeclaredSafetyScore != nil {
		declared = sql.NullFloat64{Float64: *alert.DeclaredSafetyScore, Valid: true}
	}

	result, err := r.db.ExecContext(ctx, query,
		alert.TouristID,
		sql.NullString{String: alert.UserID, Valid: alert.UserID != ""},
		alert.Type,
		alert.Location.Lat,
		alert.Location.Lng,
		declared,
		clientTS,
		alert.Timestamp,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert panic alert: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return rows > 0, nil
}

// ListSince returns alerts raised since the given time, newest first
func (r *AlertRepo) ListSince(ctx context.Context, since time.Time, limit int) ([]*models.PanicAlert, error) {
	query := `
		SELECT tourist_id, user_id, type, latitude, longitude,
			declared_safety_score, client_timestamp, raised_at
		FROM panic_alerts
		WHERE raised_at >= $1
		ORDER BY raised_at DESC
		LIMIT $2
	`

	var rows []alertRow
	if err := r.db.SelectContext(ctx, &rows, query, since, limit); err != nil {
		return nil, fmt.Errorf("failed to list panic alerts: %w", err)
	}

	result := make([]*models.PanicAlert, len(rows))
	for i, row := range rows {
		result[i] = row.toAlert()
	}
	return result, nil
}
