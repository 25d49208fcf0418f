// Package sqlite loads incident records from the homicides database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"

	"github.com/citygrid/crimemaps/internal/domain"
)

// loadQuery mirrors the portal column names, embedded spaces included.
// Null-coordinate rows (redacted addresses) are excluded in SQL so they never
// enter the in-memory collection.
const loadQuery = `
SELECT "Case Number", "Description", "Location Description", "Year", "Latitude", "Longitude", "Date"
FROM homicides
WHERE "Latitude" IS NOT NULL AND "Longitude" IS NOT NULL`

// Store reads incident rows from a sqlite database file.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens the database and verifies the connection.
func Open(path string, logger *slog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Store{db: db, logger: logger}, nil
}

// LoadIncidents queries all incidents with coordinates and attaches derived
// temporal attributes. An unparseable Date fails the whole load.
func (s *Store) LoadIncidents(ctx context.Context) ([]domain.Incident, error) {
	rows, err := s.db.QueryContext(ctx, loadQuery)
	if err != nil {
		return nil, fmt.Errorf("query incidents: %w", err)
	}
	defer rows.Close()

	var incidents []domain.Incident
	for rows.Next() {
		var (
			caseNumber, description, locationDescription sql.NullString
			year                                         sql.NullInt64
			lat, lon                                     float64
			date                                         string
		)
		if err := rows.Scan(&caseNumber, &description, &locationDescription, &year, &lat, &lon, &date); err != nil {
			return nil, fmt.Errorf("scan incident row: %w", err)
		}

		occurredAt, err := domain.ParseIncidentTime(date)
		if err != nil {
			return nil, fmt.Errorf("incident %s: %w", caseNumber.String, err)
		}

		incidents = append(incidents, domain.Derive(domain.Incident{
			CaseNumber:          caseNumber.String,
			Description:         description.String,
			LocationDescription: locationDescription.String,
			Year:                int(year.Int64),
			Latitude:            lat,
			Longitude:           lon,
			OccurredAt:          occurredAt,
		}))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate incident rows: %w", err)
	}

	s.logger.Info("incidents loaded", "count", len(incidents))
	return incidents, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
