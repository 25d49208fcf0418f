package sqlite

import (
	"context"
	"fmt"

	"github.com/citygrid/crimemaps/internal/domain"
)

const createTableStmt = `
CREATE TABLE IF NOT EXISTS homicides (
	"ID" INTEGER PRIMARY KEY AUTOINCREMENT,
	"Case Number" TEXT,
	"Date" TEXT,
	"Description" TEXT,
	"Location Description" TEXT,
	"Year" INTEGER,
	"Latitude" REAL,
	"Longitude" REAL
)`

const insertStmt = `
INSERT INTO homicides ("Case Number", "Date", "Description", "Location Description", "Year", "Latitude", "Longitude")
VALUES (?, ?, ?, ?, ?, ?, ?)`

// dateLayout is the sqlite datetime encoding used by the portal extract.
const dateLayout = "2006-01-02 15:04:05"

// Seed creates the homicides table if needed and inserts the given incidents
// in one transaction. Used by cmd/seeddb and the store tests.
func (s *Store) Seed(ctx context.Context, incidents []domain.Incident) error {
	if _, err := s.db.ExecContext(ctx, createTableStmt); err != nil {
		return fmt.Errorf("create homicides table: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertStmt)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, inc := range incidents {
		_, err := stmt.ExecContext(ctx,
			inc.CaseNumber,
			inc.OccurredAt.Format(dateLayout),
			inc.Description,
			inc.LocationDescription,
			inc.Year,
			inc.Latitude,
			inc.Longitude,
		)
		if err != nil {
			return fmt.Errorf("insert incident %s: %w", inc.CaseNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}

	s.logger.Info("database seeded", "count", len(incidents))
	return nil
}
