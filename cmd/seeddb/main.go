// Command seeddb generates a reproducible synthetic homicides database for
// demos and manual pipeline runs. It uses the actual store and domain
// packages so seeded rows round-trip through the real load path.
//
// Usage:
//
//	go run ./cmd/seeddb -db homicides.db -count 2000 -seed 42
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/citygrid/crimemaps/internal/adapter/sqlite"
	"github.com/citygrid/crimemaps/internal/domain"
)

// Rough bounding box of Chicago's city limits.
const (
	latMin = 41.64
	latMax = 42.02
	lonMin = -87.86
	lonMax = -87.52
)

var locationTypes = []string{
	"STREET", "APARTMENT", "AUTO", "ALLEY", "RESIDENCE",
	"PARKING LOT", "SIDEWALK", "PORCH", "GAS STATION", "VACANT LOT",
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	dbPath := flag.String("db", "homicides.db", "output sqlite database path")
	count := flag.Int("count", 2000, "number of synthetic incidents")
	seed := flag.Int64("seed", 42, "random seed for reproducible output")
	yearStart := flag.Int("year-start", 2020, "first incident year")
	yearEnd := flag.Int("year-end", 2024, "last incident year")
	flag.Parse()

	if *yearStart > *yearEnd {
		flag.Usage()
		return fmt.Errorf("-year-start %d is after -year-end %d", *yearStart, *yearEnd)
	}

	store, err := sqlite.Open(*dbPath, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err != nil {
		return err
	}
	defer store.Close()

	rng := rand.New(rand.NewSource(*seed))
	incidents := make([]domain.Incident, 0, *count)
	years := *yearEnd - *yearStart + 1

	for i := 0; i < *count; i++ {
		year := *yearStart + rng.Intn(years)
		occurredAt := time.Date(
			year, time.Month(1+rng.Intn(12)), 1+rng.Intn(28),
			rng.Intn(24), rng.Intn(60), 0, 0, time.UTC,
		)
		incidents = append(incidents, domain.Incident{
			CaseNumber:          fmt.Sprintf("SY%06d", i+1),
			Description:         "FIRST DEGREE MURDER",
			LocationDescription: locationTypes[rng.Intn(len(locationTypes))],
			Year:                year,
			Latitude:            latMin + rng.Float64()*(latMax-latMin),
			Longitude:           lonMin + rng.Float64()*(lonMax-lonMin),
			OccurredAt:          occurredAt,
		})
	}

	if err := store.Seed(context.Background(), incidents); err != nil {
		return fmt.Errorf("seeding %s: %w", *dbPath, err)
	}

	log.Printf("wrote %d incidents to %s (years %d-%d)", len(incidents), *dbPath, *yearStart, *yearEnd)
	return nil
}
