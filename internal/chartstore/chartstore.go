// Package chartstore archives computed birth charts in a local SQLite
// database so they can be listed and re-read by name without recomputing.
// Charts are pure functions of their input, so the store is a plain cache
// of derived values plus the input needed to recompute them.
package chartstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.

	"github.com/gopanchang/jyotish/internal/astrotime"
	"github.com/gopanchang/jyotish/internal/chart"
	"github.com/gopanchang/jyotish/internal/zodiac"
)

// ErrNotFound is returned when no chart is archived under the given name.
var ErrNotFound = errors.New("chartstore: chart not found")

// schema contains the DDL executed on first open. Using IF NOT EXISTS
// makes it safe to run on every startup.
const schema = `
CREATE TABLE IF NOT EXISTS charts (
    name           TEXT PRIMARY KEY,
    year           INTEGER NOT NULL,
    month          INTEGER NOT NULL,
    day            INTEGER NOT NULL,
    hour           INTEGER NOT NULL,
    minute         INTEGER NOT NULL,
    utc_offset     REAL NOT NULL,
    latitude       REAL NOT NULL,
    longitude      REAL NOT NULL,
    julian_day     REAL NOT NULL,
    asc_longitude  REAL NOT NULL,
    asc_sign       INTEGER NOT NULL,
    moon_longitude REAL NOT NULL,
    saved_at       TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS positions (
    chart_name TEXT NOT NULL,
    planet     INTEGER NOT NULL,
    longitude  REAL NOT NULL,
    sign       INTEGER NOT NULL,
    house      INTEGER NOT NULL,
    nakshatra  INTEGER NOT NULL,
    pada       INTEGER NOT NULL,
    PRIMARY KEY (chart_name, planet)
);
`

// Store is a SQLite-backed chart archive.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the archive at dbPath, enables WAL mode and a
// busy timeout, and creates the schema if needed.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("chartstore: open database: %w", err)
	}

	// One connection: SQLite has a single writer, and a lone pooled
	// connection keeps the PRAGMA setup consistent.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA busy_timeout=5000"} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("chartstore: %s: %w", pragma, err)
		}
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("chartstore: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// Summary is the list view of one archived chart.
type Summary struct {
	Name          string
	Moment        astrotime.Moment
	Latitude      float64
	Longitude     float64
	JulianDay     float64
	AscLongitude  float64 // sidereal
	AscSign       int
	MoonLongitude float64 // sidereal
	SavedAt       time.Time
}

// Save archives a computed chart under a name, replacing any previous
// chart with the same name.
func (s *Store) Save(ctx context.Context, name string, in chart.Input, c *chart.Chart) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("chartstore: begin save: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	const upsert = `
		INSERT INTO charts
			(name, year, month, day, hour, minute, utc_offset, latitude, longitude,
			 julian_day, asc_longitude, asc_sign, moon_longitude, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET
			year = excluded.year, month = excluded.month, day = excluded.day,
			hour = excluded.hour, minute = excluded.minute,
			utc_offset = excluded.utc_offset,
			latitude = excluded.latitude, longitude = excluded.longitude,
			julian_day = excluded.julian_day,
			asc_longitude = excluded.asc_longitude, asc_sign = excluded.asc_sign,
			moon_longitude = excluded.moon_longitude,
			saved_at = CURRENT_TIMESTAMP`
	m := in.Moment
	if _, err = tx.ExecContext(ctx, upsert,
		name, m.Year, m.Month, m.Day, m.Hour, m.Minute, m.UTCOffset,
		in.Latitude, in.Longitude,
		c.JulianDay, c.Ascendant.Longitude, c.Ascendant.Sign.Index,
		c.MoonLongitude()); err != nil {
		return fmt.Errorf("chartstore: save chart %q: %w", name, err)
	}

	if _, err = tx.ExecContext(ctx, "DELETE FROM positions WHERE chart_name = ?", name); err != nil {
		return fmt.Errorf("chartstore: clear positions %q: %w", name, err)
	}
	const insert = `
		INSERT INTO positions (chart_name, planet, longitude, sign, house, nakshatra, pada)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	for _, b := range c.Bodies {
		if _, err = tx.ExecContext(ctx, insert,
			name, int(b.Planet), b.Position.Longitude, b.Sign.Index,
			b.House, b.Nakshatra.Index, b.Pada); err != nil {
			return fmt.Errorf("chartstore: save position %s: %w", b.Planet, err)
		}
	}
	return tx.Commit()
}

// List returns every archived chart, most recently saved first.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	const q = `
		SELECT name, year, month, day, hour, minute, utc_offset,
		       latitude, longitude, julian_day, asc_longitude, asc_sign,
		       moon_longitude, saved_at
		FROM charts ORDER BY saved_at DESC, name`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("chartstore: list charts: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sum Summary
		if err := rows.Scan(&sum.Name,
			&sum.Moment.Year, &sum.Moment.Month, &sum.Moment.Day,
			&sum.Moment.Hour, &sum.Moment.Minute, &sum.Moment.UTCOffset,
			&sum.Latitude, &sum.Longitude, &sum.JulianDay,
			&sum.AscLongitude, &sum.AscSign, &sum.MoonLongitude,
			&sum.SavedAt); err != nil {
			return nil, fmt.Errorf("chartstore: scan chart: %w", err)
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

// PlanetRow is one archived planetary placement.
type PlanetRow struct {
	Planet    zodiac.Planet
	Longitude float64 // sidereal
	Sign      int
	House     int
	Nakshatra int
	Pada      int
}

// Get returns one archived chart with its planetary placements.
func (s *Store) Get(ctx context.Context, name string) (Summary, []PlanetRow, error) {
	const q = `
		SELECT name, year, month, day, hour, minute, utc_offset,
		       latitude, longitude, julian_day, asc_longitude, asc_sign,
		       moon_longitude, saved_at
		FROM charts WHERE name = ?`
	var sum Summary
	err := s.db.QueryRowContext(ctx, q, name).Scan(&sum.Name,
		&sum.Moment.Year, &sum.Moment.Month, &sum.Moment.Day,
		&sum.Moment.Hour, &sum.Moment.Minute, &sum.Moment.UTCOffset,
		&sum.Latitude, &sum.Longitude, &sum.JulianDay,
		&sum.AscLongitude, &sum.AscSign, &sum.MoonLongitude, &sum.SavedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Summary{}, nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return Summary{}, nil, fmt.Errorf("chartstore: get chart %q: %w", name, err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT planet, longitude, sign, house, nakshatra, pada FROM positions WHERE chart_name = ? ORDER BY planet",
		name)
	if err != nil {
		return Summary{}, nil, fmt.Errorf("chartstore: get positions %q: %w", name, err)
	}
	defer rows.Close()

	var planets []PlanetRow
	for rows.Next() {
		var p PlanetRow
		var planet int
		if err := rows.Scan(&planet, &p.Longitude, &p.Sign, &p.House, &p.Nakshatra, &p.Pada); err != nil {
			return Summary{}, nil, fmt.Errorf("chartstore: scan position: %w", err)
		}
		p.Planet = zodiac.Planet(planet)
		planets = append(planets, p)
	}
	return sum, planets, rows.Err()
}

// Delete removes an archived chart.
func (s *Store) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM charts WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("chartstore: delete chart %q: %w", name, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	_, err = s.db.ExecContext(ctx, "DELETE FROM positions WHERE chart_name = ?", name)
	return err
}
