// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// The manifest is small and read-mostly, so a single database file is
// all the persistence it needs. The blank import below registers the
// sqlite3 driver with database/sql; nothing from it is called directly.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aanand-mishra/titanic-api/internal/config"
	"github.com/aanand-mishra/titanic-api/internal/storage"
	"github.com/aanand-mishra/titanic-api/internal/types"

	_ "github.com/mattn/go-sqlite3"
)

// passengerColumns is shared by every SELECT so scanPassenger can rely
// on a single column order.
const passengerColumns = `id, name, age, sex, class, survived,
	sib_sp, parch, ticket, fare, cabin, embarked`

// SQLite is the concrete implementation of storage.Storage.
// The embedded *sql.DB is a connection pool and safe for concurrent use.
type SQLite struct {
	Db *sql.DB
}

var _ storage.Storage = (*SQLite)(nil)

// New opens the database configured in cfg.StoragePath.
func New(cfg *config.Config) (*SQLite, error) {
	return Open(cfg.StoragePath)
}

// Open opens (or creates) the SQLite file at path and makes sure the
// passengers table exists. CREATE TABLE IF NOT EXISTS is idempotent, so
// this is safe on every startup.
func Open(path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("sqlite.Open: create dir: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite.Open: open db: %w", err)
	}

	// Schema mirrors the manifest. The CHECK constraints keep sex and
	// class inside the domain the query layer groups on.
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS passengers (
			id       INTEGER PRIMARY KEY,
			name     TEXT    NOT NULL,
			age      REAL,
			sex      TEXT    NOT NULL CHECK (sex IN ('male', 'female')),
			class    INTEGER NOT NULL CHECK (class IN (1, 2, 3)),
			survived INTEGER NOT NULL,
			sib_sp   INTEGER NOT NULL DEFAULT 0,
			parch    INTEGER NOT NULL DEFAULT 0,
			ticket   TEXT    NOT NULL DEFAULT '',
			fare     REAL    NOT NULL DEFAULT 0,
			cabin    TEXT,
			embarked TEXT
		)
	`)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite.Open: create table: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// Close releases the connection pool.
func (s *SQLite) Close() error {
	return s.Db.Close()
}

// GetAllPassengers returns every passenger ordered by id.
func (s *SQLite) GetAllPassengers(ctx context.Context) ([]types.Passenger, error) {
	passengers, err := s.queryPassengers(ctx,
		"SELECT "+passengerColumns+" FROM passengers ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("GetAllPassengers: %w", err)
	}
	return passengers, nil
}

// GetPassengers returns passengers matching the survival filter.
// A nil filter returns everything, same as GetAllPassengers.
func (s *SQLite) GetPassengers(ctx context.Context, survived *bool) ([]types.Passenger, error) {
	query := "SELECT " + passengerColumns + " FROM passengers"
	var args []any
	if survived != nil {
		query += " WHERE survived = ?"
		args = append(args, *survived)
	}
	query += " ORDER BY id"

	passengers, err := s.queryPassengers(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("GetPassengers: %w", err)
	}
	return passengers, nil
}

// GetPassengerByID fetches exactly one passenger by primary key.
// sql.ErrNoRows is translated to ok=false so callers decide what
// "missing" means for them.
func (s *SQLite) GetPassengerByID(ctx context.Context, id int64) (types.Passenger, bool, error) {
	stmt, err := s.Db.PrepareContext(ctx,
		"SELECT "+passengerColumns+" FROM passengers WHERE id = ? LIMIT 1")
	if err != nil {
		return types.Passenger{}, false, fmt.Errorf("GetPassengerByID: prepare: %w", err)
	}
	defer stmt.Close()

	p, err := scanPassenger(stmt.QueryRowContext(ctx, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Passenger{}, false, nil
		}
		return types.Passenger{}, false, fmt.Errorf("GetPassengerByID: scan: %w", err)
	}

	return p, true, nil
}

// GetTotalMales counts male passengers.
func (s *SQLite) GetTotalMales(ctx context.Context) (int, error) {
	n, err := s.countBySex(ctx, types.SexMale)
	if err != nil {
		return 0, fmt.Errorf("GetTotalMales: %w", err)
	}
	return n, nil
}

// GetTotalFemales counts female passengers.
func (s *SQLite) GetTotalFemales(ctx context.Context) (int, error) {
	n, err := s.countBySex(ctx, types.SexFemale)
	if err != nil {
		return 0, fmt.Errorf("GetTotalFemales: %w", err)
	}
	return n, nil
}

// CountPassengers returns the number of rows in the passengers table.
func (s *SQLite) CountPassengers(ctx context.Context) (int, error) {
	var n int
	if err := s.Db.QueryRowContext(ctx, "SELECT COUNT(*) FROM passengers").Scan(&n); err != nil {
		return 0, fmt.Errorf("CountPassengers: scan: %w", err)
	}
	return n, nil
}

// ImportPassengers writes passengers in a single transaction, replacing
// any existing row with the same id. Either every row lands or none do.
func (s *SQLite) ImportPassengers(ctx context.Context, passengers []types.Passenger) (int64, error) {
	tx, err := s.Db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("ImportPassengers: begin: %w", err)
	}
	// Rollback after Commit is a no-op returning sql.ErrTxDone.
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO passengers (`+passengerColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("ImportPassengers: prepare: %w", err)
	}
	defer stmt.Close()

	var written int64
	for _, p := range passengers {
		_, err := stmt.ExecContext(ctx,
			p.ID, p.Name, nullFloat(p.Age), p.Sex, p.Class, p.Survived,
			p.SibSp, p.Parch, p.Ticket, p.Fare, nullString(p.Cabin), nullString(p.Embarked),
		)
		if err != nil {
			return 0, fmt.Errorf("ImportPassengers: exec id %d: %w", p.ID, err)
		}
		written++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("ImportPassengers: commit: %w", err)
	}
	return written, nil
}

func (s *SQLite) countBySex(ctx context.Context, sex string) (int, error) {
	var n int
	err := s.Db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM passengers WHERE sex = ?", sex).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", sex, err)
	}
	return n, nil
}

// queryPassengers runs a SELECT over passengerColumns and scans every row.
func (s *SQLite) queryPassengers(ctx context.Context, query string, args ...any) ([]types.Passenger, error) {
	rows, err := s.Db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	// Non-nil so an empty table encodes as [] rather than null.
	passengers := make([]types.Passenger, 0)
	for rows.Next() {
		p, err := scanPassenger(rows)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		passengers = append(passengers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return passengers, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPassenger(row rowScanner) (types.Passenger, error) {
	var (
		p        types.Passenger
		age      sql.NullFloat64
		cabin    sql.NullString
		embarked sql.NullString
	)
	err := row.Scan(
		&p.ID, &p.Name, &age, &p.Sex, &p.Class, &p.Survived,
		&p.SibSp, &p.Parch, &p.Ticket, &p.Fare, &cabin, &embarked,
	)
	if err != nil {
		return types.Passenger{}, err
	}

	if age.Valid {
		p.Age = &age.Float64
	}
	if cabin.Valid {
		p.Cabin = &cabin.String
	}
	if embarked.Valid {
		p.Embarked = &embarked.String
	}
	return p, nil
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
