// Package archive keeps plannings that left the retention window in a local SQLite database.
package archive

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"driver-planning-backend/internal/calendar"
	"driver-planning-backend/internal/database/models"
)

const schema = `CREATE TABLE IF NOT EXISTS saved_planning (
	id INTEGER PRIMARY KEY,
	driver_id INTEGER NOT NULL,
	date TEXT NOT NULL,
	client_name TEXT,
	start_time TEXT,
	return_time TEXT,
	note TEXT,
	destination TEXT,
	long_distance INTEGER NOT NULL DEFAULT 0,
	recurrence_id INTEGER
);
CREATE INDEX IF NOT EXISTS idx_saved_planning_date ON saved_planning (date);`

// sortable date layout, the dd/MM/yyyy text form does not order
const dateLayout = "2006-01-02"

// Store is the archive database
type Store struct {
	db *sql.DB
}

// Open opens (and creates when missing) the archive database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s", path))
	if err != nil {
		return nil, fmt.Errorf("error: cannot open archive database: %w", err)
	}
	// a single writer keeps SQLite away from SQLITE_BUSY
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `PRAGMA journal_mode=WAL`); err != nil {
		db.Close()
		return nil, fmt.Errorf("error: failed to enable WAL on archive database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("error: failed to create archive schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Save copies the plannings into the archive. Saving an already archived id replaces the row.
func (s *Store) Save(ctx context.Context, plannings []models.Planning) error {
	if len(plannings) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error: failed to begin archive transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx, `
        INSERT OR REPLACE INTO saved_planning (
            id, driver_id, date, client_name, start_time, return_time,
            note, destination, long_distance, recurrence_id
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("error: failed to prepare archive insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range plannings {
		var recurrenceID interface{}
		if p.RecurrenceID != nil {
			recurrenceID = int64(*p.RecurrenceID)
		}
		if _, err := stmt.ExecContext(ctx,
			p.ID, p.DriverID, p.Date.Time().Format(dateLayout), p.ClientName, p.StartTime, p.ReturnTime,
			p.Note, p.Destination, p.LongDistance, recurrenceID,
		); err != nil {
			return fmt.Errorf("error: failed to archive planning %d: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error: failed to commit archive transaction: %w", err)
	}
	return nil
}

// GetByDate returns the archived plannings of one day.
func (s *Store) GetByDate(ctx context.Context, date calendar.Date) ([]models.Planning, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, driver_id, date, client_name, start_time, return_time,
               note, destination, long_distance, recurrence_id
        FROM saved_planning
        WHERE date = ?
        ORDER BY start_time ASC, id ASC
    `, date.Time().Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("error: failed to query archived plannings: %w", err)
	}
	defer rows.Close()

	plannings := []models.Planning{}
	for rows.Next() {
		var (
			p                                                    models.Planning
			rawDate                                              string
			clientName, startTime, returnTime, note, destination sql.NullString
			recurrenceID                                         sql.NullInt64
		)
		if err := rows.Scan(&p.ID, &p.DriverID, &rawDate, &clientName, &startTime, &returnTime,
			&note, &destination, &p.LongDistance, &recurrenceID); err != nil {
			return nil, fmt.Errorf("error: failed to scan archived planning row: %w", err)
		}
		if err := p.Date.Scan(rawDate); err != nil {
			return nil, fmt.Errorf("error: archived planning %d has an invalid date: %w", p.ID, err)
		}
		p.ClientName = clientName.String
		p.StartTime = startTime.String
		p.ReturnTime = returnTime.String
		p.Note = note.String
		p.Destination = destination.String
		if recurrenceID.Valid && recurrenceID.Int64 != 0 {
			id := uint(recurrenceID.Int64)
			p.RecurrenceID = &id
		}
		plannings = append(plannings, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error: failed to iterate archived planning rows: %w", err)
	}
	return plannings, nil
}

// Count returns the number of archived plannings.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM saved_planning`).Scan(&n); err != nil {
		return 0, fmt.Errorf("error: failed to count archived plannings: %w", err)
	}
	return n, nil
}

// Checkpoint flushes the write-ahead log into the database file.
func (s *Store) Checkpoint(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `PRAGMA wal_checkpoint(FULL)`); err != nil {
		return fmt.Errorf("error: archive checkpoint failed: %w", err)
	}
	return nil
}

// Ping checks that the archive database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the archive database.
func (s *Store) Close() error {
	return s.db.Close()
}
