package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"buyback-detector/internal/models"
)

// Journal is a local SQLite record of every detected buyback, including
// those suppressed by deduplication. It exists for inspection only:
// journal failures are logged by callers and never fail a run.
type Journal struct {
	db *sql.DB
}

// JournalEntry is one row of the detection journal.
type JournalEntry struct {
	EventID    string
	Ticker     string
	Date       string
	Amount     *float64
	Percent    *float64
	Suppressed bool
	DetectedAt time.Time
}

// OpenJournal opens (and if needed initializes) the journal database at
// dbPath.
func OpenJournal(dbPath string) (*Journal, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening journal database: %w", err)
	}

	j := &Journal{db: db}
	if err := j.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing journal schema: %w", err)
	}

	return j, nil
}

func (j *Journal) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS detections (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		event_id TEXT NOT NULL,
		ticker TEXT NOT NULL,
		date TEXT NOT NULL,
		description TEXT,
		amount REAL,
		percent_of_market_cap REAL,
		url TEXT,
		suppressed INTEGER NOT NULL DEFAULT 0,
		detected_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_detections_event_id ON detections(event_id);
	CREATE INDEX IF NOT EXISTS idx_detections_ticker ON detections(ticker);
	`

	_, err := j.db.Exec(schema)
	return err
}

// RecordDetection appends one detection. suppressed marks events skipped
// because their id was already in the notified set.
func (j *Journal) RecordDetection(ctx context.Context, ev models.BuybackEvent, suppressed bool) error {
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO detections (event_id, ticker, date, description, amount, percent_of_market_cap, url, suppressed, detected_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.ID, ev.Ticker, ev.Date, ev.Description,
		ev.Amount, ev.PercentOfMarketCap, ev.URL,
		suppressed, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting detection %s: %w", ev.ID, err)
	}
	return nil
}

// Recent returns the most recent detections, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]JournalEntry, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT event_id, ticker, date, amount, percent_of_market_cap, suppressed, detected_at
		FROM detections
		ORDER BY detected_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying detections: %w", err)
	}
	defer rows.Close()

	var entries []JournalEntry
	for rows.Next() {
		var e JournalEntry
		if err := rows.Scan(&e.EventID, &e.Ticker, &e.Date, &e.Amount, &e.Percent, &e.Suppressed, &e.DetectedAt); err != nil {
			return nil, fmt.Errorf("scanning detection row: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Close closes the journal database.
func (j *Journal) Close() error {
	return j.db.Close()
}
