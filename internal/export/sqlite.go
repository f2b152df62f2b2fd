package export

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/iksnae/chatstat/internal"
	"github.com/jmoiron/sqlx"

	_ "modernc.org/sqlite"
)

// SQLiteExporter writes a report as a SQLite database: one table for the
// records and one per analytic.
type SQLiteExporter struct{}

const sqliteSchema = `
CREATE TABLE meta (key TEXT PRIMARY KEY, value TEXT NOT NULL);
CREATE TABLE records (
	idx INTEGER PRIMARY KEY,
	raw_timestamp TEXT NOT NULL,
	timestamp TEXT,
	sender TEXT NOT NULL,
	body TEXT NOT NULL,
	date TEXT,
	weekday TEXT,
	hour INTEGER
);
CREATE TABLE stats (messages INTEGER, words INTEGER, media INTEGER, links INTEGER);
CREATE TABLE monthly_timeline (year INTEGER, month INTEGER, label TEXT, messages INTEGER);
CREATE TABLE daily_timeline (date TEXT PRIMARY KEY, messages INTEGER);
CREATE TABLE weekday_activity (name TEXT PRIMARY KEY, messages INTEGER);
CREATE TABLE month_activity (name TEXT PRIMARY KEY, messages INTEGER);
CREATE TABLE heatmap (weekday TEXT, hour_bucket TEXT, messages INTEGER, PRIMARY KEY (weekday, hour_bucket));
CREATE TABLE common_words (word TEXT PRIMARY KEY, count INTEGER);
CREATE TABLE emojis (emoji TEXT PRIMARY KEY, count INTEGER);
CREATE TABLE sender_share (name TEXT PRIMARY KEY, messages INTEGER, percent REAL);
`

type sqliteRecord struct {
	Index        int            `db:"idx"`
	RawTimestamp string         `db:"raw_timestamp"`
	Timestamp    sql.NullString `db:"timestamp"`
	Sender       string         `db:"sender"`
	Body         string         `db:"body"`
	Date         sql.NullString `db:"date"`
	Weekday      sql.NullString `db:"weekday"`
	Hour         sql.NullInt64  `db:"hour"`
}

// Export writes the database to a temporary file and copies it into w
func (e *SQLiteExporter) Export(report *internal.Report, w io.Writer) error {
	dir, err := os.MkdirTemp("", "chatstat-sqlite-*")
	if err != nil {
		return &internal.ExportError{Format: "sqlite", Err: err}
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "report.db")
	if err := e.WriteFile(report, path); err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return &internal.ExportError{Format: "sqlite", Path: path, Err: err}
	}
	defer f.Close()

	if _, err := io.Copy(w, f); err != nil {
		return &internal.ExportError{Format: "sqlite", Path: path, Err: err}
	}
	return nil
}

// WriteFile creates a new database at path. An existing file is replaced.
func (e *SQLiteExporter) WriteFile(report *internal.Report, path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return &internal.ExportError{Format: "sqlite", Path: path, Err: err}
	}

	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return &internal.ExportError{Format: "sqlite", Path: path, Err: fmt.Errorf("failed to open database: %w", err)}
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	if err := writeReport(db, report); err != nil {
		return &internal.ExportError{Format: "sqlite", Path: path, Err: err}
	}
	return nil
}

func writeReport(db *sqlx.DB, report *internal.Report) error {
	if _, err := db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := insertReport(tx, report); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func insertReport(tx *sqlx.Tx, report *internal.Report) error {
	meta := map[string]string{
		"sender":              report.Sender,
		"records":             strconv.Itoa(report.Summary.Records),
		"unparsed_timestamps": strconv.Itoa(report.Summary.UnparsedDates),
		"wordcloud_corpus":    report.WordCloud.Corpus,
	}
	for k, v := range meta {
		if _, err := tx.Exec(`INSERT INTO meta (key, value) VALUES (?, ?)`, k, v); err != nil {
			return fmt.Errorf("failed to insert meta %s: %w", k, err)
		}
	}

	for _, rec := range report.Records {
		row := sqliteRecord{
			Index:        rec.Index,
			RawTimestamp: rec.RawTimestamp,
			Sender:       rec.Sender,
			Body:         rec.Body,
		}
		if rec.Timestamp != nil {
			row.Timestamp = sql.NullString{String: rec.Timestamp.Format("2006-01-02 15:04:05"), Valid: true}
		}
		if cal := rec.Calendar; cal != nil {
			row.Date = sql.NullString{String: cal.Date, Valid: true}
			row.Weekday = sql.NullString{String: cal.WeekdayName, Valid: true}
			row.Hour = sql.NullInt64{Int64: int64(cal.Hour), Valid: true}
		}
		if _, err := tx.NamedExec(`INSERT INTO records (idx, raw_timestamp, timestamp, sender, body, date, weekday, hour)
			VALUES (:idx, :raw_timestamp, :timestamp, :sender, :body, :date, :weekday, :hour)`, row); err != nil {
			return fmt.Errorf("failed to insert record %d: %w", rec.Index, err)
		}
	}

	s := report.Stats
	if _, err := tx.Exec(`INSERT INTO stats VALUES (?, ?, ?, ?)`, s.Messages, s.Words, s.Media, s.Links); err != nil {
		return fmt.Errorf("failed to insert stats: %w", err)
	}

	for _, p := range report.MonthlyTimeline {
		if _, err := tx.Exec(`INSERT INTO monthly_timeline VALUES (?, ?, ?, ?)`, p.Year, p.MonthNumber, p.Label, p.Messages); err != nil {
			return fmt.Errorf("failed to insert monthly timeline: %w", err)
		}
	}
	for _, p := range report.DailyTimeline {
		if _, err := tx.Exec(`INSERT INTO daily_timeline VALUES (?, ?)`, p.Date, p.Messages); err != nil {
			return fmt.Errorf("failed to insert daily timeline: %w", err)
		}
	}
	if err := insertCategories(tx, "weekday_activity", report.BusyDays); err != nil {
		return err
	}
	if err := insertCategories(tx, "month_activity", report.BusyMonths); err != nil {
		return err
	}

	h := report.Heatmap
	for d, day := range h.Rows {
		for hr, bucket := range h.Columns {
			if _, err := tx.Exec(`INSERT INTO heatmap VALUES (?, ?, ?)`, day, bucket, h.Cells[d][hr]); err != nil {
				return fmt.Errorf("failed to insert heatmap: %w", err)
			}
		}
	}

	for _, wc := range report.MostCommonWords {
		if _, err := tx.Exec(`INSERT INTO common_words VALUES (?, ?)`, wc.Word, wc.Count); err != nil {
			return fmt.Errorf("failed to insert common words: %w", err)
		}
	}
	for _, ec := range report.Emojis {
		if _, err := tx.Exec(`INSERT INTO emojis VALUES (?, ?)`, ec.Emoji, ec.Count); err != nil {
			return fmt.Errorf("failed to insert emojis: %w", err)
		}
	}

	if report.Ranking != nil {
		counts := make(map[string]int)
		for _, top := range report.Ranking.Top {
			counts[top.Sender] = top.Messages
		}
		for _, share := range report.Ranking.Shares {
			var messages sql.NullInt64
			if n, ok := counts[share.Sender]; ok {
				messages = sql.NullInt64{Int64: int64(n), Valid: true}
			}
			if _, err := tx.Exec(`INSERT INTO sender_share VALUES (?, ?, ?)`, share.Sender, messages, share.Percent); err != nil {
				return fmt.Errorf("failed to insert sender share: %w", err)
			}
		}
	}

	return nil
}

func insertCategories(tx *sqlx.Tx, table string, rows []internal.CategoryCount) error {
	query := fmt.Sprintf(`INSERT INTO %s VALUES (?, ?)`, table)
	for _, c := range rows {
		if _, err := tx.Exec(query, c.Name, c.Count); err != nil {
			return fmt.Errorf("failed to insert %s: %w", table, err)
		}
	}
	return nil
}

// Extension returns the file extension for this format
func (e *SQLiteExporter) Extension() string {
	return "db"
}
