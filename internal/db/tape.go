package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Kind is the widget that produced a tape line.
type Kind string

const (
	KindCalc  Kind = "calc"
	KindTimer Kind = "timer"
)

// Line is one entry of the session tape.
type Line struct {
	ID       int64     `json:"id"`
	WidgetID string    `json:"widget_id"`
	Kind     Kind      `json:"kind"`
	Expr     string    `json:"expr"`
	Result   string    `json:"result"`
	Failed   bool      `json:"failed,omitempty"`
	At       time.Time `json:"at"`
}

// KindCount is the number of tape lines per widget kind.
type KindCount struct {
	Kind   Kind
	Lines  int
	Failed int
}

// Record appends a line to the tape and fills in its ID. A zero At is set
// to the current time.
func Record(ctx context.Context, dbh *sql.DB, line *Line) error {
	if line.At.IsZero() {
		line.At = time.Now()
	}
	res, err := dbh.ExecContext(ctx,
		`INSERT INTO tape(widget_id, kind, expr, result, failed, at) VALUES(?,?,?,?,?,?)`,
		line.WidgetID, string(line.Kind), line.Expr, line.Result, line.Failed, line.At.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("record tape line: %w", err)
	}
	line.ID, err = res.LastInsertId()
	return err
}

// Recent returns up to limit lines, newest first.
func Recent(ctx context.Context, dbh *sql.DB, limit int) ([]Line, error) {
	rows, err := dbh.QueryContext(ctx, `
		SELECT id, widget_id, kind, expr, result, failed, at
		FROM tape
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLines(rows)
}

// ByWidget returns the lines one widget instance produced, oldest first.
func ByWidget(ctx context.Context, dbh *sql.DB, widgetID string) ([]Line, error) {
	rows, err := dbh.QueryContext(ctx, `
		SELECT id, widget_id, kind, expr, result, failed, at
		FROM tape
		WHERE widget_id = ?
		ORDER BY id ASC
	`, widgetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLines(rows)
}

// Summary counts lines per kind.
func Summary(ctx context.Context, dbh *sql.DB) ([]KindCount, error) {
	rows, err := dbh.QueryContext(ctx, `
		SELECT kind, COUNT(*), COALESCE(SUM(failed), 0)
		FROM tape
		GROUP BY kind
		ORDER BY kind ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []KindCount
	for rows.Next() {
		var kc KindCount
		var kind string
		if err := rows.Scan(&kind, &kc.Lines, &kc.Failed); err != nil {
			return nil, err
		}
		kc.Kind = Kind(kind)
		out = append(out, kc)
	}
	return out, rows.Err()
}

func scanLines(rows *sql.Rows) ([]Line, error) {
	var out []Line
	for rows.Next() {
		var l Line
		var kind, at string
		if err := rows.Scan(&l.ID, &l.WidgetID, &kind, &l.Expr, &l.Result, &l.Failed, &at); err != nil {
			return nil, err
		}
		l.Kind = Kind(kind)
		if ts, err := time.Parse(time.RFC3339Nano, at); err == nil {
			l.At = ts
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
