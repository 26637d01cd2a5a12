package records

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrRowNotFound indicates the addressed row does not exist in the worksheet.
var ErrRowNotFound = errors.New("row not found")

// ErrDuplicateID indicates an append collided with an existing row id.
var ErrDuplicateID = errors.New("duplicate row id")

// List returns every record in the worksheet in insertion order. Columns the
// header names but the stored row lacks come back as empty strings.
func (s *Store) List(ctx context.Context, ws Worksheet) ([]Record, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT data FROM worksheet_rows WHERE worksheet = ? ORDER BY position`,
		ws.Name,
	)
	if err != nil {
		return nil, fmt.Errorf("list worksheet %s: %w", ws.Name, err)
	}
	defer rows.Close()

	var result []Record
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan worksheet %s: %w", ws.Name, err)
		}
		rec, err := decodeRow(ws, data)
		if err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	return result, rows.Err()
}

// Get fetches one record by id. The second return value reports existence.
func (s *Store) Get(ctx context.Context, ws Worksheet, id string) (Record, bool, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(
		ctx,
		`SELECT data FROM worksheet_rows WHERE worksheet = ? AND row_id = ?`,
		ws.Name, id,
	)
	var data string
	err := row.Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get row %s/%s: %w", ws.Name, id, err)
	}
	rec, err := decodeRow(ws, data)
	if err != nil {
		return nil, false, err
	}
	return rec, true, nil
}

// Append inserts one full row. The record must carry a non-empty value in the
// worksheet's id column; every header column is persisted, defaulting to "".
func (s *Store) Append(ctx context.Context, ws Worksheet, rec Record) error {
	id := strings.TrimSpace(rec[ws.IDColumn])
	if id == "" {
		return fmt.Errorf("append to %s: missing %s", ws.Name, ws.IDColumn)
	}

	full := make(Record, len(ws.Header))
	for _, column := range ws.Header {
		full[column] = rec[column]
	}
	full[ws.IDColumn] = id

	data, err := json.Marshal(full)
	if err != nil {
		return fmt.Errorf("encode row %s/%s: %w", ws.Name, id, err)
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = s.execWithRetry(
		ctx,
		`INSERT INTO worksheet_rows (worksheet, row_id, position, data, created_at, updated_at)
         VALUES (?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM worksheet_rows WHERE worksheet = ?), ?, ?, ?)`,
		ws.Name, id, ws.Name, string(data), now, now,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return fmt.Errorf("append to %s: id %s: %w", ws.Name, id, ErrDuplicateID)
		}
		return fmt.Errorf("append to %s: %w", ws.Name, err)
	}
	return nil
}

// Update overwrites the supplied columns of one row, leaving every other
// column untouched. The merge happens inside a transaction so the row is
// replaced whole or not at all.
func (s *Store) Update(ctx context.Context, ws Worksheet, id string, partial map[string]string) error {
	ctx = ensureContext(ctx)
	return retryOnBusy(ctx, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("update %s/%s: begin: %w", ws.Name, id, err)
		}
		defer func() {
			_ = tx.Rollback()
		}()

		row := tx.QueryRowContext(
			ctx,
			`SELECT data FROM worksheet_rows WHERE worksheet = ? AND row_id = ?`,
			ws.Name, id,
		)
		var data string
		if err := row.Scan(&data); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("update %s/%s: %w", ws.Name, id, ErrRowNotFound)
			}
			return fmt.Errorf("update %s/%s: read: %w", ws.Name, id, err)
		}

		current, err := decodeRow(ws, data)
		if err != nil {
			return err
		}
		for column, value := range partial {
			current[column] = value
		}
		// The id column is immutable once assigned.
		current[ws.IDColumn] = id

		merged, err := json.Marshal(current)
		if err != nil {
			return fmt.Errorf("update %s/%s: encode: %w", ws.Name, id, err)
		}

		now := time.Now().UTC().Format(time.RFC3339Nano)
		if _, err := tx.ExecContext(
			ctx,
			`UPDATE worksheet_rows SET data = ?, updated_at = ? WHERE worksheet = ? AND row_id = ?`,
			string(merged), now, ws.Name, id,
		); err != nil {
			return fmt.Errorf("update %s/%s: write: %w", ws.Name, id, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("update %s/%s: commit: %w", ws.Name, id, err)
		}
		return nil
	})
}

// Delete removes one row by id.
func (s *Store) Delete(ctx context.Context, ws Worksheet, id string) error {
	res, err := s.execWithRetry(
		ctx,
		`DELETE FROM worksheet_rows WHERE worksheet = ? AND row_id = ?`,
		ws.Name, id,
	)
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", ws.Name, id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s/%s: rows affected: %w", ws.Name, id, err)
	}
	if affected == 0 {
		return fmt.Errorf("delete %s/%s: %w", ws.Name, id, ErrRowNotFound)
	}
	return nil
}

// Count returns the number of rows in the worksheet.
func (s *Store) Count(ctx context.Context, ws Worksheet) (int, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM worksheet_rows WHERE worksheet = ?`, ws.Name)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("count worksheet %s: %w", ws.Name, err)
	}
	return count, nil
}

func decodeRow(ws Worksheet, data string) (Record, error) {
	stored := map[string]string{}
	if err := json.Unmarshal([]byte(data), &stored); err != nil {
		return nil, fmt.Errorf("decode row in %s: %w", ws.Name, err)
	}
	rec := make(Record, len(ws.Header))
	for _, column := range ws.Header {
		rec[column] = stored[column]
	}
	// Preserve columns the header no longer names so updates do not drop data.
	for column, value := range stored {
		if _, known := rec[column]; !known {
			rec[column] = value
		}
	}
	return rec, nil
}
