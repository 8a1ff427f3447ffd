package archive

import (
	"context"
	"database/sql"

	"github.com/itaross/rikiki-be/pkg/db"
)

const gamesColumns = `id, room_code, seed, winner_id, caller_id, caller_auto_lose, result, log, ended`

// Postgres stores records in the games table
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns an archive backed by the database
// The migrations in sql/ must have been applied.
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// RecordGame inserts the record and assigns its ID
func (p *Postgres) RecordGame(ctx context.Context, record *Record) error {
	const query = `
INSERT INTO games (room_code, seed, winner_id, caller_id, caller_auto_lose, result, log, ended)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`

	var seed sql.NullInt64
	if record.Seed != nil {
		seed = sql.NullInt64{Int64: *record.Seed, Valid: true}
	}

	row := p.db.QueryRowContext(ctx, query,
		record.RoomCode,
		seed,
		nullString(record.WinnerID),
		nullString(record.CallerID),
		record.CallerAutoLose,
		[]byte(record.Result),
		[]byte(record.Log),
		record.Ended,
	)

	return row.Scan(&record.ID)
}

// RecentGames returns up to limit records, newest first
func (p *Postgres) RecentGames(ctx context.Context, limit int) ([]*Record, error) {
	const query = `
SELECT ` + gamesColumns + `
FROM games
ORDER BY ended DESC, id DESC
LIMIT $1`

	rows, err := p.db.QueryContext(ctx, query, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*Record, 0)
	for rows.Next() {
		record, err := recordByRow(rows)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, rows.Err()
}

func recordByRow(row db.Scanner) (*Record, error) {
	var r Record
	var seed sql.NullInt64
	var winnerID, callerID sql.NullString
	var result, log []byte

	if err := row.Scan(&r.ID, &r.RoomCode, &seed, &winnerID, &callerID, &r.CallerAutoLose, &result, &log, &r.Ended); err != nil {
		return nil, err
	}

	if seed.Valid {
		r.Seed = &seed.Int64
	}

	r.WinnerID = winnerID.String
	r.CallerID = callerID.String
	r.Result = result
	r.Log = log

	return &r, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
