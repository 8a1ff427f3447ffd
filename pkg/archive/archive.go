package archive

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/itaross/rikiki-be/pkg/rikiki"
)

// ErrNotEnded is returned when archiving a game that is still in progress
var ErrNotEnded = errors.New("game has not ended")

// MaxRows is the most records RecentGames will return
const MaxRows = 100

// Recorder stores the outcome of finished games
type Recorder interface {
	RecordGame(ctx context.Context, record *Record) error
	RecentGames(ctx context.Context, limit int) ([]*Record, error)
}

// Record is an archived game
type Record struct {
	ID             int64           `json:"id"`
	RoomCode       string          `json:"room_code"`
	Seed           *int64          `json:"seed,omitempty"`
	WinnerID       string          `json:"winner_id,omitempty"`
	CallerID       string          `json:"caller_id,omitempty"`
	CallerAutoLose bool            `json:"caller_auto_lose"`
	Result         json.RawMessage `json:"result"`
	Log            json.RawMessage `json:"log"`
	Ended          time.Time       `json:"ended"`
}

// NewRecord captures an ended game
func NewRecord(g *rikiki.Game, ended time.Time) (*Record, error) {
	result := g.Result()
	if result == nil {
		return nil, ErrNotEnded
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}

	logJSON, err := json.Marshal(g.Log())
	if err != nil {
		return nil, err
	}

	return &Record{
		RoomCode:       g.RoomCode(),
		Seed:           g.Seed(),
		WinnerID:       result.WinnerID,
		CallerID:       result.CallerID,
		CallerAutoLose: result.CallerAutoLose,
		Result:         resultJSON,
		Log:            logJSON,
		Ended:          ended,
	}, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return 0
	}

	if limit > MaxRows {
		return MaxRows
	}

	return limit
}
