package rikiki

import (
	"time"

	"github.com/google/uuid"
)

// SystemPlayerID is the actor recorded for entries not caused by a player
const SystemPlayerID = "system"

// logged actions
const (
	ActionPlayerJoined   = "player_joined"
	ActionGameStarted    = "game_started"
	ActionDrawCard       = "draw_card"
	ActionDiscardSuccess = "discard_success"
	ActionDiscardFail    = "discard_fail"
	ActionReplaceCard    = "replace_card"
	ActionKeepCard       = "keep_card"
	ActionUseJack        = "use_jack"
	ActionUseQueen       = "use_queen"
	ActionKingPeek       = "king_peek"
	ActionKingSwap       = "king_swap"
	ActionCallRikiki     = "call_rikiki"
	ActionGameEnded      = "game_ended"
)

// LogEntry is a record of an accepted action
type LogEntry struct {
	UUID     string      `json:"uuid"`
	PlayerID string      `json:"player_id"`
	Action   string      `json:"action"`
	Details  interface{} `json:"details"`
	Time     time.Time   `json:"time"`
}

// Details is a convenience type for log entry details
type Details map[string]interface{}

// ActionLog is an append-only list of log entries
type ActionLog struct {
	entries []*LogEntry
	now     func() time.Time
}

func newActionLog(now func() time.Time) *ActionLog {
	return &ActionLog{
		entries: make([]*LogEntry, 0),
		now:     now,
	}
}

// Append adds an entry to the end of the log
func (a *ActionLog) Append(playerID, action string, details interface{}) *LogEntry {
	entry := &LogEntry{
		UUID:     uuid.New().String(),
		PlayerID: playerID,
		Action:   action,
		Details:  details,
		Time:     a.now(),
	}

	a.entries = append(a.entries, entry)
	return entry
}

// Entries returns a shallow copy of all entries, oldest first
func (a *ActionLog) Entries() []*LogEntry {
	return append([]*LogEntry{}, a.entries...)
}

// Len returns the number of entries
func (a *ActionLog) Len() int {
	return len(a.entries)
}

// Last returns the newest entry, or nil if the log is empty
func (a *ActionLog) Last() *LogEntry {
	if len(a.entries) == 0 {
		return nil
	}

	return a.entries[len(a.entries)-1]
}
