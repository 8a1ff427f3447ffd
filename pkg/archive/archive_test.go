package archive

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/itaross/rikiki-be/pkg/rikiki"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cbg = context.Background()

func endedGame(t *testing.T) *rikiki.Game {
	t.Helper()

	seed := int64(7)
	g := rikiki.NewGame(logrus.StandardLogger(), "ABCD", rikiki.Options{Seed: &seed})
	_, err := g.AddPlayer("p1", "Alice")
	require.NoError(t, err)
	_, err = g.AddPlayer("p2", "Bob")
	require.NoError(t, err)
	require.NoError(t, g.Start())

	_, err = g.CallRikiki("p1")
	require.NoError(t, err)
	_, err = g.Draw("p2")
	require.NoError(t, err)
	_, err = g.Keep("p2")
	require.NoError(t, err)
	require.Equal(t, rikiki.PhaseEnded, g.Phase())

	return g
}

func TestNewRecord(t *testing.T) {
	a := assert.New(t)

	ended := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	g := endedGame(t)
	record, err := NewRecord(g, ended)
	a.NoError(err)

	a.Equal("ABCD", record.RoomCode)
	a.Equal(int64(7), *record.Seed)
	a.Equal("p1", record.CallerID)
	a.Equal(g.Result().WinnerID, record.WinnerID)
	a.Equal(g.Result().CallerAutoLose, record.CallerAutoLose)
	a.Equal(ended, record.Ended)

	var result struct {
		Scores []struct {
			PlayerID string `json:"player_id"`
		} `json:"scores"`
	}
	a.NoError(json.Unmarshal(record.Result, &result))
	a.Len(result.Scores, 2)

	var log []map[string]interface{}
	a.NoError(json.Unmarshal(record.Log, &log))
	a.Equal(rikiki.ActionGameEnded, log[len(log)-1]["action"])
}

func TestNewRecord_NotEnded(t *testing.T) {
	g := rikiki.NewGame(logrus.StandardLogger(), "ABCD", rikiki.DefaultOptions())
	record, err := NewRecord(g, time.Now())
	assert.Equal(t, ErrNotEnded, err)
	assert.Nil(t, record)
}

func TestMemory(t *testing.T) {
	a := assert.New(t)
	m := NewMemory()

	records, err := m.RecentGames(cbg, 10)
	a.NoError(err)
	a.Empty(records)

	for _, code := range []string{"AAAA", "BBBB", "CCCC"} {
		a.NoError(m.RecordGame(cbg, &Record{RoomCode: code}))
	}

	records, err = m.RecentGames(cbg, 2)
	a.NoError(err)
	if a.Len(records, 2) {
		a.Equal("CCCC", records[0].RoomCode)
		a.Equal(int64(3), records[0].ID)
		a.Equal("BBBB", records[1].RoomCode)
	}

	records, _ = m.RecentGames(cbg, 1000)
	a.Len(records, 3)

	records, _ = m.RecentGames(cbg, 0)
	a.Empty(records)
}

func Test_clampLimit(t *testing.T) {
	assert.Equal(t, 0, clampLimit(-1))
	assert.Equal(t, 20, clampLimit(20))
	assert.Equal(t, MaxRows, clampLimit(MaxRows+1))
}
