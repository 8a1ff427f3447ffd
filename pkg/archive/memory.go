package archive

import (
	"context"
	"sync"
)

// Memory keeps records in process
// Records are lost on restart.
type Memory struct {
	records []*Record
	nextID  int64
	lock    sync.RWMutex
}

// NewMemory returns an empty in-memory archive
func NewMemory() *Memory {
	return &Memory{
		records: make([]*Record, 0),
		nextID:  1,
	}
}

// RecordGame stores the record and assigns its ID
func (m *Memory) RecordGame(_ context.Context, record *Record) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	record.ID = m.nextID
	m.nextID++
	m.records = append(m.records, record)

	return nil
}

// RecentGames returns up to limit records, newest first
func (m *Memory) RecentGames(_ context.Context, limit int) ([]*Record, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	limit = clampLimit(limit)
	if limit > len(m.records) {
		limit = len(m.records)
	}

	records := make([]*Record, 0, limit)
	for i := len(m.records) - 1; i >= 0 && len(records) < limit; i-- {
		records = append(records, m.records[i])
	}

	return records, nil
}
