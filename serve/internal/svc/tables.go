package svc

import (
	"errors"
	"sync"
	"time"

	"github.com/HuXin0817/connect-corners/pkg/models/message"
	"github.com/HuXin0817/connect-corners/serve/internal/room"
	"github.com/HuXin0817/connect-corners/serve/internal/transport"
)

var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrRecordingDisabled = errors.New("game recording is disabled")
)

// Table is a room together with the peers connected to it.
type Table struct {
	Room *room.Room
	Hub  *transport.Hub
}

const defaultFinishedTTL = 10 * time.Minute

// Tables holds the open rooms. Finished rooms stay readable for finishedTTL
// and are then closed.
type Tables struct {
	mu          sync.RWMutex
	tables      map[string]*Table
	finishedTTL time.Duration
	newID       func() string
}

func NewTables(finishedTTL time.Duration) *Tables {
	if finishedTTL <= 0 {
		finishedTTL = defaultFinishedTTL
	}
	return &Tables{
		tables:      make(map[string]*Table),
		finishedTTL: finishedTTL,
		newID:       func() string { return string(message.NewPeerID()) },
	}
}

// Create builds a table under an id no open table holds and stores it.
func (t *Tables) Create(build func(id string) *Table) *Table {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.newID()
	for {
		if _, c := t.tables[id]; !c {
			break
		}
		id = t.newID()
	}

	table := build(id)
	t.tables[id] = table
	return table
}

// Reap closes the table once its finished game has been on show long enough.
func (t *Tables) Reap(id string) {
	time.AfterFunc(t.finishedTTL, func() { t.Delete(id) })
}

func (t *Tables) Get(id string) (*Table, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	table, c := t.tables[id]
	if !c {
		return nil, ErrRoomNotFound
	}
	return table, nil
}

func (t *Tables) Delete(id string) {
	t.mu.Lock()
	table, c := t.tables[id]
	delete(t.tables, id)
	t.mu.Unlock()

	if c {
		table.Hub.Close()
	}
}

func (t *Tables) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.tables)
}
