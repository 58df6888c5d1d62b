package core

import (
	"sync"
	"time"

	"github.com/emirpasic/gods/maps/hashmap"
	"github.com/iyouport-org/noticeboard/pkg/board"
)

type registryEntry struct {
	board    *board.Board
	lastSeen time.Time
}

// BoardRegistry maps browser session ids to their boards.
type BoardRegistry struct {
	mutex  sync.RWMutex
	boards *hashmap.Map
}

func NewBoardRegistry() *BoardRegistry {
	return &BoardRegistry{
		boards: hashmap.New(),
	}
}

func (r *BoardRegistry) Put(id string, b *board.Board, now time.Time) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.boards.Put(id, &registryEntry{board: b, lastSeen: now})
}

// Get returns the board for id and marks it as seen.
func (r *BoardRegistry) Get(id string, now time.Time) (*board.Board, bool) {
	r.mutex.RLock()
	v, ok := r.boards.Get(id)
	r.mutex.RUnlock()
	if !ok {
		return nil, false
	}
	entry := v.(*registryEntry)
	r.mutex.Lock()
	entry.lastSeen = now
	r.mutex.Unlock()
	return entry.board, true
}

func (r *BoardRegistry) Delete(id string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.boards.Remove(id)
}

func (r *BoardRegistry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.boards.Size()
}

// Sweep drops boards not seen since before now-ttl and returns how many.
func (r *BoardRegistry) Sweep(now time.Time, ttl time.Duration) int {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	var stale []interface{}
	for _, key := range r.boards.Keys() {
		v, _ := r.boards.Get(key)
		if now.Sub(v.(*registryEntry).lastSeen) > ttl {
			stale = append(stale, key)
		}
	}
	for _, key := range stale {
		r.boards.Remove(key)
	}
	return len(stale)
}
