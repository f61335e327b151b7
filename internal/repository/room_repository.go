package repository

import (
    "fmt"
    "sync"

    "github.com/iliyamo/hotel-reservation/internal/model"
)

// RoomRepo is the room catalog.  Rooms are added once during startup
// and are immutable afterwards; List preserves insertion order so the
// booking path always picks the first matching room deterministically.
type RoomRepo struct {
    mu       sync.RWMutex
    rooms    []*model.Room
    byNumber map[int]*model.Room
}

// NewRoomRepo returns an empty catalog.
func NewRoomRepo() *RoomRepo {
    return &RoomRepo{byNumber: make(map[int]*model.Room)}
}

// Add registers a room in the catalog.  Room numbers must be unique;
// a duplicate is a seeding bug and is reported as an error.
func (r *RoomRepo) Add(room *model.Room) error {
    r.mu.Lock()
    defer r.mu.Unlock()
    if _, ok := r.byNumber[room.RoomNumber]; ok {
        return fmt.Errorf("room %d already exists", room.RoomNumber)
    }
    r.rooms = append(r.rooms, room)
    r.byNumber[room.RoomNumber] = room
    return nil
}

// FindByNumber returns the room with the given number or ErrNotFound.
func (r *RoomRepo) FindByNumber(n int) (*model.Room, error) {
    r.mu.RLock()
    defer r.mu.RUnlock()
    room, ok := r.byNumber[n]
    if !ok {
        return nil, ErrNotFound
    }
    return room, nil
}

// List returns all rooms in insertion order.  The returned slice is a
// copy; the rooms themselves are shared and must not be mutated.
func (r *RoomRepo) List() []*model.Room {
    r.mu.RLock()
    defer r.mu.RUnlock()
    out := make([]*model.Room, len(r.rooms))
    copy(out, r.rooms)
    return out
}
