package metadata

import (
	"fmt"
	"sync"

	"github.com/shimmeringbee/openhab-codegen/config"
)

type Room struct {
	Identifier string
	Name       string
}

// RoomDirectory keeps the rooms of the installation in the order they were declared.
type RoomDirectory struct {
	roomLock *sync.Mutex
	rooms    map[string]*Room
	order    []string
}

type RoomError string

func (r RoomError) Error() string {
	return string(r)
}

const (
	ErrRoomNotFound = RoomError("room not found")
	ErrRoomExists   = RoomError("room already exists")
)

func NewRoomDirectory() RoomDirectory {
	return RoomDirectory{
		roomLock: &sync.Mutex{},
		rooms:    map[string]*Room{},
	}
}

// LoadRooms builds a directory from the rooms of a y2m configuration.
func LoadRooms(rooms config.Rooms) (RoomDirectory, error) {
	rd := NewRoomDirectory()

	for _, room := range rooms {
		if err := rd.AddRoom(room.ID, room.Name); err != nil {
			return RoomDirectory{}, err
		}
	}

	return rd, nil
}

func (r *RoomDirectory) AddRoom(id string, name string) error {
	r.roomLock.Lock()
	defer r.roomLock.Unlock()

	if _, found := r.rooms[id]; found {
		return fmt.Errorf("room '%s': %w", id, ErrRoomExists)
	}

	r.rooms[id] = &Room{Identifier: id, Name: name}
	r.order = append(r.order, id)

	return nil
}

func (r *RoomDirectory) Room(id string) (Room, bool) {
	r.roomLock.Lock()
	defer r.roomLock.Unlock()

	if room, found := r.rooms[id]; found {
		return *room, found
	} else {
		return Room{}, found
	}
}

func (r *RoomDirectory) Rooms() []Room {
	r.roomLock.Lock()
	defer r.roomLock.Unlock()

	var rooms []Room

	for _, id := range r.order {
		rooms = append(rooms, *r.rooms[id])
	}

	return rooms
}

// Require returns ErrRoomNotFound if no room has the identifier.
func (r *RoomDirectory) Require(roomID string) error {
	r.roomLock.Lock()
	defer r.roomLock.Unlock()

	if _, found := r.rooms[roomID]; !found {
		return fmt.Errorf("room '%s': %w", roomID, ErrRoomNotFound)
	}

	return nil
}

func (r *RoomDirectory) Empty() bool {
	r.roomLock.Lock()
	defer r.roomLock.Unlock()

	return len(r.order) == 0
}
