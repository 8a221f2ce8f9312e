package domain

import "github.com/samber/lo"

// RoomID identifies a room whose membership is queried.
// Produced by the room listing, consumed by the member fetch.
type RoomID string

func (r RoomID) String() string {
	return string(r)
}

// Report is the outcome of one discovery run.
type Report struct {
	Identity Identity
	Rooms    []RoomID
	Contacts []Identity
	// SkippedRooms lists rooms whose members could not be fetched or parsed.
	SkippedRooms []RoomID
}

func (r Report) HasRooms() bool {
	return len(r.Rooms) > 0
}

func ToRoomIDs(ids []string) []RoomID {
	return lo.Map(ids, func(item string, _ int) RoomID {
		return RoomID(item)
	})
}

func ToIdentities(ids []string) []Identity {
	return lo.Map(ids, func(item string, _ int) Identity {
		return Identity(item)
	})
}
