package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToRoomIDs_PreservesOrderAndValues(t *testing.T) {
	req := require.New(t)

	rooms := ToRoomIDs([]string{"!b:x", "!a:x", "!b:x"})

	req.Equal([]RoomID{"!b:x", "!a:x", "!b:x"}, rooms)
}

func TestReport_HasRooms(t *testing.T) {
	req := require.New(t)

	req.False(Report{Identity: "@a:x"}.HasRooms())
	req.True(Report{Identity: "@a:x", Rooms: []RoomID{"!r:x"}}.HasRooms())
}
