package synadm

import (
	"fmt"

	"matrix-contacts/domain"
	"matrix-contacts/errors"

	"github.com/tidwall/gjson"
)

// Two response shapes are seen in the field depending on the synadm version:
//
//	[{"room_id": "!a:x"}, ...]                 {"joined_rooms": ["!a:x", ...], "total": 1}
//	[{"user_id": "@a:x"}, ...]                 {"members": ["@a:x", ...], "total": 1}
//
// Arrays are read as lists of records, objects as wrapped lists.
const (
	roomRecordField   = "room_id"
	roomListField     = "joined_rooms"
	memberRecordField = "user_id"
	memberListField   = "members"
)

// ParseRooms decodes the body of "user rooms", keeping order and exact strings.
func ParseRooms(body []byte) ([]domain.RoomID, error) {
	ids, err := parseIDs(body, roomRecordField, roomListField)
	if err != nil {
		return nil, err
	}
	return domain.ToRoomIDs(ids), nil
}

// ParseMembers decodes the body of "room members", keeping order and exact strings.
func ParseMembers(body []byte) ([]domain.Identity, error) {
	ids, err := parseIDs(body, memberRecordField, memberListField)
	if err != nil {
		return nil, err
	}
	return domain.ToIdentities(ids), nil
}

func parseIDs(body []byte, recordField, listField string) ([]string, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: body is not valid JSON", errors.ErrInvalidResponse)
	}

	root := gjson.ParseBytes(body)
	switch {
	case root.IsArray():
		return recordsField(root, recordField)
	case root.IsObject():
		list := root.Get(listField)
		if !list.IsArray() {
			return nil, fmt.Errorf("%w: missing %q list", errors.ErrInvalidResponse, listField)
		}
		return stringList(list, listField)
	default:
		return nil, fmt.Errorf("%w: expected an array or an object, got %s", errors.ErrInvalidResponse, root.Type)
	}
}

func recordsField(records gjson.Result, field string) ([]string, error) {
	items := records.Array()
	ids := make([]string, 0, len(items))
	for i, record := range items {
		value := record.Get(field)
		if !record.IsObject() || value.Type != gjson.String {
			return nil, fmt.Errorf("%w: record %d has no string %q", errors.ErrInvalidResponse, i, field)
		}
		ids = append(ids, value.Str)
	}
	return ids, nil
}

func stringList(list gjson.Result, field string) ([]string, error) {
	items := list.Array()
	ids := make([]string, 0, len(items))
	for i, item := range items {
		if item.Type != gjson.String {
			return nil, fmt.Errorf("%w: %s[%d] is not a string", errors.ErrInvalidResponse, field, i)
		}
		ids = append(ids, item.Str)
	}
	return ids, nil
}
