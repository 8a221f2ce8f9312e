package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"matrix-contacts/domain"
	"matrix-contacts/errors"

	"github.com/stretchr/testify/require"
)

func sampleReport() domain.Report {
	return domain.Report{
		Identity:     "@dave:x",
		Rooms:        []domain.RoomID{"!a:x", "!b:x"},
		Contacts:     []domain.Identity{"@alice:x", "@bob:x", "@carol:x"},
		SkippedRooms: []domain.RoomID{"!b:x"},
	}
}

func TestPlainRenderer_Render(t *testing.T) {
	t.Run("should print a header and one contact per line", func(t *testing.T) {
		req := require.New(t)
		var out bytes.Buffer

		err := PlainRenderer{}.Render(&out, sampleReport())

		req.NoError(err)
		req.Equal("Contacts for @dave:x:\n@alice:x\n@bob:x\n@carol:x\n", out.String())
	})

	t.Run("should print only the header when rooms have no other members", func(t *testing.T) {
		req := require.New(t)
		var out bytes.Buffer

		err := PlainRenderer{}.Render(&out, domain.Report{Identity: "@dave:x", Rooms: []domain.RoomID{"!a:x"}})

		req.NoError(err)
		req.Equal("Contacts for @dave:x:\n", out.String())
	})

	t.Run("should report missing rooms", func(t *testing.T) {
		req := require.New(t)
		var out bytes.Buffer

		err := PlainRenderer{}.Render(&out, domain.Report{Identity: "@dave:x"})

		req.NoError(err)
		req.Equal("no rooms found for @dave:x\n", out.String())
	})
}

func TestTableRenderer_Render(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer

	err := TableRenderer{}.Render(&out, sampleReport())

	req.NoError(err)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	req.Equal("Contacts for @dave:x (2 rooms, 1 skipped):", lines[0])
	req.Contains(out.String(), "@alice:x")
	req.Less(strings.Index(out.String(), "@alice:x"), strings.Index(out.String(), "@carol:x"))
}

func TestJSONRenderer_Render(t *testing.T) {
	t.Run("should encode the whole report", func(t *testing.T) {
		req := require.New(t)
		var out bytes.Buffer

		err := JSONRenderer{}.Render(&out, sampleReport())
		req.NoError(err)

		var decoded jsonReport
		req.NoError(json.Unmarshal(out.Bytes(), &decoded))
		req.Equal("@dave:x", decoded.UserID)
		req.Equal(2, decoded.Rooms)
		req.Equal([]string{"@alice:x", "@bob:x", "@carol:x"}, decoded.Contacts)
		req.Equal([]string{"!b:x"}, decoded.SkippedRooms)
	})

	t.Run("should encode empty lists rather than null", func(t *testing.T) {
		req := require.New(t)
		var out bytes.Buffer

		err := JSONRenderer{}.Render(&out, domain.Report{Identity: "@dave:x"})

		req.NoError(err)
		req.Contains(out.String(), `"contacts": []`)
		req.Contains(out.String(), `"skipped_rooms": []`)
	})
}

func TestNewRenderer(t *testing.T) {
	req := require.New(t)

	for _, format := range Formats {
		renderer, err := NewRenderer(format, false)
		req.NoError(err)
		req.NotNil(renderer)
	}

	_, err := NewRenderer("yaml", false)
	req.ErrorIs(err, errors.ErrInvalidConfig)
}
