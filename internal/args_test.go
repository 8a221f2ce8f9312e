package internal

import (
	"testing"

	"matrix-contacts/domain"
	"matrix-contacts/errors"

	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	t.Run("should read the user id", func(t *testing.T) {
		req := require.New(t)

		args, err := ParseArgs([]string{"@alice:example.org"})

		req.NoError(err)
		req.Equal(domain.Identity("@alice:example.org"), args.User)
		req.False(args.Debug)
		req.Empty(args.Format)
	})

	t.Run("should accept --debug before or after the user id", func(t *testing.T) {
		req := require.New(t)

		before, err := ParseArgs([]string{"--debug", "@alice:x"})
		req.NoError(err)
		after, err := ParseArgs([]string{"@alice:x", "--debug"})
		req.NoError(err)

		req.Equal(Args{User: "@alice:x", Debug: true}, before)
		req.Equal(before, after)
	})

	t.Run("should read the format override in both spellings", func(t *testing.T) {
		req := require.New(t)

		spaced, err := ParseArgs([]string{"--format", "table", "@alice:x"})
		req.NoError(err)
		joined, err := ParseArgs([]string{"@alice:x", "--format=table"})
		req.NoError(err)

		req.Equal("table", spaced.Format)
		req.Equal(spaced, joined)
	})

	t.Run("should keep the first positional and ignore the rest", func(t *testing.T) {
		req := require.New(t)

		args, err := ParseArgs([]string{"@alice:x", "@bob:x"})

		req.NoError(err)
		req.Equal(domain.Identity("@alice:x"), args.User)
	})

	t.Run("should fail with a usage error without a user id", func(t *testing.T) {
		for _, argv := range [][]string{nil, {"--debug"}, {""}} {
			_, err := ParseArgs(argv)
			require.ErrorIs(t, err, errors.ErrUsage)
		}
	})

	t.Run("should fail with a usage error on unknown flags", func(t *testing.T) {
		_, err := ParseArgs([]string{"--verbose", "@alice:x"})

		require.ErrorIs(t, err, errors.ErrUsage)
		require.EqualError(t, err, "invalid usage: flag provided but not defined: -verbose")
	})

	t.Run("should say the user id is missing", func(t *testing.T) {
		_, err := ParseArgs([]string{"--debug"})

		require.EqualError(t, err, "invalid usage: missing matrix user id")
	})

	t.Run("should report help requests", func(t *testing.T) {
		_, err := ParseArgs([]string{"-h"})

		require.ErrorIs(t, err, errors.ErrHelp)
	})
}

func TestUsage(t *testing.T) {
	require.Equal(t,
		"Usage: contacts [--debug] [--format plain|table|json] <matrix_user_id>",
		Usage("contacts"))
}
