package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContactSet_Add(t *testing.T) {
	t.Run("should deduplicate members across rooms and exclude self", func(t *testing.T) {
		req := require.New(t)
		set := NewContactSet("B")

		set.Add("A", "B")
		set.Add("B", "C")

		req.Equal(2, set.Len())
		req.Equal([]Identity{"A", "C"}, set.Sorted())
	})

	t.Run("should only exclude exact matches of self", func(t *testing.T) {
		req := require.New(t)
		set := NewContactSet("@bob:x")

		set.Add("@Bob:x", "@bob:x ", "@bob:x")

		req.Equal([]Identity{"@Bob:x", "@bob:x "}, set.Sorted())
	})

	t.Run("should stay empty when nothing is added", func(t *testing.T) {
		req := require.New(t)
		set := NewContactSet("@bob:x")

		set.Add()

		req.Zero(set.Len())
		req.Empty(set.Sorted())
	})
}

func TestContactSet_Sorted(t *testing.T) {
	req := require.New(t)
	set := NewContactSet("@dave:x")

	set.Add("@bob:x", "@alice:x", "@carol:x")

	req.Equal([]Identity{"@alice:x", "@bob:x", "@carol:x"}, set.Sorted())
}
