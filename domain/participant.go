// Package domain contains core concepts of the contact discovery.
// This file defines the Identity of a participant and the ContactSet aggregate.
// No process, I/O, or rendering logic should be added here.
package domain

import (
	"slices"

	"github.com/samber/lo"
)

// Identity is an opaque account identifier on the homeserver (e.g. "@alice:example.org").
// Its internal structure is never interpreted.
type Identity string

func (i Identity) String() string {
	return string(i)
}

// ContactSet is the deduplicated union of room members, minus the queried user.
type ContactSet struct {
	self    Identity
	members map[Identity]struct{}
}

func NewContactSet(self Identity) *ContactSet {
	return &ContactSet{
		self:    self,
		members: make(map[Identity]struct{}),
	}
}

// Add inserts every identity except the owner of the set.
// Exclusion is exact string equality.
func (c *ContactSet) Add(ids ...Identity) {
	for _, id := range ids {
		if id == c.self {
			continue
		}
		c.members[id] = struct{}{}
	}
}

func (c *ContactSet) Len() int {
	return len(c.members)
}

// Sorted returns the contacts in ascending lexicographic order.
func (c *ContactSet) Sorted() []Identity {
	contacts := lo.Keys(c.members)
	slices.Sort(contacts)
	return contacts
}
