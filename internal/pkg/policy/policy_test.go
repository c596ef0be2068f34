package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type ownedThing struct {
	owner string
}

func (o ownedThing) OwnedBy() string { return o.owner }

type privateThing struct {
	owner string
}

func (p privateThing) OwnedBy() string      { return p.owner }
func (p privateThing) ReadRestricted() bool { return true }

func TestCan(t *testing.T) {
	public := ownedThing{owner: "alice"}
	private := privateThing{owner: "alice"}

	cases := []struct {
		name    string
		actorID string
		action  Action
		target  Target
		want    bool
	}{
		{"anyone reads public content", "", ActionRead, public, true},
		{"stranger reads public content", "bob", ActionRead, public, true},
		{"owner reads own private content", "alice", ActionRead, private, true},
		{"stranger cannot read private content", "bob", ActionRead, private, false},
		{"anonymous cannot read private content", "", ActionRead, private, false},
		{"signed-in user can create", "bob", ActionCreate, public, true},
		{"anonymous cannot create", "", ActionCreate, public, false},
		{"owner can edit", "alice", ActionEdit, public, true},
		{"stranger cannot edit", "bob", ActionEdit, public, false},
		{"anonymous cannot edit", "", ActionEdit, public, false},
		{"owner can delete", "alice", ActionDelete, public, true},
		{"stranger cannot delete", "bob", ActionDelete, public, false},
		{"unknown action denied", "alice", Action("publish"), public, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Can(tc.actorID, tc.action, tc.target))
		})
	}
}

func TestCanOwnerWithEmptyOwnerID(t *testing.T) {
	// A target with no owner must not be editable by anonymous actors even
	// though both IDs are empty strings.
	orphan := ownedThing{owner: ""}
	assert.False(t, Can("", ActionEdit, orphan))
	assert.False(t, Can("", ActionDelete, orphan))
}
