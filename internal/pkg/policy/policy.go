// Package policy holds the access rules for user-owned content as pure
// predicates. Handlers resolve the acting user, load the target record and
// ask policy before mutating anything; there is no role hierarchy and no
// admin override on this path.
package policy

// Action is something an actor wants to do to a target.
type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// Target is any record with a single owning user.
type Target interface {
	OwnedBy() string
}

// readRestricted marks targets that are not world-readable (profiles).
type readRestricted interface {
	ReadRestricted() bool
}

// Can reports whether the actor may perform action on target. An empty
// actorID means the request is unauthenticated.
func Can(actorID string, action Action, target Target) bool {
	switch action {
	case ActionRead:
		if r, ok := target.(readRestricted); ok && r.ReadRestricted() {
			return actorID != "" && actorID == target.OwnedBy()
		}
		return true
	case ActionCreate:
		return actorID != ""
	case ActionEdit, ActionDelete:
		return actorID != "" && actorID == target.OwnedBy()
	default:
		return false
	}
}
