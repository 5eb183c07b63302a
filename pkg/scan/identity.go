//go:build !windows

// Package scan implements the traversal-and-classification engine: the
// permission evaluator, the bucketed result store, and the recursive
// directory walker that feeds it.
package scan

// Identity is the (uid, gids) pair access is evaluated for. It is not
// necessarily the invoking user; the resolver may construct one for any
// uid/group combination. Immutable once constructed.
type Identity struct {
	uid  uint32
	gids []uint32
}

// NewIdentity builds an Identity from a uid and a group list. Duplicate
// gids are collapsed, first occurrence wins, order is preserved.
func NewIdentity(uid uint32, gids []uint32) Identity {
	unique := make([]uint32, 0, len(gids))
	for _, gid := range gids {
		if !containsGID(unique, gid) {
			unique = append(unique, gid)
		}
	}
	return Identity{uid: uid, gids: unique}
}

// UID returns the numeric user id under test.
func (id Identity) UID() uint32 {
	return id.uid
}

// GIDs returns a copy of the group list in construction order.
func (id Identity) GIDs() []uint32 {
	out := make([]uint32, len(id.gids))
	copy(out, id.gids)
	return out
}

// InGroup reports whether gid is in the identity's group list. Linear
// scan; group lists are small (NGROUPS_MAX is 65536 on Linux but real
// memberships rarely exceed a few dozen).
func (id Identity) InGroup(gid uint32) bool {
	return containsGID(id.gids, gid)
}

// IsRoot reports whether the identity is the superuser.
func (id Identity) IsRoot() bool {
	return id.uid == 0
}

func containsGID(gids []uint32, gid uint32) bool {
	for _, g := range gids {
		if g == gid {
			return true
		}
	}
	return false
}
