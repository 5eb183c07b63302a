package report

import (
	"os/user"
	"strconv"
)

// nameCache memoizes uid/gid to name lookups for the lifetime of one
// report. Misses are cached too; scan results tend to repeat the same
// handful of owners thousands of times.
type nameCache struct {
	users  map[uint32]string
	groups map[uint32]string
}

func newNameCache() *nameCache {
	return &nameCache{
		users:  make(map[uint32]string),
		groups: make(map[uint32]string),
	}
}

// userName returns the name for uid, or "" when no passwd entry exists.
func (c *nameCache) userName(uid uint32) string {
	if name, ok := c.users[uid]; ok {
		return name
	}
	name := ""
	if u, err := user.LookupId(formatID(uid)); err == nil {
		name = u.Username
	}
	c.users[uid] = name
	return name
}

// groupName returns the name for gid, or "" when no group entry exists.
func (c *nameCache) groupName(gid uint32) string {
	if name, ok := c.groups[gid]; ok {
		return name
	}
	name := ""
	if g, err := user.LookupGroupId(formatID(gid)); err == nil {
		name = g.Name
	}
	c.groups[gid] = name
	return name
}

// userLabel returns the name, falling back to the numeric id.
func (c *nameCache) userLabel(uid uint32) string {
	if name := c.userName(uid); name != "" {
		return name
	}
	return formatID(uid)
}

// groupLabel returns the name, falling back to the numeric id.
func (c *nameCache) groupLabel(gid uint32) string {
	if name := c.groupName(gid); name != "" {
		return name
	}
	return formatID(gid)
}

func formatID(id uint32) string {
	return strconv.FormatUint(uint64(id), 10)
}
