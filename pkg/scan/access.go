//go:build !windows

package scan

import (
	"golang.org/x/sys/unix"
)

// hasAccess applies the owner/group/other bit check common to all three
// capabilities: the "other" bit grants everyone, the owner bit grants the
// owning uid, the group bit grants members of the owning gid.
func hasAccess(id Identity, meta Metadata, otherBit, ownerBit, groupBit uint32) bool {
	if meta.Mode&otherBit != 0 {
		return true
	}
	if meta.Mode&ownerBit != 0 && meta.UID == id.UID() {
		return true
	}
	if meta.Mode&groupBit != 0 && id.InGroup(meta.GID) {
		return true
	}
	return false
}

// CanExecute reports whether the identity can execute the object, or
// enter it when it is a directory. Root executes everything: the bypass
// exists so a root-run scan can still reach every subtree.
func CanExecute(id Identity, meta Metadata) bool {
	if id.IsRoot() {
		return true
	}
	return hasAccess(id, meta, unix.S_IXOTH, unix.S_IXUSR, unix.S_IXGRP)
}

// CanWrite reports whether the identity can write the object. No root
// bypass: root can write anything, but reporting that would put the whole
// filesystem in the writable bucket and bury the findings that matter.
func CanWrite(id Identity, meta Metadata) bool {
	return hasAccess(id, meta, unix.S_IWOTH, unix.S_IWUSR, unix.S_IWGRP)
}

// CanRead reports whether the identity can read the object. Same
// deliberate omission of the root bypass as CanWrite.
func CanRead(id Identity, meta Metadata) bool {
	return hasAccess(id, meta, unix.S_IROTH, unix.S_IRUSR, unix.S_IRGRP)
}

// IsSetuidExecutable reports whether the object carries the setuid bit
// and the identity can actually execute it.
func IsSetuidExecutable(id Identity, meta Metadata) bool {
	return CanExecute(id, meta) && meta.Mode&unix.S_ISUID != 0
}

// IsSetgidExecutable reports whether the object carries the setgid bit
// and the identity can actually execute it.
func IsSetgidExecutable(id Identity, meta Metadata) bool {
	return CanExecute(id, meta) && meta.Mode&unix.S_ISGID != 0
}
