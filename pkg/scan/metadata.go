//go:build !windows

package scan

import (
	"golang.org/x/sys/unix"
)

// Metadata is the stat slice the evaluator needs: the raw st_mode plus
// the owning uid/gid, captured at observation time.
type Metadata struct {
	Mode uint32 // full st_mode, file-type bits included
	UID  uint32
	GID  uint32
}

// PermBits returns the permission bits only: owner/group/other rwx plus
// the setuid/setgid/sticky bits, with the file-type bits masked off.
func (m Metadata) PermBits() uint32 {
	return m.Mode &^ uint32(unix.S_IFMT)
}

// IsDir reports whether the object is a directory.
func (m Metadata) IsDir() bool {
	return m.Mode&unix.S_IFMT == unix.S_IFDIR
}

// IsSymlink reports whether the object is a symbolic link.
func (m Metadata) IsSymlink() bool {
	return m.Mode&unix.S_IFMT == unix.S_IFLNK
}

// Kind maps the file-type bits to a FileKind.
func (m Metadata) Kind() FileKind {
	switch m.Mode & unix.S_IFMT {
	case unix.S_IFREG:
		return KindFile
	case unix.S_IFDIR:
		return KindDirectory
	case unix.S_IFSOCK:
		return KindSocket
	case unix.S_IFBLK:
		return KindBlockDevice
	case unix.S_IFCHR:
		return KindCharDevice
	case unix.S_IFIFO:
		return KindFIFO
	case unix.S_IFLNK:
		return KindSymlink
	}
	return KindUnknown
}

// FileKind classifies a filesystem object by its file-type bits.
type FileKind int

const (
	KindUnknown FileKind = iota
	KindFile
	KindDirectory
	KindSocket
	KindBlockDevice
	KindCharDevice
	KindFIFO
	KindSymlink // filtered before recording; present for completeness
)

// String returns the reporter-facing name for the kind.
func (k FileKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	case KindSocket:
		return "socket"
	case KindBlockDevice:
		return "blkdev"
	case KindCharDevice:
		return "chardev"
	case KindFIFO:
		return "fifo"
	case KindSymlink:
		return "link"
	}
	return "unknown"
}

// MarshalJSON emits the kind as its string form.
func (k FileKind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// FileRecord is one classified object. Immutable once recorded; owned by
// the bucket holding it.
type FileRecord struct {
	Path string   `json:"path"`
	Kind FileKind `json:"kind"`
	Mode uint32   `json:"mode"` // permission + setuid/setgid bits only
	UID  uint32   `json:"uid"`
	GID  uint32   `json:"gid"`
}

// NewFileRecord captures a classified object at path with its observed
// metadata.
func NewFileRecord(path string, meta Metadata) FileRecord {
	return FileRecord{
		Path: path,
		Kind: meta.Kind(),
		Mode: meta.PermBits(),
		UID:  meta.UID,
		GID:  meta.GID,
	}
}
