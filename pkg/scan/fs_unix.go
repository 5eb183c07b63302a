//go:build !windows

package scan

import (
	"os"

	"golang.org/x/sys/unix"
)

// OSFS is the real-filesystem DirFS.
type OSFS struct{}

// ListDir returns the entry names of dir in readdir order.
// os.File.Readdirnames deliberately does not sort, which preserves the
// "whatever the primitive yields" listing contract.
func (OSFS) ListDir(dir string) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.Readdirnames(-1)
}

// Lstat stats path without following symbolic links.
func (OSFS) Lstat(path string) (Metadata, error) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return Metadata{}, &os.PathError{Op: "lstat", Path: path, Err: err}
	}
	return Metadata{
		Mode: uint32(st.Mode),
		UID:  st.Uid,
		GID:  st.Gid,
	}, nil
}
