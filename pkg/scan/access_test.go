//go:build !windows

package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func fileMeta(perm, uid, gid uint32) Metadata {
	return Metadata{Mode: unix.S_IFREG | perm, UID: uid, GID: gid}
}

func dirMeta(perm, uid, gid uint32) Metadata {
	return Metadata{Mode: unix.S_IFDIR | perm, UID: uid, GID: gid}
}

func linkMeta(perm uint32) Metadata {
	return Metadata{Mode: unix.S_IFLNK | perm}
}

func TestCanExecute(t *testing.T) {
	id := NewIdentity(1000, []uint32{1000, 24})

	tests := []struct {
		name string
		meta Metadata
		want bool
	}{
		{
			name: "other execute bit",
			meta: fileMeta(0o001, 0, 0),
			want: true,
		},
		{
			name: "owner execute bit, owning uid",
			meta: fileMeta(0o100, 1000, 0),
			want: true,
		},
		{
			name: "owner execute bit, foreign uid",
			meta: fileMeta(0o100, 2000, 0),
			want: false,
		},
		{
			name: "group execute bit, member group",
			meta: fileMeta(0o010, 0, 24),
			want: true,
		},
		{
			name: "group execute bit, foreign group",
			meta: fileMeta(0o010, 0, 25),
			want: false,
		},
		{
			name: "no execute bits",
			meta: fileMeta(0o666, 1000, 1000),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanExecute(id, tt.meta))
		})
	}
}

func TestRootBypassIsExecuteOnly(t *testing.T) {
	root := NewIdentity(0, []uint32{0})
	locked := fileMeta(0o000, 500, 500)

	// Execute carries the bypass so traversal reaches everything.
	assert.True(t, CanExecute(root, locked))

	// Write and read deliberately do not: a root-run scan must still show
	// only the access the mode bits grant.
	assert.False(t, CanWrite(root, locked))
	assert.False(t, CanRead(root, locked))
}

func TestCanWriteCanRead(t *testing.T) {
	id := NewIdentity(1000, []uint32{1000})

	tests := []struct {
		name      string
		meta      Metadata
		wantWrite bool
		wantRead  bool
	}{
		{
			name:      "world read-write",
			meta:      fileMeta(0o666, 0, 0),
			wantWrite: true,
			wantRead:  true,
		},
		{
			name:      "owner only, owning uid",
			meta:      fileMeta(0o600, 1000, 0),
			wantWrite: true,
			wantRead:  true,
		},
		{
			name:      "owner only, foreign uid",
			meta:      fileMeta(0o600, 2000, 0),
			wantWrite: false,
			wantRead:  false,
		},
		{
			name:      "group write, member group",
			meta:      fileMeta(0o020, 0, 1000),
			wantWrite: true,
			wantRead:  false,
		},
		{
			name:      "world read only",
			meta:      fileMeta(0o444, 0, 0),
			wantWrite: false,
			wantRead:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantWrite, CanWrite(id, tt.meta), "write")
			assert.Equal(t, tt.wantRead, CanRead(id, tt.meta), "read")
		})
	}
}

func TestSetuidSetgidPredicates(t *testing.T) {
	id := NewIdentity(1000, []uint32{1000})

	tests := []struct {
		name       string
		meta       Metadata
		wantSetuid bool
		wantSetgid bool
	}{
		{
			name:       "setuid world-executable",
			meta:       fileMeta(0o4755, 0, 0),
			wantSetuid: true,
			wantSetgid: false,
		},
		{
			name:       "setgid world-executable",
			meta:       fileMeta(0o2755, 0, 0),
			wantSetuid: false,
			wantSetgid: true,
		},
		{
			name:       "setuid and setgid",
			meta:       fileMeta(0o6755, 0, 0),
			wantSetuid: true,
			wantSetgid: true,
		},
		{
			// The bit alone is not enough: the identity must be able to run it.
			name:       "setuid without execute capability",
			meta:       fileMeta(0o4600, 0, 0),
			wantSetuid: false,
			wantSetgid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantSetuid, IsSetuidExecutable(id, tt.meta), "setuid")
			assert.Equal(t, tt.wantSetgid, IsSetgidExecutable(id, tt.meta), "setgid")
		})
	}
}
