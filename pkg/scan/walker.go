//go:build !windows

package scan

import (
	"strings"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sys/unix"
)

// DirFS is the filesystem slice the walker needs. The production
// implementation is OSFS; tests substitute a deterministic fake.
type DirFS interface {
	// ListDir returns the entry names of dir in whatever order the
	// underlying directory-listing primitive yields them. No sorting.
	ListDir(dir string) ([]string, error)

	// Lstat returns metadata for path without following symbolic links.
	Lstat(path string) (Metadata, error)
}

// WalkerConfig carries the optional knobs for NewWalker. The zero value
// is usable: real filesystem, no-op logger, standard mode, platform path
// bound.
type WalkerConfig struct {
	// FS overrides the filesystem; defaults to OSFS.
	FS DirFS

	// Logger receives per-entry and per-directory diagnostics; defaults
	// to a null logger.
	Logger hclog.Logger

	// Extended enables the readable and only-executable buckets.
	Extended bool

	// OnDirectory, when set, is invoked once per directory successfully
	// opened for listing. Used for progress display.
	OnDirectory func(path string)

	// MaxPathLen bounds constructed candidate paths; entries that would
	// exceed it are skipped with a warning. Defaults to unix.PathMax.
	MaxPathLen int
}

// Walker performs the depth-first, pre-order traversal and feeds the
// evaluator's verdicts into a Result. Single-threaded; one walker drives
// one scan at a time.
type Walker struct {
	identity    Identity
	fsys        DirFS
	logger      hclog.Logger
	extended    bool
	onDirectory func(string)
	maxPathLen  int
}

// NewWalker builds a walker that evaluates access as id.
func NewWalker(id Identity, cfg WalkerConfig) *Walker {
	if cfg.FS == nil {
		cfg.FS = OSFS{}
	}
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}
	if cfg.MaxPathLen <= 0 {
		cfg.MaxPathLen = unix.PathMax
	}
	return &Walker{
		identity:    id,
		fsys:        cfg.FS,
		logger:      cfg.Logger,
		extended:    cfg.Extended,
		onDirectory: cfg.OnDirectory,
		maxPathLen:  cfg.MaxPathLen,
	}
}

// Scan traverses the subtree rooted at root, appending every classified
// object to res. The root must already be canonical (absolute, symlinks
// resolved); the root directory itself is listed unconditionally and is
// not recorded. Failures below the root are local: they are logged and
// the branch is abandoned, never the whole scan.
func (w *Walker) Scan(root string, res *Result) {
	w.walk(root, res)
}

func (w *Walker) walk(dir string, res *Result) {
	names, err := w.fsys.ListDir(dir)
	if err != nil {
		w.logger.Warn("unable to open directory", "path", dir, "error", err)
		return
	}
	if w.onDirectory != nil {
		w.onDirectory(dir)
	}

	for _, name := range names {
		// Only the two special entries are skipped; other dot-prefixed
		// names are regular candidates.
		if name == "." || name == ".." {
			continue
		}

		path, ok := w.joinEntry(dir, name)
		if !ok {
			w.logger.Warn("name too long, skipping",
				"dir", dir, "name", name, "limit", w.maxPathLen)
			continue
		}

		meta, err := w.fsys.Lstat(path)
		if err != nil {
			w.logger.Warn("unable to lstat", "path", path, "error", err)
			continue
		}

		// Symlinks are never recorded and never traversed.
		if meta.IsSymlink() {
			continue
		}

		if c := Classify(w.identity, meta, w.extended); c != CategoryNone {
			res.Record(c, NewFileRecord(path, meta))
		}

		// Descent is gated on execute capability, not read: a directory
		// the identity can enter is reachable even when unlistable modes
		// on ancestors would suggest otherwise.
		if meta.IsDir() && CanExecute(w.identity, meta) {
			w.walk(path, res)
		}
	}
}

// joinEntry joins dir and name with a single separator, enforcing the
// configured path bound.
func (w *Walker) joinEntry(dir, name string) (string, bool) {
	path := dir + "/" + name
	if strings.HasSuffix(dir, "/") {
		path = dir + name
	}
	if len(path) > w.maxPathLen {
		return "", false
	}
	return path, true
}
