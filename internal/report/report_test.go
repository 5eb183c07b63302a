package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provide-io/axscan/pkg/scan"
)

// Owner ids far outside any real user database, so label fallback is
// deterministic regardless of the host's passwd/group files.
const (
	strangerUID = 4000000123
	strangerGID = 4000000456
)

func sampleResult() *scan.Result {
	res := scan.NewResult()
	res.Record(scan.CategorySetUID, scan.FileRecord{
		Path: "/usr/bin/sudo-ish",
		Kind: scan.KindFile,
		Mode: 0o4755,
		UID:  strangerUID,
		GID:  strangerGID,
	})
	res.Record(scan.CategoryWritable, scan.FileRecord{
		Path: "/var/spool/drop",
		Kind: scan.KindDirectory,
		Mode: 0o777,
		UID:  strangerUID,
		GID:  strangerGID,
	})
	return res
}

func TestPrintIdentityBanner(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	id := scan.NewIdentity(1000, []uint32{strangerGID})
	r.PrintIdentity(id, "joe")

	assert.Contains(t, buf.String(), "uid=1000(joe)")
	// Unresolvable group names render as "?", matching the banner format.
	assert.Contains(t, buf.String(), "4000000456(?)")
}

func TestPrintResultTables(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	r.PrintResult(sampleResult(), false)
	out := buf.String()

	assert.Contains(t, out, "Found 1 entries that are set-uid executable")
	assert.Contains(t, out, "Found 0 entries that are set-gid executable")
	assert.Contains(t, out, "Found 1 entries that are writable")
	assert.Contains(t, out, "/usr/bin/sudo-ish")
	assert.Contains(t, out, "4755")
	assert.Contains(t, out, "directory")
	// Numeric fallback labels for unresolvable owners.
	assert.Contains(t, out, "4000000123")
	// Extended buckets stay hidden in standard mode.
	assert.NotContains(t, out, "readable")
	assert.NotContains(t, out, "only executable")
}

func TestPrintResultExtended(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	r.PrintResult(sampleResult(), true)
	out := buf.String()

	assert.Contains(t, out, "Found 0 entries that are readable")
	assert.Contains(t, out, "Found 0 entries that are only executable")
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	id := scan.NewIdentity(1000, []uint32{24, 1000})
	require.NoError(t, r.PrintJSON(id, "joe", sampleResult(), false))

	var doc struct {
		Identity struct {
			UID      uint32   `json:"uid"`
			Username string   `json:"username"`
			GIDs     []uint32 `json:"gids"`
		} `json:"identity"`
		SetUID []struct {
			Path      string `json:"path"`
			Kind      string `json:"kind"`
			Mode      uint32 `json:"mode"`
			ModeOctal string `json:"mode_octal"`
			UID       uint32 `json:"uid"`
		} `json:"set_uid"`
		SetGID   []json.RawMessage `json:"set_gid"`
		Writable []json.RawMessage `json:"writable"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, uint32(1000), doc.Identity.UID)
	assert.Equal(t, "joe", doc.Identity.Username)
	assert.Equal(t, []uint32{24, 1000}, doc.Identity.GIDs)

	require.Len(t, doc.SetUID, 1)
	assert.Equal(t, "/usr/bin/sudo-ish", doc.SetUID[0].Path)
	assert.Equal(t, "file", doc.SetUID[0].Kind)
	assert.Equal(t, uint32(0o4755), doc.SetUID[0].Mode)
	assert.Equal(t, "4755", doc.SetUID[0].ModeOctal)
	assert.Equal(t, uint32(strangerUID), doc.SetUID[0].UID)

	// Empty buckets encode as [], not null.
	assert.NotNil(t, doc.SetGID)
	assert.Len(t, doc.Writable, 1)
}
