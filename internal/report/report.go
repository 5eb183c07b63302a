// Package report renders a finished scan for humans (tables) and for
// machines (JSON).
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/provide-io/axscan/pkg/scan"
	"github.com/provide-io/axscan/pkg/utils/permissions"
)

// Reporter writes scan output to a single destination writer.
type Reporter struct {
	out   io.Writer
	names *nameCache
}

// New creates a Reporter writing to out.
func New(out io.Writer) *Reporter {
	return &Reporter{
		out:   out,
		names: newNameCache(),
	}
}

// PrintIdentity writes the resolved-identity banner, e.g.
// "uid=1000(joe), groups=4(adm),1000(joe)". Unknown names render as "?".
func (r *Reporter) PrintIdentity(id scan.Identity, username string) {
	if username == "" {
		username = "?"
	}

	var groups []string
	for _, gid := range id.GIDs() {
		name := r.names.groupName(gid)
		if name == "" {
			name = "?"
		}
		groups = append(groups, fmt.Sprintf("%d(%s)", gid, name))
	}

	fmt.Fprintf(r.out, "uid=%d(%s), groups=%s\n",
		id.UID(), username, strings.Join(groups, ","))
}

// PrintResult writes every populated bucket in priority order. The
// extended buckets are shown only when the scan ran in extended mode.
func (r *Reporter) PrintResult(res *scan.Result, extended bool) {
	r.printBucket(scan.CategorySetUID, &res.SetUID)
	r.printBucket(scan.CategorySetGID, &res.SetGID)
	r.printBucket(scan.CategoryWritable, &res.Writable)
	if extended {
		r.printBucket(scan.CategoryReadable, &res.Readable)
		r.printBucket(scan.CategoryExecutableOnly, &res.ExecutableOnly)
	}
}

func (r *Reporter) printBucket(c scan.Category, b *scan.Bucket) {
	fmt.Fprintf(r.out, "Found %d entries that are %s\n", b.Len(), c)
	if b.Len() == 0 {
		return
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(r.out)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"TYPE", "MODE", "USER", "GROUP", "PATH"})
	for _, rec := range b.Records() {
		tw.AppendRow(table.Row{
			rec.Kind.String(),
			permissions.FormatOctal(rec.Mode),
			r.names.userLabel(rec.UID),
			r.names.groupLabel(rec.GID),
			rec.Path,
		})
	}
	tw.Render()
}
