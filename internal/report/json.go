package report

import (
	"encoding/json"
	"fmt"

	"github.com/provide-io/axscan/pkg/scan"
	"github.com/provide-io/axscan/pkg/utils/permissions"
)

type jsonIdentity struct {
	UID      uint32   `json:"uid"`
	Username string   `json:"username,omitempty"`
	GIDs     []uint32 `json:"gids"`
}

type jsonRecord struct {
	scan.FileRecord
	ModeOctal string `json:"mode_octal"`
	User      string `json:"user,omitempty"`
	Group     string `json:"group,omitempty"`
}

type jsonReport struct {
	Identity       jsonIdentity `json:"identity"`
	SetUID         []jsonRecord `json:"set_uid"`
	SetGID         []jsonRecord `json:"set_gid"`
	Writable       []jsonRecord `json:"writable"`
	Readable       []jsonRecord `json:"readable,omitempty"`
	ExecutableOnly []jsonRecord `json:"executable_only,omitempty"`
}

// PrintJSON writes the whole scan as one indented JSON document.
func (r *Reporter) PrintJSON(id scan.Identity, username string, res *scan.Result, extended bool) error {
	doc := jsonReport{
		Identity: jsonIdentity{
			UID:      id.UID(),
			Username: username,
			GIDs:     id.GIDs(),
		},
		SetUID:   r.jsonRecords(&res.SetUID),
		SetGID:   r.jsonRecords(&res.SetGID),
		Writable: r.jsonRecords(&res.Writable),
	}
	if extended {
		doc.Readable = r.jsonRecords(&res.Readable)
		doc.ExecutableOnly = r.jsonRecords(&res.ExecutableOnly)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to encode report: %w", err)
	}
	data = append(data, '\n')
	if _, err := r.out.Write(data); err != nil {
		return fmt.Errorf("unable to write report: %w", err)
	}
	return nil
}

// jsonRecords keeps empty buckets as [] rather than null.
func (r *Reporter) jsonRecords(b *scan.Bucket) []jsonRecord {
	out := make([]jsonRecord, 0, b.Len())
	for _, rec := range b.Records() {
		out = append(out, jsonRecord{
			FileRecord: rec,
			ModeOctal:  permissions.FormatOctal(rec.Mode),
			User:       r.names.userName(rec.UID),
			Group:      r.names.groupName(rec.GID),
		})
	}
	return out
}
