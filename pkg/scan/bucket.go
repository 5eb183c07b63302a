//go:build !windows

package scan

// Category names the risk bucket an object is assigned to.
type Category int

const (
	CategoryNone Category = iota
	CategorySetUID
	CategorySetGID
	CategoryWritable
	CategoryReadable
	CategoryExecutableOnly
)

// String returns the reporter-facing category name.
func (c Category) String() string {
	switch c {
	case CategorySetUID:
		return "set-uid executable"
	case CategorySetGID:
		return "set-gid executable"
	case CategoryWritable:
		return "writable"
	case CategoryReadable:
		return "readable"
	case CategoryExecutableOnly:
		return "only executable"
	}
	return "none"
}

// Classify assigns an object to at most one category. The chain is
// ordered by descending attacker value: privileged-execution bits beat
// writability, which beats the extended-mode categories. First match
// wins, so an object lands in exactly one bucket however many criteria
// it satisfies.
func Classify(id Identity, meta Metadata, extended bool) Category {
	switch {
	case IsSetuidExecutable(id, meta):
		return CategorySetUID
	case IsSetgidExecutable(id, meta):
		return CategorySetGID
	case CanWrite(id, meta):
		return CategoryWritable
	case extended && CanRead(id, meta):
		return CategoryReadable
	case extended && CanExecute(id, meta):
		return CategoryExecutableOnly
	}
	return CategoryNone
}

// Bucket is an append-only sequence of records in discovery order.
type Bucket struct {
	records []FileRecord
}

// Append adds a record. There is no removal; buckets are write-once per
// entry and read-many after traversal completes.
func (b *Bucket) Append(rec FileRecord) {
	b.records = append(b.records, rec)
}

// Len returns the number of recorded entries.
func (b *Bucket) Len() int {
	return len(b.records)
}

// Records returns the recorded entries in discovery order. The returned
// slice is the bucket's backing storage; callers must not mutate it.
func (b *Bucket) Records() []FileRecord {
	return b.records
}

// Result accumulates every bucket for one scan invocation, across all
// roots. Readable and ExecutableOnly are only populated in extended mode.
type Result struct {
	SetUID         Bucket
	SetGID         Bucket
	Writable       Bucket
	Readable       Bucket
	ExecutableOnly Bucket
}

// NewResult returns an empty Result ready to accumulate records.
func NewResult() *Result {
	return &Result{}
}

// Bucket returns the bucket backing a category, or nil for CategoryNone.
func (r *Result) Bucket(c Category) *Bucket {
	switch c {
	case CategorySetUID:
		return &r.SetUID
	case CategorySetGID:
		return &r.SetGID
	case CategoryWritable:
		return &r.Writable
	case CategoryReadable:
		return &r.Readable
	case CategoryExecutableOnly:
		return &r.ExecutableOnly
	}
	return nil
}

// Record appends rec to the bucket for c. CategoryNone is a no-op.
func (r *Result) Record(c Category, rec FileRecord) {
	if b := r.Bucket(c); b != nil {
		b.Append(rec)
	}
}

// Total returns the number of records across all buckets.
func (r *Result) Total() int {
	return r.SetUID.Len() + r.SetGID.Len() + r.Writable.Len() +
		r.Readable.Len() + r.ExecutableOnly.Len()
}
