package keyword

import "k8s.io/utils/ptr"

// Well-known values of a status element's "status" attribute.
const (
	StatusPass   = "PASS"
	StatusFail   = "FAIL"
	StatusSkip   = "SKIP"
	StatusNotRun = "NOT RUN"
)

// Record is the simplified view of a keyword and of the keywords it contains.
// Keywords is nil, and omitted once serialized, when the keyword has no child keyword.
type Record struct {
	Name      *string  `json:"name"               yaml:"name"`
	Status    *string  `json:"status"             yaml:"status"`
	StartTime *string  `json:"starttime"          yaml:"starttime"`
	EndTime   *string  `json:"endtime"            yaml:"endtime"`
	Keywords  []Record `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

// VisitorFunc visits a record of the tree along with its depth, the root being at depth 0.
type VisitorFunc func(record Record, depth int)

// Walk applies the visitor func to the current record, then to every child record, recursively.
func (r Record) Walk(visitor VisitorFunc) {
	r.walk(visitor, 0)
}

func (r Record) walk(visitor VisitorFunc, depth int) {
	visitor(r, depth)
	for _, child := range r.Keywords {
		child.walk(visitor, depth+1)
	}
}

// Summary counts the keywords of a tree by status.
type Summary struct {
	Total    int
	ByStatus map[string]int
}

// Summarize walks the whole tree and counts every keyword by status.
// Keywords without a status attribute are counted under the empty string.
func (r Record) Summarize() Summary {
	summary := Summary{ByStatus: map[string]int{}}
	r.Walk(func(record Record, _ int) {
		summary.Total++
		summary.ByStatus[ptr.Deref(record.Status, "")]++
	})
	return summary
}

// Failed reports whether at least one keyword of the tree has the FAIL status.
func (s Summary) Failed() bool {
	return s.ByStatus[StatusFail] > 0
}

// DisplayName returns the keyword name, or an empty string when it has none.
func (r Record) DisplayName() string {
	return ptr.Deref(r.Name, "")
}

// DisplayStatus returns the keyword status, or an empty string when it has none.
func (r Record) DisplayStatus() string {
	return ptr.Deref(r.Status, "")
}
