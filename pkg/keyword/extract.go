package keyword

import (
	"errors"
	"fmt"
	"strings"

	"k8s.io/utils/ptr"

	"github.com/radiofrance/robotkw/pkg/xmltree"
)

const (
	keywordTag = "kw"
	statusTag  = "status"

	nameAttr      = "name"
	statusAttr    = "status"
	startTimeAttr = "starttime"
	endTimeAttr   = "endtime"
)

var (
	// ErrMissingStatus is returned when a keyword has no direct status element.
	ErrMissingStatus = errors.New("keyword has no status element")
	// ErrNilNode is returned when Extract is given no node at all.
	ErrNilNode = errors.New("nil keyword node")
)

// Extract builds the Record of the given keyword node and of every keyword it contains.
// The status and the child keywords are looked up among the direct children only, so that
// each keyword binds to its own status element and never to one of a nested keyword.
func Extract(node *xmltree.Node) (Record, error) {
	if node == nil {
		return Record{}, ErrNilNode
	}
	return extract(node, nil)
}

func extract(node *xmltree.Node, path []string) (Record, error) {
	record := Record{
		Name: attr(node, nameAttr),
	}
	path = append(path, record.DisplayName())

	status := node.Child(statusTag)
	if status == nil {
		return Record{}, fmt.Errorf("%q: %w", strings.Join(path, " > "), ErrMissingStatus)
	}
	record.Status = attr(status, statusAttr)
	record.StartTime = attr(status, startTimeAttr)
	record.EndTime = attr(status, endTimeAttr)

	children := node.ChildrenByTag(keywordTag)
	if len(children) == 0 {
		return record, nil
	}

	record.Keywords = make([]Record, 0, len(children))
	for _, child := range children {
		childRecord, err := extract(child, path[:len(path):len(path)])
		if err != nil {
			return Record{}, err
		}
		record.Keywords = append(record.Keywords, childRecord)
	}

	return record, nil
}

// attr returns a pointer to the attribute value, or nil when the attribute is missing.
func attr(node *xmltree.Node, name string) *string {
	value, ok := node.Attr(name)
	if !ok {
		return nil
	}
	return ptr.To(value)
}
