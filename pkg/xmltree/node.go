package xmltree

// Node is an element of a parsed XML document.
type Node struct {
	Tag      string
	Attrs    map[string]string
	Children []*Node
}

// Attr returns the value of the named attribute, and whether it was set at all.
func (n *Node) Attr(name string) (string, bool) {
	value, ok := n.Attrs[name]
	return value, ok
}

// Child returns the first direct child with the given tag, or nil.
// Only the immediate children are inspected, never deeper descendants.
func (n *Node) Child(tag string) *Node {
	for _, child := range n.Children {
		if child.Tag == tag {
			return child
		}
	}
	return nil
}

// ChildrenByTag returns the direct children with the given tag, in document order.
func (n *Node) ChildrenByTag(tag string) []*Node {
	var children []*Node
	for _, child := range n.Children {
		if child.Tag == tag {
			children = append(children, child)
		}
	}
	return children
}
