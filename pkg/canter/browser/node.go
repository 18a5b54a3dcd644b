package browser

import "strings"

// Node is an in-memory Element used by the Memory browsing context.
type Node struct {
	tag      string
	attrs    map[string]string
	parent   *Node
	children []*Node
}

// NewNode creates a detached element. Attributes are given as name/value
// pairs; a trailing name without a value is ignored.
func NewNode(tag string, attrs ...string) *Node {
	n := &Node{
		tag:   strings.ToUpper(tag),
		attrs: make(map[string]string, len(attrs)/2),
	}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.attrs[attrs[i]] = attrs[i+1]
	}
	return n
}

// NewAnchor creates a detached <a> element pointing at href.
func NewAnchor(href string, attrs ...string) *Node {
	return NewNode("a", append([]string{"href", href}, attrs...)...)
}

// Append attaches child under n and returns the child for chaining.
func (n *Node) Append(child *Node) *Node {
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
	return child
}

func (n *Node) removeChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// SetAttribute sets or replaces an attribute.
func (n *Node) SetAttribute(name, value string) {
	n.attrs[name] = value
}

// RemoveAttribute deletes an attribute.
func (n *Node) RemoveAttribute(name string) {
	delete(n.attrs, name)
}

// Children returns the direct children of n.
func (n *Node) Children() []*Node {
	return n.children
}

func (n *Node) TagName() string {
	return n.tag
}

func (n *Node) Attribute(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

func (n *Node) Parent() Element {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *Node) IsSameNode(other Element) bool {
	o, ok := other.(*Node)
	return ok && o == n
}

// find returns the first node in the subtree rooted at n (inclusive) whose id
// attribute matches.
func (n *Node) find(id string) *Node {
	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if v, ok := cur.attrs["id"]; ok && v == id {
			return cur
		}
		for i := len(cur.children) - 1; i >= 0; i-- {
			stack = append(stack, cur.children[i])
		}
	}
	return nil
}
