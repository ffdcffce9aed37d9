package svg2pptx

// LocalTransform returns the element's parsed transform attribute, or
// Identity when absent.
func (e *Element) LocalTransform() Matrix {
	t := e.Attr("transform")
	if t == "" {
		return Identity
	}
	return ParseTransform(t)
}

// WalkCTM walks the element tree depth-first in pre-order and passes each
// element together with its current transformation matrix to visit, which
// returns whether to descend into the element's children. Each node's CTM is
// its parent's CTM multiplied by the node's local transform; the root's
// parent is the viewport matrix itself. Matrices are passed by value so
// sibling subtrees cannot corrupt each other's accumulated transform.
func WalkCTM(root *Element, viewport Matrix, visit func(*Element, Matrix) bool) {
	ctm := viewport.Mul(root.LocalTransform())
	if !visit(root, ctm) {
		return
	}
	for _, child := range root.Children {
		WalkCTM(child, ctm, visit)
	}
}
