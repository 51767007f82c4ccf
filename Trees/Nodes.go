package Trees

// A node in the AVL tree. h is the height of the subtree rooted here, 0 for a leaf.
type node struct {
	v    int
	l, r *node
	h    int
}

// height of n, -1 for nil.
func height(n *node) int {
	if n == nil {
		return -1
	}
	return n.h
}

// fix the height of n from its children.
func (n *node) fix() {
	n.h = 1 + max(height(n.l), height(n.r))
}

// bf is the balance factor of n, height(right)-height(left).
func (n *node) bf() int {
	return height(n.r) - height(n.l)
}

// rotateLeft performs a left rotation on the subtree *n. n is passed by reference in order
// to modify its content.
// Time: O(1); Space: O(1)
func rotateLeft(n **node) {
	r := *n
	rc := r.r
	r.r = rc.l
	rc.l = r
	r.fix()
	rc.fix()
	*n = rc
}

// rotateRight performs a right rotation on the subtree *n. n is passed by reference in order
// to modify its content.
// Time: O(1); Space: O(1)
func rotateRight(n **node) {
	r := *n
	lc := r.l
	r.l = lc.r
	lc.r = r
	r.fix()
	lc.fix()
	*n = lc
}
