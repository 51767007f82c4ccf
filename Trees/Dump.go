package Trees

import (
	"fmt"
	"io"

	"github.com/xlab/treeprint"
)

// shown in place of a missing child when the sibling exists.
const nilLabel = "·"

// dump draws a binary tree with treeprint. nilN is the value of an absent child; kids and label
// expose the children and the caption of a node.
func dump[N comparable](w io.Writer, root, nilN N, kids func(N) (N, N), label func(N) string) {
	if root == nilN {
		fmt.Fprintln(w, "<empty>")
		return
	}
	t := treeprint.NewWithRoot(label(root))
	var walk func(br treeprint.Tree, n N)
	walk = func(br treeprint.Tree, n N) {
		l, r := kids(n)
		if l == nilN && r == nilN {
			return
		}
		for _, c := range [2]N{l, r} {
			if c == nilN {
				br.AddNode(nilLabel)
			} else {
				walk(br.AddBranch(label(c)), c)
			}
		}
	}
	walk(t, root)
	fmt.Fprint(w, t.String())
}
