package HashSet

// element is a link in a bucket's chain.
type element struct {
	v    int
	next *element
}

// find the link pointing at v in the chain starting at *head, or the terminating nil link.
func find(head **element, v int) **element {
	for ; *head != nil; head = &(*head).next {
		if (*head).v == v {
			break
		}
	}
	return head
}
