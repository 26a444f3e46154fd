package internal

// Merge sort the handles by x, threading the result through the next links.
// Returns the head of the list; the tail points at the sentinel. Only x is
// compared, and equal keys keep their order in refs.
func (a vertexArena) sortByX(refs []ref) ref {
	if len(refs) == 0 {
		return sentinel
	}
	if len(refs) == 1 {
		a[refs[0]].next = sentinel
		return refs[0]
	}

	left := a.sortByX(refs[:len(refs)/2])
	right := a.sortByX(refs[len(refs)/2:])

	// Both halves are non-empty, so the first pick always sets head.
	head, tail := sentinel, sentinel
	for left != sentinel && right != sentinel {
		var r ref
		if a[left].x <= a[right].x {
			r, left = left, a[left].next
		} else {
			r, right = right, a[right].next
		}
		if head == sentinel {
			head = r
		} else {
			a[tail].next = r
		}
		tail = r
	}

	// Splice on whatever is left over
	if left != sentinel {
		a[tail].next = left
	} else {
		a[tail].next = right
	}
	return head
}
