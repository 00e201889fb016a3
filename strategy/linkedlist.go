package strategy

// none marks the absence of a neighbour in linkedList.
const none = -1

// linkedList is a doubly linked list over the fixed positions 0..n-1,
// with links stored as indices.
type linkedList struct {
	next, prev []int
	head, tail int
}

// newLinkedList links 0..n-1 in ascending order.
func newLinkedList(n int) *linkedList {
	l := &linkedList{
		next: make([]int, n),
		prev: make([]int, n),
		head: none,
		tail: none,
	}
	for i := 0; i < n; i++ {
		l.prev[i] = i - 1
		l.next[i] = i + 1
	}
	if n > 0 {
		l.next[n-1] = none
		l.head, l.tail = 0, n-1
	}
	return l
}

// moveToBack unlinks i and appends it after the current tail.
//
// Complexity: O(1).
func (l *linkedList) moveToBack(i int) {
	if i == l.tail {
		return
	}
	p, n := l.prev[i], l.next[i]
	if p == none {
		l.head = n
	} else {
		l.next[p] = n
	}
	l.prev[n] = p

	l.prev[i] = l.tail
	l.next[i] = none
	l.next[l.tail] = i
	l.tail = i
}

// items returns the positions from head to tail.
func (l *linkedList) items() []int {
	out := make([]int, 0, len(l.next))
	for i := l.head; i != none; i = l.next[i] {
		out = append(out, i)
	}
	return out
}
