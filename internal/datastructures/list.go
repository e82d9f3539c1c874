package datastructures

import (
	"iter"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument is returned when a node is used against a list it does not belong to.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyList is returned when popping from an empty list.
	ErrEmptyList = errors.New("list is empty")
)

type (
	// List represents a doubly linked list.
	//
	// The zero value is an empty list ready to use. A List is not safe for
	// concurrent use; callers must serialize access.
	List[T any] struct {
		head *Node[T]
		tail *Node[T]
	}

	// Node represents an element in the doubly linked list.
	Node[T any] struct {
		Value T

		next *Node[T]
		prev *Node[T]
		// list is the owning list, nil while the node is detached.
		list *List[T]
	}
)

// NewList creates a new list.
func NewList[T any]() *List[T] {
	return &List[T]{}
}

// NewNode creates a detached node carrying value.
func NewNode[T any](value T) *Node[T] {
	return &Node[T]{Value: value}
}

// Next returns the following node or nil.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the preceding node or nil.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// Attached reports whether the node currently belongs to a list.
func (n *Node[T]) Attached() bool {
	return n.list != nil
}

// Head returns the first node, or nil if the list is empty.
func (l *List[T]) Head() *Node[T] {
	return l.head
}

// Tail returns the last node, or nil if the list is empty.
func (l *List[T]) Tail() *Node[T] {
	return l.tail
}

// Empty reports whether the list holds no nodes.
func (l *List[T]) Empty() bool {
	return l.head == nil
}

// Insert adds newNode to the list. With a nil after the node becomes the new
// head, otherwise it is spliced in immediately following after.
func (l *List[T]) Insert(newNode, after *Node[T]) error {
	if newNode == nil {
		return errors.Wrap(ErrInvalidArgument, "insert: nil node")
	}
	if newNode.list != nil {
		return errors.Wrap(ErrInvalidArgument, "insert: node already belongs to a list")
	}
	if after != nil && after.list != l {
		return errors.Wrap(ErrInvalidArgument, "insert: anchor node is not a member of this list")
	}

	if after != nil {
		newNode.next = after.next
		after.next = newNode
	} else {
		newNode.next = l.head
		l.head = newNode
	}
	newNode.prev = after
	if newNode.next != nil {
		newNode.next.prev = newNode
	} else {
		l.tail = newNode
	}
	newNode.list = l
	return nil
}

// Remove detaches oldNode from the list and clears its links.
func (l *List[T]) Remove(oldNode *Node[T]) error {
	if oldNode == nil {
		return errors.Wrap(ErrInvalidArgument, "remove: nil node")
	}
	if oldNode.list != l {
		return errors.Wrap(ErrInvalidArgument, "remove: node is not a member of this list")
	}

	if oldNode.prev == nil {
		l.head = oldNode.next
	} else {
		oldNode.prev.next = oldNode.next
	}
	if oldNode.next == nil {
		l.tail = oldNode.prev
	} else {
		oldNode.next.prev = oldNode.prev
	}

	oldNode.next = nil
	oldNode.prev = nil
	oldNode.list = nil
	return nil
}

// Elements yields the payloads from head to tail. Mutating the list while
// ranging over the sequence is unsupported.
func (l *List[T]) Elements() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// Backward yields the payloads from tail to head.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// PushFront adds a value to the left (head) of the list.
func (l *List[T]) PushFront(value T) *Node[T] {
	n := NewNode(value)
	// A fresh node and a nil anchor cannot fail.
	_ = l.Insert(n, nil)
	return n
}

// PushBack adds a value to the right (tail) of the list.
func (l *List[T]) PushBack(value T) *Node[T] {
	n := NewNode(value)
	_ = l.Insert(n, l.tail)
	return n
}

// PopFront removes and returns the value from the left (head) of the list.
func (l *List[T]) PopFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmptyList
	}
	n := l.head
	if err := l.Remove(n); err != nil {
		var zero T
		return zero, err
	}
	return n.Value, nil
}

// PopBack removes and returns the value from the right (tail) of the list.
func (l *List[T]) PopBack() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, ErrEmptyList
	}
	n := l.tail
	if err := l.Remove(n); err != nil {
		var zero T
		return zero, err
	}
	return n.Value, nil
}

// Len counts the nodes by walking the list. It is O(n); no counter is kept.
func (l *List[T]) Len() int {
	count := 0
	for n := l.head; n != nil; n = n.next {
		count++
	}
	return count
}

// Clear removes all elements from the list, detaching every node.
func (l *List[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		n.next = nil
		n.prev = nil
		n.list = nil
		n = next
	}
	l.head = nil
	l.tail = nil
}
