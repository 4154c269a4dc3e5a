// Package favorites implements the LIFO stack of favorite films owned by a
// user. The most recently pushed favorite is the first one traversed.
package favorites

import (
	"time"

	"github.com/dmitrijs2005/uocflix/internal/catalog"
	"github.com/dmitrijs2005/uocflix/internal/common"
	"github.com/google/uuid"
)

// Favorite is a user's saved reference to a film.
type Favorite struct {
	ID      uuid.UUID
	Film    catalog.Film
	AddedAt time.Time
}

// New wraps film in a Favorite with a fresh ID.
func New(film catalog.Film) Favorite {
	return Favorite{ID: uuid.New(), Film: film, AddedAt: time.Now()}
}

type node struct {
	fav  Favorite
	next *node
}

// Stack is a singly linked stack of favorites. The zero value is an empty stack.
type Stack struct {
	first *node
	size  int
}

// NewStack returns an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push puts fav on top of the stack.
func (s *Stack) Push(fav Favorite) {
	s.first = &node{fav: fav, next: s.first}
	s.size++
}

// Top returns the most recently pushed favorite.
func (s *Stack) Top() (Favorite, error) {
	if s.first == nil {
		return Favorite{}, common.ErrorEmptyStack
	}
	return s.first.fav, nil
}

// Pop removes and returns the most recently pushed favorite.
func (s *Stack) Pop() (Favorite, error) {
	if s.first == nil {
		return Favorite{}, common.ErrorEmptyStack
	}
	n := s.first
	s.first = n.next
	n.next = nil
	s.size--
	return n.fav, nil
}

func (s *Stack) Empty() bool {
	return s.first == nil
}

func (s *Stack) Len() int {
	return s.size
}

// Duplicate returns an independent stack holding the same favorites in the
// same order. Popping the duplicate leaves s untouched.
func (s *Stack) Duplicate() *Stack {
	dup := &Stack{size: s.size}
	tail := &dup.first
	for n := s.first; n != nil; n = n.next {
		*tail = &node{fav: n.fav}
		tail = &(*tail).next
	}
	return dup
}

// Free drops every node. The stack is empty and reusable afterwards.
func (s *Stack) Free() {
	for s.first != nil {
		n := s.first
		s.first = n.next
		n.next = nil
	}
	s.size = 0
}

// Items returns the favorites in pop order.
func (s *Stack) Items() []Favorite {
	out := make([]Favorite, 0, s.size)
	for n := s.first; n != nil; n = n.next {
		out = append(out, n.fav)
	}
	return out
}

// CountPerSeries counts the favorites whose film belongs to series.
// Series are matched by ID.
func (s *Stack) CountPerSeries(series *catalog.Series) int {
	return countPerSeries(s.first, series)
}

func countPerSeries(n *node, series *catalog.Series) int {
	if n == nil {
		return 0
	}
	c := countPerSeries(n.next, series)
	if fs := n.fav.Film.Series; fs != nil && series != nil && fs.ID == series.ID {
		c++
	}
	return c
}

// LengthInMin sums the film durations of all favorites, in minutes.
func (s *Stack) LengthInMin() int {
	return lengthInMin(s.first)
}

func lengthInMin(n *node) int {
	if n == nil {
		return 0
	}
	return n.fav.Film.LengthInMin() + lengthInMin(n.next)
}
