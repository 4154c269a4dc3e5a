package users

import (
	"fmt"
	"slices"

	"github.com/dmitrijs2005/uocflix/internal/common"
)

// Table is an ordered collection of users with unique usernames.
// The zero value is an empty table with no backing storage.
type Table struct {
	elements []*User
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{}
}

// Free releases every user in the table, including their favorites,
// and returns the table to the empty state.
func (t *Table) Free() {
	for _, u := range t.elements {
		u.Free()
	}
	t.elements = nil
}

// Add appends a copy of user at the end of the table. The copy starts with
// no favorites. Adding a username that is already present fails with
// common.ErrorDuplicated and leaves the table unchanged.
func (t *Table) Add(user *User) error {
	if t.Find(user.Username) != nil {
		return fmt.Errorf("user %q: %w", user.Username, common.ErrorDuplicated)
	}

	u, err := NewUser(user.Username, user.Name, user.Mail)
	if err != nil {
		return err
	}

	t.elements = append(t.elements, u)
	return nil
}

// Remove deletes the user with the same username as user. Survivors keep
// their relative order. Removing the last user drops the backing storage.
func (t *Table) Remove(user *User) error {
	i := t.index(user.Username)
	if i < 0 {
		return fmt.Errorf("user %q: %w", user.Username, common.ErrorNotFound)
	}

	removed := t.elements[i]
	t.elements = slices.Delete(t.elements, i, i+1)
	removed.Free()

	if len(t.elements) == 0 {
		t.elements = nil
	}
	return nil
}

// Find returns the user with the given username, or nil if absent.
// The returned pointer is owned by the table: changing its Username, or
// calling CopyFrom on it, can break username uniqueness.
func (t *Table) Find(username string) *User {
	if i := t.index(username); i >= 0 {
		return t.elements[i]
	}
	return nil
}

func (t *Table) index(username string) int {
	for i, u := range t.elements {
		if u.Username == username {
			return i
		}
	}
	return -1
}

// Size returns the number of users.
func (t *Table) Size() int {
	return len(t.elements)
}

// Users returns the users in table order. The slice is a snapshot; the
// users themselves are owned by the table, as with Find.
func (t *Table) Users() []*User {
	return slices.Clone(t.elements)
}

// Equals reports whether both tables have the same size and every username
// of other is present in t, in any order. Only usernames are compared:
// tables whose users differ in name, mail or favorites are still equal.
func (t *Table) Equals(other *Table) bool {
	if t.Size() != other.Size() {
		return false
	}
	for _, u := range other.elements {
		if t.Find(u.Username) == nil {
			return false
		}
	}
	return true
}

// CopyFrom replaces the contents of t with copies of the users in src.
// The copies start with no favorites. On error t is left unchanged.
func (t *Table) CopyFrom(src *Table) error {
	if t == src {
		return nil
	}

	var elements []*User
	for _, su := range src.elements {
		u, err := NewUser(su.Username, su.Name, su.Mail)
		if err != nil {
			return err
		}
		elements = append(elements, u)
	}

	t.Free()
	t.elements = elements
	return nil
}
