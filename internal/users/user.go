// Package users implements the in-memory user table of UOCFlix.
//
// A User owns its identity strings and a stack of favorite films. A Table is
// an ordered collection of Users keyed by username; it keeps its own copy of
// every user added to it, so later changes to the caller's User do not leak
// into the table and vice versa.
package users

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/uocflix/internal/common"
	"github.com/dmitrijs2005/uocflix/internal/favorites"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// userInput carries the constructor arguments through validation.
type userInput struct {
	Username string `validate:"required"`
	Name     string `validate:"required"`
	Mail     string `validate:"required"`
}

// User is a registered catalog user.
type User struct {
	Username string
	Name     string
	Mail     string

	favorites *favorites.Stack
}

// NewUser validates the fields and returns a fully initialized User with an
// empty favorites stack. On error no User is returned.
func NewUser(username, name, mail string) (*User, error) {
	in := userInput{Username: username, Name: name, Mail: mail}
	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return nil, fmt.Errorf("%s failed on %q: %w", strings.ToLower(fe.Field()), fe.Tag(), common.ErrorInvalidInput)
		}
		return nil, fmt.Errorf("%v: %w", err, common.ErrorInvalidInput)
	}

	return &User{
		Username:  strings.Clone(username),
		Name:      strings.Clone(name),
		Mail:      strings.Clone(mail),
		favorites: favorites.NewStack(),
	}, nil
}

// Free releases the fields and the favorites of u. Calling Free twice is safe.
func (u *User) Free() {
	u.Username = ""
	u.Name = ""
	u.Mail = ""
	if u.favorites != nil {
		u.favorites.Free()
		u.favorites = nil
	}
}

// Equals reports whether both users have identical username, name and mail.
// Favorites are not compared.
func (u *User) Equals(other *User) bool {
	return u.Username == other.Username &&
		u.Name == other.Name &&
		u.Mail == other.Mail
}

// CopyFrom replaces u with a deep copy of src's identity fields.
// The favorites of u are reset to an empty stack; src's favorites are not copied.
// If src does not hold valid fields, u is left as it was.
func (u *User) CopyFrom(src *User) error {
	c, err := NewUser(src.Username, src.Name, src.Mail)
	if err != nil {
		return err
	}
	u.Free()
	*u = *c
	return nil
}

// stack returns the favorites of u, creating the stack for zero-value or
// freed users.
func (u *User) stack() *favorites.Stack {
	if u.favorites == nil {
		u.favorites = favorites.NewStack()
	}
	return u.favorites
}

func (u *User) String() string {
	return fmt.Sprintf("%s (%s) <%s>", u.Username, u.Name, u.Mail)
}
