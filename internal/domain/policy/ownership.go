package policy

import (
	"errors"

	"github.com/ystas1205/Educational-project/internal/domain/user"
)

var ErrNotOwner = errors.New("resource belongs to another user")

// Owned is a resource with a single owning user.
type Owned interface {
	OwnerID() int64
}

// EnsureOwner is the one place that decides whether actor may modify res.
func EnsureOwner(actor *user.User, res Owned) error {
	if actor == nil || res == nil || res.OwnerID() != actor.ID {
		return ErrNotOwner
	}
	return nil
}
