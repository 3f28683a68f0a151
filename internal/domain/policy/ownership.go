// Package policy contains pure access-control decisions shared across
// resource types. Any new mutable resource must reuse these checks instead of
// re-implementing them.
package policy

import (
	domainerrors "quill/internal/domain/errors"
)

// AuthorizeOwner decides whether the requester may mutate a resource owned by
// authorID. It performs no I/O. A denial is always the Forbidden kind; callers
// must check resource existence beforehand so that a missing resource is never
// reported as forbidden.
func AuthorizeOwner(authorID, requesterID int64) error {
	if authorID != requesterID {
		return domainerrors.ErrForbidden
	}

	return nil
}
