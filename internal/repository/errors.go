// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as handlers
// to distinguish between different failure scenarios. For example,
// ErrEmailExists and ErrUsernameExists report which uniqueness invariant a
// registration attempt violated, while ErrItemNotFound covers both a
// nonexistent item id and an id that belongs to another owner — the two
// cases are deliberately indistinguishable so callers cannot probe other
// users' item ids.
package repository

import "errors"

// ErrEmailExists is returned when registration would violate the unique
// email constraint. Handlers translate this into an HTTP 400 response
// naming the email field.
var ErrEmailExists = errors.New("email already exists")

// ErrUsernameExists is returned when registration would violate the unique
// username constraint.
var ErrUsernameExists = errors.New("username already exists")

// ErrItemNotFound is returned by owner-scoped item lookups and deletes when
// no row matches the combined (id, owner) filter.
var ErrItemNotFound = errors.New("item not found")
