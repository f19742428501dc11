// Package locker serializes work per key. The watchlist engine takes one
// lock per (scope, subject) around its ledger read-modify-write.
package locker

import "errors"

// Unlock releases a held lock. Calling it more than once is a no-op.
type Unlock func()

// ErrLockTimeout is returned when a lock could not be acquired before the
// context ended.
var ErrLockTimeout = errors.New("lock timeout")

// Key builds the lock key for a subject within a scope.
func Key(scopeID, subjectID string) string {
	return scopeID + ":" + subjectID
}
