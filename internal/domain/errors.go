package domain

import "errors"

// ErrStaleTransition is returned by guarded open-request state updates when
// the row is no longer in any of the expected source states. Callers treat it
// as "someone else already moved this request forward".
var ErrStaleTransition = errors.New("open request not in expected state")
