package store

import "errors"

// ErrNoRowsAffected is returned by SaveTransaction when the target row is
// gone. The engine re-checks existence under the customer lock, so hitting
// this indicates an out-of-band delete.
var ErrNoRowsAffected = errors.New("no rows affected")
