package usage

import "errors"

// ErrQuotaExceeded is returned by quota-gated services when a free user
// has exhausted the daily limit. The denial leaves the counter
// untouched.
var ErrQuotaExceeded = errors.New("daily usage limit reached")
