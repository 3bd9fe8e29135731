package corpus

import "errors"

// ErrAllChunksRemoved means the validator flagged every chunk of a non-empty
// corpus. This is a hard stop requiring operator review of the filtering
// rules, never a condition to downgrade or retry.
var ErrAllChunksRemoved = errors.New("corpus: no valid chunks remained after validation")
