package coordinator

import "errors"

// Terminal rejections are reported verbatim to the caller and never retried
// automatically. ErrStorage is the only retryable failure, rollback
// guarantees no partial reservation survives it.
var (
	ErrValidation        = errors.New("invalid vote submission")
	ErrElectionNotActive = errors.New("election is not active")
	ErrNotEligible       = errors.New("voter is not eligible for this election")
	ErrDuplicateVote     = errors.New("voter has already voted in this election")
	ErrStorage           = errors.New("failed to record vote")
)
