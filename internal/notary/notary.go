package notary

import (
	"context"
	"errors"

	models "github.com/mwansa-dev/voteledger/internal/models"
)

var ErrUnavailable = errors.New("external ledger unavailable")

// Client is the external ledger used to notarize votes that are already
// recorded in the system of record. Calls may fail or time out, the caller
// treats every failure as non-fatal.
type Client interface {
	NotarizeVote(ctx context.Context, vote *models.Vote) (string, error)
	HasVoterVoted(ctx context.Context, voterId string, electionId string) (bool, error)
}
