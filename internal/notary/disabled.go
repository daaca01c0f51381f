package notary

import (
	"context"

	models "github.com/mwansa-dev/voteledger/internal/models"
)

// DisabledClient rejects every call. Used when no external ledger is
// configured, votes are then recorded in the system of record only.
type DisabledClient struct{}

func NewDisabledClient() *DisabledClient {
	return &DisabledClient{}
}

func (client *DisabledClient) NotarizeVote(ctx context.Context, vote *models.Vote) (string, error) {
	return "", ErrUnavailable
}

func (client *DisabledClient) HasVoterVoted(ctx context.Context, voterId string, electionId string) (bool, error) {
	return false, ErrUnavailable
}
