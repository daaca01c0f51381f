package models

import (
	"fmt"
	"time"

	"github.com/mwansa-dev/voteledger/internal/crypto/hash"
)

type Vote struct {
	Id             string    `json:"voteId"`
	VoterId        string    `json:"voterId"`
	ElectionId     string    `json:"electionId"`
	CandidateId    string    `json:"candidateId"`
	PositionId     string    `json:"positionId"`
	WardCode       string    `json:"wardCode"`
	Timestamp      time.Time `json:"timestamp"`
	Nonce          string    `json:"nonce"`
	VoteHash       string    `json:"voteHash"`
	TransactionRef string    `json:"transactionRef,omitempty"`
}

// GetVoteHash binds (voter, election, candidate, timestamp, nonce) together.
// The hash is tamper-evidence only, it is never the duplicate-vote key.
func (vote *Vote) GetVoteHash() string {
	preimage := fmt.Sprintf("%s|%s|%s|%d|%s",
		vote.VoterId,
		vote.ElectionId,
		vote.CandidateId,
		vote.Timestamp.UnixNano(),
		vote.Nonce)

	return hash.HashStringHex(preimage)
}

func (vote *Vote) SetVoteHash() {
	vote.VoteHash = vote.GetVoteHash()
}
