package notary

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	hash "github.com/mwansa-dev/voteledger/internal/crypto/hash"
	models "github.com/mwansa-dev/voteledger/internal/models"
	structures "github.com/mwansa-dev/voteledger/internal/structures"
)

// SimulatedClient is a process-local stand-in for a real blockchain client.
// Transaction references are derived from the vote content so repeated
// notarization of the same vote yields the same reference.
type SimulatedClient struct {
	mu sync.Mutex

	latency     time.Duration
	failureRate float64
	rng         *rand.Rand

	transactions   map[string]string
	voterElections map[string]*structures.StringSet
}

func NewSimulatedClient(latency time.Duration, failureRate float64) *SimulatedClient {
	return &SimulatedClient{
		latency:        latency,
		failureRate:    failureRate,
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
		transactions:   make(map[string]string),
		voterElections: make(map[string]*structures.StringSet),
	}
}

func (client *SimulatedClient) NotarizeVote(ctx context.Context, vote *models.Vote) (string, error) {
	if client.latency > 0 {
		select {
		case <-time.After(client.latency):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	client.mu.Lock()
	defer client.mu.Unlock()

	if transactionRef, exists := client.transactions[vote.Id]; exists {
		return transactionRef, nil
	}

	if client.failureRate > 0 && client.rng.Float64() < client.failureRate {
		return "", ErrUnavailable
	}

	transactionRef := "0x" + hash.HashStringHex(fmt.Sprintf("%s|%s|%s", vote.Id, vote.VoteHash, vote.VoterId))
	client.transactions[vote.Id] = transactionRef

	set, exists := client.voterElections[vote.VoterId]
	if !exists {
		set = structures.NewStringSet()
		client.voterElections[vote.VoterId] = set
	}
	set.Add(vote.ElectionId)

	return transactionRef, nil
}

// HasVoterVoted is advisory only, the ledger store reservation index stays
// authoritative.
func (client *SimulatedClient) HasVoterVoted(ctx context.Context, voterId string, electionId string) (bool, error) {
	client.mu.Lock()
	defer client.mu.Unlock()

	set, exists := client.voterElections[voterId]
	return exists && set.Contains(electionId), nil
}
