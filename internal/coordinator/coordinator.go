package coordinator

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	audit "github.com/mwansa-dev/voteledger/internal/audit"
	repositories "github.com/mwansa-dev/voteledger/internal/database/repositories"
	ledger "github.com/mwansa-dev/voteledger/internal/ledger"
	models "github.com/mwansa-dev/voteledger/internal/models"
	notary "github.com/mwansa-dev/voteledger/internal/notary"
)

const DefaultNotaryTimeout = 5 * time.Second

type SubmitState int

const (
	StateValidating SubmitState = iota
	StateReserving
	StateRecording
	StateNotarizing
	StateCompleted
	StateRejected
	StatePartiallyRecorded
)

func (state SubmitState) String() string {
	switch state {
	case StateValidating:
		return "Validating"
	case StateReserving:
		return "Reserving"
	case StateRecording:
		return "Recording"
	case StateNotarizing:
		return "Notarizing"
	case StateCompleted:
		return "Completed"
	case StateRejected:
		return "Rejected"
	case StatePartiallyRecorded:
		return "PartiallyRecorded"
	default:
		return "Unknown"
	}
}

type SubmitRequest struct {
	VoterId     string `json:"voterId"`
	ElectionId  string `json:"electionId"`
	CandidateId string `json:"candidateId"`
	PositionId  string `json:"positionId"`
	WardCode    string `json:"wardCode"`
}

func (request *SubmitRequest) validate() error {
	if request.VoterId == "" {
		return fmt.Errorf("%w: voterId is required", ErrValidation)
	}
	if request.ElectionId == "" {
		return fmt.Errorf("%w: electionId is required", ErrValidation)
	}
	if request.CandidateId == "" {
		return fmt.Errorf("%w: candidateId is required", ErrValidation)
	}
	if request.PositionId == "" {
		return fmt.Errorf("%w: positionId is required", ErrValidation)
	}
	if request.WardCode == "" {
		return fmt.Errorf("%w: wardCode is required", ErrValidation)
	}
	return nil
}

type SubmitResult struct {
	VoteId         string      `json:"voteId"`
	State          SubmitState `json:"-"`
	Recorded       bool        `json:"recorded"`
	Notarized      bool        `json:"notarized"`
	TransactionRef string      `json:"transactionRef,omitempty"`
}

// Coordinator drives each vote submission through
// Validating -> Reserving -> Recording -> Notarizing -> Completed. The ledger
// store reservation is the duplicate-vote guard, the relational write is the
// system of record and notarization is best effort.
type Coordinator struct {
	store    *ledger.Store
	repos    *repositories.Repositories
	notary   notary.Client
	recorder audit.Recorder

	notaryTimeout time.Duration
}

func NewCoordinator(store *ledger.Store, repos *repositories.Repositories, notaryClient notary.Client, recorder audit.Recorder, notaryTimeout time.Duration) *Coordinator {
	if notaryTimeout <= 0 {
		notaryTimeout = DefaultNotaryTimeout
	}

	return &Coordinator{
		store:         store,
		repos:         repos,
		notary:        notaryClient,
		recorder:      recorder,
		notaryTimeout: notaryTimeout,
	}
}

func (coordinator *Coordinator) SubmitVote(ctx context.Context, request *SubmitRequest) (*SubmitResult, error) {
	// Validating
	if err := request.validate(); err != nil {
		return nil, err
	}

	election := coordinator.store.GetElection(request.ElectionId)
	if election == nil {
		return nil, fmt.Errorf("%w: unknown election %s", ErrValidation, request.ElectionId)
	}

	if !election.IsActiveAt(time.Now()) {
		return nil, fmt.Errorf("%w: election %s is %s", ErrElectionNotActive, election.Id, election.StatusAt(time.Now()))
	}

	candidate := coordinator.store.GetCandidate(request.CandidateId)
	if candidate == nil || candidate.ElectionId != request.ElectionId {
		return nil, fmt.Errorf("%w: candidate %s is not standing in election %s", ErrValidation, request.CandidateId, request.ElectionId)
	}

	if !coordinator.store.IsVoterEligible(request.VoterId, request.ElectionId) {
		return nil, fmt.Errorf("%w: voter %s, election %s", ErrNotEligible, request.VoterId, request.ElectionId)
	}

	// Last cancellation point. Once the slot is reserved the submission runs
	// to completion so no orphaned reservation is left behind.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Reserving
	granted, alreadyVoted, err := coordinator.store.ReserveVoteSlot(request.VoterId, request.ElectionId)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	if alreadyVoted {
		coordinator.auditVoteSubmit(request, "", audit.StatusFailed, "duplicate vote rejected")
		return nil, fmt.Errorf("%w: voter %s, election %s", ErrDuplicateVote, request.VoterId, request.ElectionId)
	}

	if !granted {
		return nil, fmt.Errorf("%w: reservation not granted", ErrStorage)
	}

	// Recording
	vote := &models.Vote{
		Id:          "VOTE_" + uuid.NewString(),
		VoterId:     request.VoterId,
		ElectionId:  request.ElectionId,
		CandidateId: request.CandidateId,
		PositionId:  request.PositionId,
		WardCode:    request.WardCode,
		Timestamp:   time.Now().UTC(),
		Nonce:       uuid.NewString(),
	}
	vote.SetVoteHash()

	if err := coordinator.store.RecordVote(vote); err != nil {
		coordinator.releaseReservation(request.VoterId, request.ElectionId)
		coordinator.auditVoteSubmit(request, vote.Id, audit.StatusFailed, err.Error())
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	if err := coordinator.repos.Votes.Insert(vote); err != nil {
		if rollbackErr := coordinator.store.RollbackVote(vote.Id, request.VoterId, request.ElectionId); rollbackErr != nil {
			log.Printf("|Coordinator| Failed to roll back vote %s: %v", vote.Id, rollbackErr)
		}
		coordinator.auditVoteSubmit(request, vote.Id, audit.StatusFailed, err.Error())
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	result := &SubmitResult{
		VoteId:   vote.Id,
		Recorded: true,
	}

	// Notarizing, bounded so a hung external ledger cannot stall the caller.
	// Client cancellation is no longer honored past this point.
	notaryCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), coordinator.notaryTimeout)
	defer cancel()

	transactionRef, err := coordinator.notary.NotarizeVote(notaryCtx, vote)
	if err != nil {
		log.Printf("|Coordinator| Notarization failed for vote %s: %v", vote.Id, err)
		coordinator.auditLedgerTx(vote, "", audit.StatusFailed, err.Error())
		result.State = StatePartiallyRecorded
	} else {
		coordinator.attachTransactionRef(vote.Id, transactionRef)
		coordinator.auditLedgerTx(vote, transactionRef, audit.StatusSuccess, "")
		result.Notarized = true
		result.TransactionRef = transactionRef
		result.State = StateCompleted
	}

	coordinator.auditVoteSubmitSuccess(request, vote.Id, transactionRef)

	return result, nil
}

func (coordinator *Coordinator) HasVoted(voterId string, electionId string) bool {
	return coordinator.store.HasVoted(voterId, electionId)
}

func (coordinator *Coordinator) GetElectionResults(electionId string) map[string]int {
	return coordinator.store.GetElectionResults(electionId)
}

func (coordinator *Coordinator) GetVoteHistory(voterId string) []*models.Vote {
	return coordinator.store.GetVoteHistory(voterId)
}

func (coordinator *Coordinator) releaseReservation(voterId string, electionId string) {
	if err := coordinator.store.ReleaseVoteSlot(voterId, electionId); err != nil {
		log.Printf("|Coordinator| Failed to release reservation for voter %s, election %s: %v", voterId, electionId, err)
	}
}

func (coordinator *Coordinator) attachTransactionRef(voteId string, transactionRef string) {
	if err := coordinator.store.AttachTransactionRef(voteId, transactionRef); err != nil {
		log.Printf("|Coordinator| Failed to attach transaction ref to ledger vote %s: %v", voteId, err)
	}

	if err := coordinator.repos.Votes.AttachTransactionRef(voteId, transactionRef); err != nil {
		log.Printf("|Coordinator| Failed to attach transaction ref to vote row %s: %v", voteId, err)
	}
}

// The audit trail never carries the vote nonce, only the identifiers needed
// to reconcile the submission.
func (coordinator *Coordinator) auditVoteSubmit(request *SubmitRequest, voteId string, status string, errorMessage string) {
	event := &audit.Event{
		Action:    audit.ActionVoteSubmit,
		Table:     "votes",
		RecordId:  voteId,
		ActorId:   request.VoterId,
		ActorType: audit.ActorTypeVoter,
		NewValues: map[string]any{
			"voterId":     request.VoterId,
			"electionId":  request.ElectionId,
			"candidateId": request.CandidateId,
		},
		Status:       status,
		ErrorMessage: errorMessage,
	}

	if err := coordinator.recorder.Record(event); err != nil {
		log.Printf("|Coordinator| Failed to record audit event: %v", err)
	}
}

func (coordinator *Coordinator) auditVoteSubmitSuccess(request *SubmitRequest, voteId string, transactionRef string) {
	event := &audit.Event{
		Action:    audit.ActionVoteSubmit,
		Table:     "votes",
		RecordId:  voteId,
		ActorId:   request.VoterId,
		ActorType: audit.ActorTypeVoter,
		NewValues: map[string]any{
			"voterId":     request.VoterId,
			"electionId":  request.ElectionId,
			"candidateId": request.CandidateId,
		},
		TxHash: transactionRef,
		Status: audit.StatusSuccess,
	}

	if err := coordinator.recorder.Record(event); err != nil {
		log.Printf("|Coordinator| Failed to record audit event: %v", err)
	}
}

func (coordinator *Coordinator) auditLedgerTx(vote *models.Vote, transactionRef string, status string, errorMessage string) {
	event := &audit.Event{
		Action:       audit.ActionLedgerTx,
		Table:        "votes",
		RecordId:     vote.Id,
		ActorId:      vote.VoterId,
		ActorType:    audit.ActorTypeVoter,
		TxHash:       transactionRef,
		Status:       status,
		ErrorMessage: errorMessage,
	}

	if err := coordinator.recorder.Record(event); err != nil {
		log.Printf("|Coordinator| Failed to record audit event: %v", err)
	}
}
