package coordinator

import (
	"fmt"
	"log"
	"time"

	audit "github.com/mwansa-dev/voteledger/internal/audit"
	models "github.com/mwansa-dev/voteledger/internal/models"
)

// Administrative writes go to both stores and always leave an audit event,
// success or not.

func (coordinator *Coordinator) CreateElection(election *models.Election, actorId string) error {
	if election.Status == "" {
		election.Status = election.StatusAt(time.Now())
	}

	if err := coordinator.store.CreateElection(election); err != nil {
		coordinator.auditAdminFailure(audit.ActionCreate, "elections", election.Id, actorId, err)
		return err
	}

	if err := coordinator.repos.Elections.Insert(election); err != nil {
		coordinator.auditAdminFailure(audit.ActionCreate, "elections", election.Id, actorId, err)
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}

	coordinator.auditAdminSuccess(audit.ActionCreate, "elections", election.Id, actorId, nil, electionValues(election))
	return nil
}

// CancelElection is the one permitted status override, the election keeps
// its votes but stops accepting new ones.
func (coordinator *Coordinator) CancelElection(electionId string, actorId string) error {
	election := coordinator.store.GetElection(electionId)
	if election == nil {
		return fmt.Errorf("%w: unknown election %s", ErrValidation, electionId)
	}

	oldValues := electionValues(election)

	if err := coordinator.store.UpdateElectionStatus(electionId, models.ElectionStatusCancelled); err != nil {
		coordinator.auditAdminFailure(audit.ActionUpdate, "elections", electionId, actorId, err)
		return err
	}

	if err := coordinator.repos.Elections.UpdateStatus(electionId, models.ElectionStatusCancelled); err != nil {
		coordinator.auditAdminFailure(audit.ActionUpdate, "elections", electionId, actorId, err)
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}

	election.Status = models.ElectionStatusCancelled
	coordinator.auditAdminSuccess(audit.ActionUpdate, "elections", electionId, actorId, oldValues, electionValues(election))
	return nil
}

func (coordinator *Coordinator) RegisterVoter(voter *models.Voter, actorId string) error {
	if err := coordinator.store.RegisterVoter(voter); err != nil {
		coordinator.auditAdminFailure(audit.ActionCreate, "voters", voter.Id, actorId, err)
		return err
	}

	if err := coordinator.repos.Voters.Insert(voter); err != nil {
		coordinator.auditAdminFailure(audit.ActionCreate, "voters", voter.Id, actorId, err)
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}

	coordinator.auditAdminSuccess(audit.ActionCreate, "voters", voter.Id, actorId, nil, voterValues(voter))
	return nil
}

func (coordinator *Coordinator) RegisterCandidate(candidate *models.Candidate, actorId string) error {
	if candidate.ElectionId != "" && coordinator.store.GetElection(candidate.ElectionId) == nil {
		return fmt.Errorf("%w: unknown election %s", ErrValidation, candidate.ElectionId)
	}

	if err := coordinator.store.RegisterCandidate(candidate); err != nil {
		coordinator.auditAdminFailure(audit.ActionCreate, "candidates", candidate.Id, actorId, err)
		return err
	}

	if err := coordinator.repos.Candidates.Insert(candidate); err != nil {
		coordinator.auditAdminFailure(audit.ActionCreate, "candidates", candidate.Id, actorId, err)
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}

	coordinator.auditAdminSuccess(audit.ActionCreate, "candidates", candidate.Id, actorId, nil, candidateValues(candidate))
	return nil
}

func (coordinator *Coordinator) auditAdminSuccess(action string, table string, recordId string, actorId string, oldValues map[string]any, newValues map[string]any) {
	event := &audit.Event{
		Action:    action,
		Table:     table,
		RecordId:  recordId,
		ActorId:   actorId,
		ActorType: audit.ActorTypeManagement,
		OldValues: oldValues,
		NewValues: newValues,
		Status:    audit.StatusSuccess,
	}

	if err := coordinator.recorder.Record(event); err != nil {
		log.Printf("|Coordinator| Failed to record audit event: %v", err)
	}
}

func (coordinator *Coordinator) auditAdminFailure(action string, table string, recordId string, actorId string, cause error) {
	event := &audit.Event{
		Action:       action,
		Table:        table,
		RecordId:     recordId,
		ActorId:      actorId,
		ActorType:    audit.ActorTypeManagement,
		Status:       audit.StatusFailed,
		ErrorMessage: cause.Error(),
	}

	if err := coordinator.recorder.Record(event); err != nil {
		log.Printf("|Coordinator| Failed to record audit event: %v", err)
	}
}

func electionValues(election *models.Election) map[string]any {
	return map[string]any{
		"title":            election.Title,
		"status":           election.Status,
		"electionType":     election.Type,
		"wardCode":         election.WardCode,
		"constituencyCode": election.ConstituencyCode,
		"districtCode":     election.DistrictCode,
		"year":             election.Year,
	}
}

func voterValues(voter *models.Voter) map[string]any {
	return map[string]any{
		"firstName":    voter.FirstName,
		"lastName":     voter.LastName,
		"nrc":          voter.Nrc,
		"ward":         voter.Ward,
		"constituency": voter.Constituency,
		"email":        voter.Email,
	}
}

func candidateValues(candidate *models.Candidate) map[string]any {
	return map[string]any{
		"firstName":  candidate.FirstName,
		"lastName":   candidate.LastName,
		"partyId":    candidate.PartyId,
		"wardCode":   candidate.WardCode,
		"positionId": candidate.PositionId,
		"electionId": candidate.ElectionId,
	}
}
