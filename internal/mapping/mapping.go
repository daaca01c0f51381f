package mapping

import (
	db_models "github.com/mwansa-dev/voteledger/internal/database/models"
	models "github.com/mwansa-dev/voteledger/internal/models"
)

func VoteToVoteDB(vote *models.Vote) *db_models.VoteDB {
	return &db_models.VoteDB{
		Id:             vote.Id,
		VoterId:        vote.VoterId,
		ElectionId:     vote.ElectionId,
		CandidateId:    vote.CandidateId,
		PositionId:     vote.PositionId,
		WardCode:       vote.WardCode,
		Timestamp:      vote.Timestamp,
		Nonce:          vote.Nonce,
		VoteHash:       vote.VoteHash,
		TransactionRef: vote.TransactionRef,
	}
}

func VoteDBToVote(voteDB *db_models.VoteDB) *models.Vote {
	return &models.Vote{
		Id:             voteDB.Id,
		VoterId:        voteDB.VoterId,
		ElectionId:     voteDB.ElectionId,
		CandidateId:    voteDB.CandidateId,
		PositionId:     voteDB.PositionId,
		WardCode:       voteDB.WardCode,
		Timestamp:      voteDB.Timestamp,
		Nonce:          voteDB.Nonce,
		VoteHash:       voteDB.VoteHash,
		TransactionRef: voteDB.TransactionRef,
	}
}

func ElectionToElectionDB(election *models.Election) *db_models.ElectionDB {
	return &db_models.ElectionDB{
		Id:               election.Id,
		Title:            election.Title,
		Description:      election.Description,
		StartTime:        election.StartTime,
		EndTime:          election.EndTime,
		Status:           election.Status,
		Type:             election.Type,
		WardCode:         election.WardCode,
		ConstituencyCode: election.ConstituencyCode,
		DistrictCode:     election.DistrictCode,
		Year:             election.Year,
	}
}

func ElectionDBToElection(electionDB *db_models.ElectionDB) *models.Election {
	return &models.Election{
		Id:               electionDB.Id,
		Title:            electionDB.Title,
		Description:      electionDB.Description,
		StartTime:        electionDB.StartTime,
		EndTime:          electionDB.EndTime,
		Status:           electionDB.Status,
		Type:             electionDB.Type,
		WardCode:         electionDB.WardCode,
		ConstituencyCode: electionDB.ConstituencyCode,
		DistrictCode:     electionDB.DistrictCode,
		Year:             electionDB.Year,
	}
}

func VoterToVoterDB(voter *models.Voter) *db_models.VoterDB {
	return &db_models.VoterDB{
		Id:           voter.Id,
		FirstName:    voter.FirstName,
		LastName:     voter.LastName,
		Nrc:          voter.Nrc,
		Ward:         voter.Ward,
		Constituency: voter.Constituency,
		Email:        voter.Email,
	}
}

func VoterDBToVoter(voterDB *db_models.VoterDB) *models.Voter {
	return &models.Voter{
		Id:           voterDB.Id,
		FirstName:    voterDB.FirstName,
		LastName:     voterDB.LastName,
		Nrc:          voterDB.Nrc,
		Ward:         voterDB.Ward,
		Constituency: voterDB.Constituency,
		Email:        voterDB.Email,
	}
}

func CandidateToCandidateDB(candidate *models.Candidate) *db_models.CandidateDB {
	return &db_models.CandidateDB{
		Id:         candidate.Id,
		FirstName:  candidate.FirstName,
		LastName:   candidate.LastName,
		OtherName:  candidate.OtherName,
		AliasName:  candidate.AliasName,
		PartyId:    candidate.PartyId,
		WardCode:   candidate.WardCode,
		PositionId: candidate.PositionId,
		ElectionId: candidate.ElectionId,
	}
}

func CandidateDBToCandidate(candidateDB *db_models.CandidateDB) *models.Candidate {
	return &models.Candidate{
		Id:         candidateDB.Id,
		FirstName:  candidateDB.FirstName,
		LastName:   candidateDB.LastName,
		OtherName:  candidateDB.OtherName,
		AliasName:  candidateDB.AliasName,
		PartyId:    candidateDB.PartyId,
		WardCode:   candidateDB.WardCode,
		PositionId: candidateDB.PositionId,
		ElectionId: candidateDB.ElectionId,
	}
}
