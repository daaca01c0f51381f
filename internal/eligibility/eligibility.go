package eligibility

import (
	models "github.com/mwansa-dev/voteledger/internal/models"
)

// Eligible decides whether a voter may vote in an election. Unknown voters
// and unknown elections are never eligible.
func Eligible(voter *models.Voter, election *models.Election) bool {
	if voter == nil || election == nil {
		return false
	}

	if election.Type == models.ElectionTypeGeneral {
		return true
	}

	if election.WardCode != "" && voter.Ward == election.WardCode {
		return true
	}

	if election.ConstituencyCode != "" && voter.Constituency == election.ConstituencyCode {
		return true
	}

	return false
}
