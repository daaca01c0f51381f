package models

import "time"

const (
	ElectionStatusDraft     = "draft"
	ElectionStatusActive    = "active"
	ElectionStatusCompleted = "completed"
	ElectionStatusCancelled = "cancelled"
)

const (
	ElectionTypeGeneral    = "general"
	ElectionTypeLocal      = "local"
	ElectionTypeByElection = "by-election"
	ElectionTypeReferendum = "referendum"
)

type Election struct {
	Id               string    `json:"electionId"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
	Status           string    `json:"status"`
	Type             string    `json:"electionType"`
	WardCode         string    `json:"wardCode"`
	ConstituencyCode string    `json:"constituencyCode"`
	DistrictCode     string    `json:"districtCode"`
	Year             int       `json:"year"`
}

// StatusAt derives the election status from the voting window. An explicit
// cancellation always wins over the time-derived status.
func (election *Election) StatusAt(now time.Time) string {
	if election.Status == ElectionStatusCancelled {
		return ElectionStatusCancelled
	}

	if now.Before(election.StartTime) {
		return ElectionStatusDraft
	}

	if now.After(election.EndTime) {
		return ElectionStatusCompleted
	}

	return ElectionStatusActive
}

func (election *Election) IsActiveAt(now time.Time) bool {
	return election.StatusAt(now) == ElectionStatusActive
}
