package models

type Candidate struct {
	Id         string `json:"candidateId"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	OtherName  string `json:"otherName"`
	AliasName  string `json:"aliasName"`
	PartyId    string `json:"partyId"`
	WardCode   string `json:"wardCode"`
	PositionId string `json:"positionId"`
	ElectionId string `json:"electionId"`
}
