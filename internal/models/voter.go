package models

type Voter struct {
	Id           string `json:"voterId"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Nrc          string `json:"nrc"` //national identity number, unique
	Ward         string `json:"ward"`
	Constituency string `json:"constituency"`
	Email        string `json:"email"`
}
