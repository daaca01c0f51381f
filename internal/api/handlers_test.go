package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/mwansa-dev/voteledger/internal/api"
	"github.com/mwansa-dev/voteledger/internal/audit"
	"github.com/mwansa-dev/voteledger/internal/coordinator"
	db_connection "github.com/mwansa-dev/voteledger/internal/database/connection"
	"github.com/mwansa-dev/voteledger/internal/database/repositories"
	"github.com/mwansa-dev/voteledger/internal/ledger"
	"github.com/mwansa-dev/voteledger/internal/models"
	"github.com/mwansa-dev/voteledger/internal/notary"
)

func newTestServer(t *testing.T) (*api.Server, *coordinator.Coordinator) {
	t.Helper()

	db, err := db_connection.NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	store, err := ledger.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create ledger store: %v", err)
	}

	repos := repositories.NewRepositories(db)
	recorder := audit.NewRecorderImpl(db)
	notaryClient := notary.NewSimulatedClient(0, 0)

	coord := coordinator.NewCoordinator(store, repos, notaryClient, recorder, time.Second)

	election := &models.Election{
		Id:        "E1",
		Title:     "General Election",
		Type:      models.ElectionTypeGeneral,
		StartTime: time.Now().Add(-time.Hour),
		EndTime:   time.Now().Add(time.Hour),
		Year:      2026,
	}

	if err := coord.CreateElection(election, "ADMIN_1"); err != nil {
		t.Fatalf("failed to create election: %v", err)
	}

	voter := &models.Voter{Id: "V1", FirstName: "Chanda", LastName: "Mwila", Nrc: "123456/10/1", Ward: "WARD_7"}
	if err := coord.RegisterVoter(voter, "ADMIN_1"); err != nil {
		t.Fatalf("failed to register voter: %v", err)
	}

	candidate := &models.Candidate{Id: "C1", FirstName: "Candidate", LastName: "One", ElectionId: "E1"}
	if err := coord.RegisterCandidate(candidate, "ADMIN_1"); err != nil {
		t.Fatalf("failed to register candidate: %v", err)
	}

	return api.NewServer(":0", coord, recorder), coord
}

func postVote(t *testing.T, server *api.Server, request *coordinator.SubmitRequest) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(request)
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}

	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/votes", bytes.NewReader(body)))

	return recorder
}

func getTestSubmitRequest() *coordinator.SubmitRequest {
	return &coordinator.SubmitRequest{
		VoterId:     "V1",
		ElectionId:  "E1",
		CandidateId: "C1",
		PositionId:  "POS_1",
		WardCode:    "WARD_7",
	}
}

func TestSubmitVoteEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	response := postVote(t, server, getTestSubmitRequest())

	if response.Code != http.StatusCreated {
		t.Fatalf("received incorrect status code: %d", response.Code)
	}

	var result coordinator.SubmitResult
	if err := json.Unmarshal(response.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if !result.Recorded || !result.Notarized || result.VoteId == "" {
		t.Fatalf("received incorrect submission result: %+v", result)
	}
}

func TestSubmitVoteEndpointDuplicate(t *testing.T) {
	server, _ := newTestServer(t)

	if response := postVote(t, server, getTestSubmitRequest()); response.Code != http.StatusCreated {
		t.Fatalf("first vote wasn't accepted: %d", response.Code)
	}

	response := postVote(t, server, getTestSubmitRequest())
	if response.Code != http.StatusConflict {
		t.Fatalf("duplicate vote wasn't rejected with conflict: %d", response.Code)
	}
}

func TestSubmitVoteEndpointValidation(t *testing.T) {
	server, _ := newTestServer(t)

	request := getTestSubmitRequest()
	request.CandidateId = ""

	response := postVote(t, server, request)
	if response.Code != http.StatusBadRequest {
		t.Fatalf("invalid request wasn't rejected: %d", response.Code)
	}
}

func TestVoteStatusEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	if response := postVote(t, server, getTestSubmitRequest()); response.Code != http.StatusCreated {
		t.Fatalf("vote wasn't accepted: %d", response.Code)
	}

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/votes/status?voterId=V1&electionId=E1", nil)
	server.Handler().ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("received incorrect status code: %d", recorder.Code)
	}

	var status map[string]bool
	if err := json.Unmarshal(recorder.Body.Bytes(), &status); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if !status["hasVoted"] {
		t.Fatalf("recorded voter wasn't reported as having voted")
	}
}

func TestElectionResultsEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	if response := postVote(t, server, getTestSubmitRequest()); response.Code != http.StatusCreated {
		t.Fatalf("vote wasn't accepted: %d", response.Code)
	}

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/elections/E1/results", nil)
	server.Handler().ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("received incorrect status code: %d", recorder.Code)
	}

	var results map[string]int
	if err := json.Unmarshal(recorder.Body.Bytes(), &results); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if results["C1"] != 1 {
		t.Fatalf("received incorrect results: %v", results)
	}
}

func TestAuditRecentEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	if response := postVote(t, server, getTestSubmitRequest()); response.Code != http.StatusCreated {
		t.Fatalf("vote wasn't accepted: %d", response.Code)
	}

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/audit/recent?limit=10", nil)
	server.Handler().ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("received incorrect status code: %d", recorder.Code)
	}

	var events []*audit.Event
	if err := json.Unmarshal(recorder.Body.Bytes(), &events); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if len(events) == 0 {
		t.Fatalf("no audit events were returned")
	}
}
