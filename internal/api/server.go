package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	audit "github.com/mwansa-dev/voteledger/internal/audit"
	coordinator "github.com/mwansa-dev/voteledger/internal/coordinator"
)

// Server exposes the vote-recording core over JSON HTTP. It is the surface
// the administrative application talks to, nothing more.
type Server struct {
	coordinator *coordinator.Coordinator
	recorder    audit.Recorder

	httpServer *http.Server
}

func NewServer(address string, coord *coordinator.Coordinator, recorder audit.Recorder) *Server {
	server := &Server{
		coordinator: coord,
		recorder:    recorder,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /votes", server.submitVote)
	mux.HandleFunc("GET /votes/status", server.voteStatus)
	mux.HandleFunc("GET /elections/{id}/results", server.electionResults)
	mux.HandleFunc("GET /voters/{id}/votes", server.voteHistory)
	mux.HandleFunc("GET /audit/recent", server.auditRecent)
	mux.HandleFunc("GET /audit/critical", server.auditCritical)
	mux.HandleFunc("GET /audit/stats", server.auditStats)

	server.httpServer = &http.Server{
		Addr:         address,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server
}

func (server *Server) Start() {
	log.Printf("|Api| Listening on %s", server.httpServer.Addr)

	if err := server.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("|Api| Server stopped: %v", err)
	}
}

func (server *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return server.httpServer.Shutdown(ctx)
}

func (server *Server) Handler() http.Handler {
	return server.httpServer.Handler
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("|Api| Failed to write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
