package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/knowledge-engine/questions/internal/engine"
)

type Server struct {
	Engine *engine.Engine
	Logger *logrus.Entry
	Router *http.ServeMux
}

func NewServer(eng *engine.Engine, logger *logrus.Entry) *Server {
	s := &Server{
		Engine: eng,
		Logger: logger.WithField("component", "api"),
		Router: http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.Router.HandleFunc("/api/v1/query", s.handleQuery)
	s.Router.HandleFunc("/api/v1/status", s.handleStatus)
}

func (s *Server) Start(addr string) error {
	s.Logger.Infof("Starting API Server on %s", addr)
	return http.ListenAndServe(addr, s.Router)
}

// Responses
type ErrorResponse struct {
	Error string `json:"error"`
}

type QueryResponse struct {
	Query     string   `json:"query"`
	Terms     []string `json:"terms"`
	Files     []string `json:"files"`
	Sentences []string `json:"sentences"`
}

type StatusResponse struct {
	Documents int    `json:"documents"`
	Queries   int64  `json:"queries"`
	Uptime    string `json:"uptime"`
}

// Handlers

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Query 'q' is required"})
		return
	}

	answer, err := s.Engine.Query(query)
	if err != nil {
		s.Logger.WithError(err).Error("Query failed")
		jsonResponse(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	jsonResponse(w, http.StatusOK, QueryResponse{
		Query:     query,
		Terms:     nonNil(answer.Terms),
		Files:     nonNil(answer.Files),
		Sentences: nonNil(answer.Sentences),
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	stats := s.Engine.Stats()

	jsonResponse(w, http.StatusOK, StatusResponse{
		Documents: stats.Documents,
		Queries:   stats.Queries,
		Uptime:    time.Since(stats.LoadedAt).Round(time.Second).String(),
	})
}

func jsonResponse(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// nonNil keeps empty lists as [] rather than null in responses
func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
