package web

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ehrlich-b/kociemba/internal/kociemba"
)

type Server struct {
	router *mux.Router
	solver *kociemba.Solver
}

// NewServer builds the solver tables once and wires up the routes.
func NewServer() *Server {
	s := &Server{
		router: mux.NewRouter(),
		solver: kociemba.NewSolver(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// API routes
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/solve", s.handleSolve).Methods("POST")
	api.HandleFunc("/scramble", s.handleScramble).Methods("GET")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	// Serve main page
	s.router.HandleFunc("/", s.handleIndex).Methods("GET")
}

func (s *Server) Start(addr string) error {
	log.Printf("Server starting on %s", addr)
	return http.ListenAndServe(addr, s.router)
}
