package web

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/behrlich/cubecost/internal/store"
)

// Server exposes the solver over HTTP. historyPath is optional: when set,
// every successful /api/solve call is also recorded to that SQLite file.
type Server struct {
	router      *mux.Router
	historyPath string
}

func NewServer(historyPath string) *Server {
	s := &Server{
		router:      mux.NewRouter(),
		historyPath: historyPath,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/solve", s.handleSolve).Methods("POST")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	s.router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("./internal/web/static/"))))
	s.router.HandleFunc("/", s.handleIndex).Methods("GET")
}

// openHistory opens the history store if historyPath is set, otherwise
// returns a nil *store.DB. Callers must check for nil before using it.
func (s *Server) openHistory() (*store.DB, error) {
	if s.historyPath == "" {
		return nil, nil
	}
	return store.Open(s.historyPath)
}

func (s *Server) Start(addr string) error {
	log.Printf("Server starting on %s", addr)
	return http.ListenAndServe(addr, s.router)
}
