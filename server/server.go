package server

import (
	"log"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"hellohttp/config"
)

const helloBody = "Hello world"

type route struct {
	method string
	path   string
}

// Server is the native implementation: routing is an explicit table keyed by
// (method, exact path), checked in a single pass. No trailing-slash
// normalization, no query-string handling, no wildcards. Anything the table
// does not know, wrong method included, gets the default not-found response.
type Server struct {
	cfg    config.Config
	routes map[route]http.HandlerFunc
	srv    *http.Server
}

func New(cfg config.Config) *Server {
	s := &Server{
		cfg: cfg,
		routes: map[route]http.HandlerFunc{
			{http.MethodGet, "/hello"}: hello,
		},
	}

	s.srv = &http.Server{
		Addr:    cfg.Addr(),
		Handler: s,
	}

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	status := http.StatusOK
	if handler, ok := s.routes[route{r.Method, r.URL.Path}]; ok {
		handler(w, r)
	} else {
		status = http.StatusNotFound
		http.NotFound(w, r)
	}

	s.logRequest(r, status, time.Since(start))
}

func hello(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(helloBody))
}

func (s *Server) logRequest(r *http.Request, status int, elapsed time.Duration) {
	if !s.cfg.LogRequests {
		return
	}
	if s.cfg.Debug {
		log.Printf("%s %s -> %d from %s in %s", r.Method, r.URL.Path, status, r.RemoteAddr, elapsed)
		return
	}
	log.Printf("%s %s -> %d", r.Method, r.URL.Path, status)
}

// Run serves requests until the process is terminated or the listener
// fails. A bind failure surfaces immediately, named with the address that
// could not be bound.
func (s *Server) Run() error {
	return errors.Wrapf(s.srv.ListenAndServe(), "listen on %s", s.srv.Addr)
}
