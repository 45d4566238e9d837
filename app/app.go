package app

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"hellohttp/config"
)

const helloBody = "Hello world"

// App is the framework implementation: the same contract as the native
// server, expressed through gorilla/mux routing with a small middleware
// chain wrapped around the router.
type App struct {
	cfg     config.Config
	router  *mux.Router
	handler http.Handler
	srv     *http.Server
}

func New(cfg config.Config) *App {
	router := mux.NewRouter()

	a := &App{
		cfg:    cfg,
		router: router,
	}

	router.HandleFunc("/hello", a.Hello).Methods(http.MethodGet)
	// Unmatched paths and non-GET methods answer the same 404 as the native
	// implementation; mux's default 405 is overridden on purpose.
	router.NotFoundHandler = http.NotFoundHandler()
	router.MethodNotAllowedHandler = http.NotFoundHandler()

	// Middleware sits outside the router so it also covers requests the
	// router rejects.
	a.handler = a.middleware(router)

	a.srv = &http.Server{
		Addr:    cfg.Addr(),
		Handler: a,
	}

	return a
}

func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}

func (a *App) Hello(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(helloBody))
}

func (a *App) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)
		w.Header().Set("X-Content-Type-Options", "nosniff")

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		if !a.cfg.LogRequests {
			return
		}
		if a.cfg.Debug {
			log.Printf("[%s] %s %s -> %d from %s in %s", requestID, r.Method, r.URL.Path, rec.status, r.RemoteAddr, time.Since(start))
			return
		}
		log.Printf("[%s] %s %s -> %d", requestID, r.Method, r.URL.Path, rec.status)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Run serves requests until the process is terminated or the listener
// fails, same contract as the native server's Run.
func (a *App) Run() error {
	return errors.Wrapf(a.srv.ListenAndServe(), "listen on %s", a.srv.Addr)
}
