package server

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"
	"sync/atomic"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/guardian/github-lens/pkg/domain/interfaces"
	"github.com/guardian/github-lens/pkg/domain/types"
	"github.com/guardian/github-lens/pkg/utils/errutil"
	"github.com/guardian/github-lens/pkg/utils/logging"
)

type Server struct {
	mux     *chi.Mux
	running atomic.Bool
	done    func()
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

type config struct {
	token types.RunToken
	done  func()
}

type Option func(*config)

// WithRunToken requires "Authorization: Bearer <token>" on the run endpoints.
func WithRunToken(token types.RunToken) Option {
	return func(cfg *config) {
		cfg.token = token
	}
}

// WithDoneHook is called after every background run. Tests use it to wait.
func WithDoneHook(f func()) Option {
	return func(cfg *config) {
		cfg.done = f
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	srv := &Server{done: cfg.done}

	steps := map[string]func(context.Context) error{
		"run":      uc.Run,
		"digest":   uc.SendVulnerabilityDigests,
		"protect":  uc.ProtectBranches,
		"depgraph": uc.SendDependencyGraphEvents,
		"evaluate": func(ctx context.Context) error {
			_, err := uc.EvaluateRepositories(ctx)
			return err
		},
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(authorize(cfg.token))

		r.Post("/run", func(w http.ResponseWriter, r *http.Request) {
			srv.start(w, r, "run", steps["run"])
		})
		r.Post("/run/{step}", func(w http.ResponseWriter, r *http.Request) {
			name := chi.URLParam(r, "step")
			step, ok := steps[name]
			if !ok {
				safeWrite(w, http.StatusNotFound, []byte(`{"status":"error","message":"unknown step"}`))
				return
			}
			srv.start(w, r, name, step)
		})
	})

	srv.mux = r
	return srv
}

// start runs step in the background. Only one step runs at a time.
func (x *Server) start(w http.ResponseWriter, r *http.Request, name string, step func(context.Context) error) {
	if !x.running.CompareAndSwap(false, true) {
		safeWrite(w, http.StatusConflict, []byte(`{"status":"busy","message":"a run is already in progress"}`))
		return
	}

	// The request context is cancelled once the response is sent
	bgCtx := DetachContext(r.Context())

	go func() {
		if x.done != nil {
			defer x.done()
		}
		defer x.running.Store(false)

		logger := logging.From(bgCtx).With(slog.String("step", name))
		logger.Info("Starting background run")
		if err := step(bgCtx); err != nil {
			errutil.HandleError(bgCtx, "background run failed", err)
			return
		}
		logger.Info("Background run completed successfully")
	}()

	safeWrite(w, http.StatusAccepted, []byte(`{"status":"accepted","message":"`+name+` started"}`))
}

func authorize(token types.RunToken) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token != "" {
				given, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
				if !ok || subtle.ConstantTimeCompare([]byte(given), []byte(token)) != 1 {
					safeWrite(w, http.StatusUnauthorized, []byte(`{"status":"error","message":"unauthorized"}`))
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
