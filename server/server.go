package server

import (
	"context"
	"net/http"
	"time"

	"github.com/MMansij/New-Int/config"
	"github.com/MMansij/New-Int/server/api"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	http.Handler

	addr string
	api  *api.Handler
}

func New(cfg *config.Config) (*Server, error) {
	p, err := cfg.Pipeline()

	if err != nil {
		return nil, err
	}

	h, err := api.New(p)

	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	s := &Server{
		Handler: otelhttp.NewHandler(r, "server"),

		addr: cfg.Address,
		api:  h,
	}

	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		s.api.Attach(r)
	})

	return s, nil
}

// ListenAndServe serves until ctx is canceled and then drains open requests.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s,

		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)

	go func() {
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err

	case <-ctx.Done():
	}

	shutdown, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return srv.Shutdown(shutdown)
}
