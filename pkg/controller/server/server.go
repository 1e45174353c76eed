package server

import (
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/secmon-lab/repoguard/pkg/domain/interfaces"
	"github.com/secmon-lab/repoguard/pkg/domain/types"
	"github.com/secmon-lab/repoguard/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

// respondOK is the neutral success body returned for both processed and
// skipped events.
func respondOK(w http.ResponseWriter) {
	safeWrite(w, http.StatusOK, []byte(`{"Status":"OK"}`))
}

func respondDenied(w http.ResponseWriter) {
	safeWrite(w, http.StatusForbidden, []byte(`"Access Denied"`))
}

type config struct {
	webhookSecret types.WebhookSecret
}

type Option func(*config)

func WithWebhookSecret(secret types.WebhookSecret) Option {
	return func(cfg *config) {
		cfg.webhookSecret = secret
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Route("/webhook", func(r chi.Router) {
		r.Post("/github", func(w http.ResponseWriter, r *http.Request) {
			handleRepositoryWebhook(uc, cfg.webhookSecret, w, r)
		})
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
