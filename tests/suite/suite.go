package suite

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"galleria/internal/config"
	"galleria/internal/lib/sessiontoken"
	session_service "galleria/internal/services/session_service"
)

// memorySessionRepo is a map-backed stand-in for the Redis session
// registry, enough to drive the full login/validate/logout cycle.
type memorySessionRepo struct {
	mu       sync.Mutex
	sessions map[string]struct{}
}

func newMemorySessionRepo() *memorySessionRepo {
	return &memorySessionRepo{sessions: make(map[string]struct{})}
}

func (r *memorySessionRepo) SaveSession(ctx context.Context, email, token string, exp time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[email+":"+token] = struct{}{}
	return nil
}

func (r *memorySessionRepo) SessionExists(ctx context.Context, email, token string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.sessions[email+":"+token]
	return ok, nil
}

func (r *memorySessionRepo) DeleteSession(ctx context.Context, email, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, email+":"+token)
	return nil
}

func (r *memorySessionRepo) DeleteAllSessions(ctx context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key := range r.sessions {
		delete(r.sessions, key)
	}
	return nil
}

type Suite struct {
	*testing.T
	Cfg            *config.Config
	SessionService *session_service.SessionService
}

func New(t *testing.T, adminEmail, adminPassHash string) (context.Context, *Suite) {
	t.Helper()
	t.Parallel()

	cfg := config.MustLoadPath(configPath())

	ctx, cancelCtx := context.WithTimeout(context.Background(), time.Duration(time.Hour))

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))

	tokens := sessiontoken.New(cfg.Admin.SessionSecret, cfg.Admin.SessionTTL)
	sessionService := session_service.New(log, newMemorySessionRepo(), tokens, adminEmail, adminPassHash)

	t.Cleanup(func() {
		t.Helper()
		cancelCtx()
	})

	return ctx, &Suite{
		T:              t,
		Cfg:            cfg,
		SessionService: sessionService,
	}
}

func configPath() string {
	const key = "CONFIG_PATH"

	if v := os.Getenv(key); v != "" {
		return v
	}

	return "../config/config.yaml"
}
