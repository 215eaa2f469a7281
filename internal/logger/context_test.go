package logger_test

import (
	"context"
	"testing"

	"github.com/Kwehdev/discord-game-bot/internal/logger"
)

func TestWithContext_FromContext_RoundTrip(t *testing.T) {
	t.Parallel()

	base := mustTestLogger(t)
	ctx := logger.WithContext(context.Background(), base)

	if got := logger.FromContext(ctx); got != base {
		t.Errorf("FromContext returned %v, want the stored logger", got)
	}
}

func TestFromContext_NoLogger_ReturnsSharedFallback(t *testing.T) {
	t.Parallel()

	a := logger.FromContext(context.Background())
	b := logger.FromContext(context.Background())

	if a == nil {
		t.Fatal("FromContext on empty context returned nil")
	}
	if a != b {
		t.Error("FromContext returned different fallback instances")
	}

	// Warn-level fallback filters these but the calls must not panic.
	a.Debug("debug message")
	a.Info("info message", logger.String("key", "value"))
}

func TestWith_ReturnsDistinctLogger(t *testing.T) {
	t.Parallel()

	base := mustTestLogger(t)
	enriched := base.With(logger.String("invocation_id", "abc-123"))

	if enriched == base {
		t.Error("With() returned the same instance")
	}

	ctx := logger.WithContext(context.Background(), enriched)
	if logger.FromContext(ctx) != enriched {
		t.Error("FromContext did not return the enriched logger")
	}
}

func TestNew_DevelopmentConsole(t *testing.T) {
	t.Parallel()

	l, err := logger.New(logger.Config{
		Level:       "debug",
		Encoding:    "console",
		Development: true,
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	l.Debug("development logger works", logger.Int("n", 1))
}

func mustTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	l, err := logger.New(logger.Config{
		Level:       "warn",
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		t.Fatalf("failed to create test logger: %v", err)
	}

	return l
}
