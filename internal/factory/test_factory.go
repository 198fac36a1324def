package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/tourmate/tourmate/internal/dependencies/mocks"
	"github.com/tourmate/tourmate/internal/services/account"
	"github.com/tourmate/tourmate/internal/services/leveling"
	"github.com/tourmate/tourmate/internal/storage/memory"
)

// TestApp is an App with controllable dependencies for testing
type TestApp struct {
	*App
	Clock *mocks.MockClock
}

// NewTestApp creates an App over in-memory storage with a mocked clock
func NewTestApp() *TestApp {
	store := memory.New()
	clk := mocks.NewMockClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	cfg := Config{
		LevelingConfig: leveling.DefaultConfig(),
		AccountConfig:  account.DefaultConfig(),
	}

	return &TestApp{
		App:   newWithDependencies(store, clk, cfg, logger),
		Clock: clk,
	}
}
