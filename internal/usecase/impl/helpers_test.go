package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"tracker/config"
	"tracker/internal/domain/repository"
	"tracker/internal/infra/persistence/sqlite"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv wires the real repositories onto an in-memory database so the
// services are exercised against actual SQL.
type testEnv struct {
	db           *gorm.DB
	txManager    repository.TransactionManager
	deviceRepo   repository.DeviceRepository
	attemptRepo  repository.AttemptRepository
	taskRepo     repository.TaskRepository
	syllabusRepo repository.SyllabusRepository
	logger       *slog.Logger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sqlite.Open(":memory:", logger.Discard)
	require.NoError(t, err)

	return &testEnv{
		db:           db,
		txManager:    sqlite.NewTransactionManager(db),
		deviceRepo:   sqlite.NewDeviceRepository(db),
		attemptRepo:  sqlite.NewAttemptRepository(db),
		taskRepo:     sqlite.NewTaskRepository(db),
		syllabusRepo: sqlite.NewSyllabusRepository(db),
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// testConfig returns a config with the defaults the services expect.
func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth.TrustTTL = 30 * 24 * time.Hour
	cfg.Auth.SessionTTL = 12 * time.Hour
	cfg.Projection = config.ProjectionConfig{
		PhaseA: "A",
		PhaseB: "B",
		PhaseC: "C",
		PhaseD: "D",
	}

	return cfg
}
