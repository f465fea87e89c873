package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"abacus/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNew_RequiresPostgresConfig(t *testing.T) {
	_, err := New(Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{},
		Logger:    slog.New(slog.DiscardHandler),
	})

	assert.Error(t, err)
}

func TestPoolWaitReport(t *testing.T) {
	prev := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	_, _, waited := poolWaitReport(prev, prev)
	assert.False(t, waited)

	level, attrs, waited := poolWaitReport(prev, sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 20*time.Millisecond})
	require.True(t, waited)
	assert.Equal(t, slog.LevelDebug, level)
	assert.Contains(t, attrs, slog.Duration("avg_wait", 10*time.Millisecond))

	level, _, waited = poolWaitReport(prev, sql.DBStats{WaitCount: 11, WaitDuration: time.Second + poolWaitWarnAfter})
	require.True(t, waited)
	assert.Equal(t, slog.LevelWarn, level)
}
