package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"bitbuddy/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd(&bytes.Buffer{})

	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"migrate", "reconcile", "stats"})
}

func TestReconcile_OwnerRequired(t *testing.T) {
	root := NewRootCmd(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"reconcile"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"owner" not set`)
}

func TestStats_RejectsMemoryStore(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("store:\n  driver: memory\n"), 0o600))

	root := NewRootCmd(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"stats", "--owner", "bc1qowner", "--config", cfgFile})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to maintain")
}

func TestWriteStats(t *testing.T) {
	last := time.Date(2026, 5, 4, 10, 30, 0, 0, time.UTC)
	var buf bytes.Buffer

	writeStats(&buf, "bc1qowner", &domain.UserStats{
		TotalGiftsSent:        5,
		TotalSatsGifted:       2500000,
		ActiveSavingsGoals:    1,
		CompletedSavingsGoals: 2,
		TotalSavedSats:        1000000,
		TotalBadges:           3,
		LastActivity:          &last,
	})

	out := buf.String()
	assert.Contains(t, out, "bc1qowner")
	assert.Contains(t, out, "2500000")
	assert.Contains(t, out, "2026-05-04T10:30:00Z")
}

func TestWriteStats_NoActivity(t *testing.T) {
	var buf bytes.Buffer
	writeStats(&buf, "bc1qowner", &domain.UserStats{})

	assert.Regexp(t, `LAST ACTIVITY\s+-`, buf.String())
}
