package app

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/domain"
)

func TestNew_SeedsBuiltinTasks(t *testing.T) {
	workDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c, err := New(workDir)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	tasks, err := c.Tasks.List()
	require.NoError(t, err)
	assert.Len(t, tasks, 5)
}

func TestNew_WarnsOnInvalidConfig(t *testing.T) {
	workDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	logPath := filepath.Join(workDir, "taskdeck.log")
	conf := fmt.Sprintf("[view]\nfilter = \"someday\"\n\n[log]\npath = %q\n", logPath)
	require.NoError(t, os.WriteFile(filepath.Join(workDir, domain.ConfigFileName), []byte(conf), 0o644))

	c, err := New(workDir)
	require.NoError(t, err, "an invalid enum value does not block startup")
	defer func() { _ = c.Close() }()

	assert.Equal(t, domain.FilterAll, c.Config.InitialQuery().Filter, "invalid filter falls back to the default")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[WARN] [config]")
	assert.Contains(t, string(data), "someday")
}
