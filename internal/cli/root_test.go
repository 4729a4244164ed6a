package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/testutil"
)

func TestNewRootCommand_NoArgs_LaunchesTUI(t *testing.T) {
	originalFunc := launchTUIFunc
	defer func() {
		launchTUIFunc = originalFunc
	}()

	called := false
	launchTUIFunc = func(c *app.Container) error {
		called = true
		return nil
	}

	root := NewRootCommand(newTestContainer(testutil.NewMockTaskRepository()), "test-version")
	root.SetArgs([]string{})
	err := root.Execute()

	assert.NoError(t, err)
	assert.True(t, called, "no arguments should launch the TUI")
}

func TestNewRootCommand_WithHelp_ShowsHelp(t *testing.T) {
	originalFunc := launchTUIFunc
	defer func() {
		launchTUIFunc = originalFunc
	}()

	called := false
	launchTUIFunc = func(c *app.Container) error {
		called = true
		return nil
	}

	root := NewRootCommand(newTestContainer(testutil.NewMockTaskRepository()), "test-version")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--help"})
	err := root.Execute()

	assert.NoError(t, err)
	assert.False(t, called, "--help must not launch the TUI")
	assert.Contains(t, buf.String(), "taskdeck")
}

func TestNewRootCommand_Subcommands(t *testing.T) {
	root := NewRootCommand(newTestContainer(testutil.NewMockTaskRepository()), "test-version")

	for _, name := range []string{"add", "edit", "toggle", "delete", "list", "stats"} {
		cmd, _, err := root.Find([]string{name})
		assert.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestNewRootCommand_Version(t *testing.T) {
	root := NewRootCommand(newTestContainer(testutil.NewMockTaskRepository()), "1.2.3")

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--version"})
	err := root.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "1.2.3")
}
