package cmd_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kwehdev/discord-game-bot/cmd"
)

func TestRootCommand_Subcommands(t *testing.T) {
	t.Parallel()

	root := cmd.NewRootCommand()

	for _, name := range []string{"bot", "search", "config", "version"} {
		found, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, found.Name())
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	root := cmd.NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "discord-game-bot version dev\n", out.String())
}

func TestSearchCommand_RequiresQuery(t *testing.T) {
	t.Parallel()

	root := cmd.NewRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"search"})

	require.Error(t, root.Execute())
}
