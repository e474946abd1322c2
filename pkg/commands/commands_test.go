package commands

import (
	"strings"
	"testing"

	"github.com/kcaldas/dbgconsole/pkg/interpreter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHistory []string

func (f fakeHistory) Entries() []string { return f }

func TestEchoCommand(t *testing.T) {
	cmd := NewEchoCommand()

	assert.Equal(t, "echo", cmd.GetName())
	assert.Empty(t, cmd.GetAlias())
	assert.Equal(t, "hello a b cd 32", cmd.Execute([]string{"hello", "a", "b", "cd", "32"}))
	assert.Equal(t, "", cmd.Execute(nil))
}

func TestListCommandsCommand(t *testing.T) {
	t.Run("lists names and aliases", func(t *testing.T) {
		in := interpreter.New()
		RegisterDefaults(in, nil)

		out := in.Execute("listcmds")
		assert.Equal(t, "echo\nlistcmds @lc\nloremipsum @lor", out)
	})

	t.Run("reachable through its alias", func(t *testing.T) {
		in := interpreter.New()
		RegisterDefaults(in, fakeHistory{"a"})

		out := in.Execute("lc")
		assert.Contains(t, out, "history @hist")
	})

	t.Run("without lister", func(t *testing.T) {
		assert.Equal(t, "", NewListCommandsCommand(nil).Execute(nil))
	})
}

func TestLoremIpsumCommand(t *testing.T) {
	in := interpreter.New()
	RegisterDefaults(in, nil)

	out := in.Execute("lor")
	assert.True(t, strings.HasPrefix(out, "Lorem ipsum"))
	assert.Greater(t, strings.Count(out, "\n"), 1)
}

func TestHistoryCommand(t *testing.T) {
	t.Run("numbered oldest first", func(t *testing.T) {
		cmd := NewHistoryCommand(fakeHistory{"echo a", "lc"})
		assert.Equal(t, "  1  echo a\n  2  lc", cmd.Execute(nil))
	})

	t.Run("empty history", func(t *testing.T) {
		cmd := NewHistoryCommand(fakeHistory{})
		assert.Equal(t, "", cmd.Execute(nil))
	})
}

func TestRegisterDefaults(t *testing.T) {
	in := interpreter.New()
	RegisterDefaults(in, fakeHistory{})

	var names []string
	for _, cmd := range in.Commands() {
		names = append(names, cmd.GetName())
	}
	require.Len(t, names, 4)
	assert.Equal(t, []string{"echo", "listcmds", "loremipsum", "history"}, names)
}
