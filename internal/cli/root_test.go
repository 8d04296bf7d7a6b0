package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "greb", cmd.Use)
	assert.Contains(t, cmd.Long, "derivative")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"match", "filter", "explain", "catalog", "suite", "history"}

	for _, name := range commands {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err, "command %s not registered", name)
			require.NotNil(t, sub)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestCatalogSubcommands(t *testing.T) {
	cmd := NewRootCommand()

	for _, sub := range []string{"list", "verify"} {
		subCmd, _, err := cmd.Find([]string{"catalog", sub})
		require.NoError(t, err)
		assert.Equal(t, sub, subCmd.Name())
	}
}

func TestGlobalFlags(t *testing.T) {
	flags := NewRootCommand().PersistentFlags()

	verbose := flags.Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
	assert.Equal(t, "false", verbose.DefValue)

	format := flags.Lookup("format")
	require.NotNil(t, format)
	assert.Empty(t, format.Shorthand)
	assert.Equal(t, "text", format.DefValue)
}

func TestMatchCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	matchCmd, _, err := cmd.Find([]string{"match"})
	require.NoError(t, err)

	searchFlag := matchCmd.Flags().Lookup("search")
	require.NotNil(t, searchFlag)
	assert.Equal(t, "false", searchFlag.DefValue)
}

func TestExplainCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	explainCmd, _, err := cmd.Find([]string{"explain"})
	require.NoError(t, err)

	dbFlag := explainCmd.Flags().Lookup("db")
	require.NotNil(t, dbFlag)
	assert.Equal(t, "", dbFlag.DefValue)

	stepsFlag := explainCmd.Flags().Lookup("max-steps")
	require.NotNil(t, stepsFlag)
	assert.Equal(t, "0", stepsFlag.DefValue)

	sizeFlag := explainCmd.Flags().Lookup("max-size")
	require.NotNil(t, sizeFlag)
	assert.Equal(t, "0", sizeFlag.DefValue)
}

func TestHistoryCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	historyCmd, _, err := cmd.Find([]string{"history"})
	require.NoError(t, err)

	dbFlag := historyCmd.Flags().Lookup("db")
	require.NotNil(t, dbFlag)
	// --db is required, so default is empty
	assert.Equal(t, "", dbFlag.DefValue)

	limitFlag := historyCmd.Flags().Lookup("limit")
	require.NotNil(t, limitFlag)
	assert.Equal(t, "20", limitFlag.DefValue)
}

func TestFormatValidation(t *testing.T) {
	cases := map[string]bool{
		"text": true,
		"json": true,
		"xml":  false,
		"":     false,
		"TEXT": false, // case-sensitive
	}
	for format, want := range cases {
		assert.Equal(t, want, isValidFormat(format), "format %q", format)
	}
}

func TestFormatValidationIntegration(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"--format", "invalid", "match", "a", "a"})

	err := cmd.Execute()
	assert.ErrorContains(t, err, "invalid format")
}
