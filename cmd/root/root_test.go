package root_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/activity-export/cmd/root"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "activity-export", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "OFX or QFX")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRunE)
	assert.NotNil(t, root.Cmd.PersistentPostRunE)
}

func TestRootCommand_Flags(t *testing.T) {
	root.Init()
	root.Init()

	for name, short := range map[string]string{"input": "i", "output": "o", "account": "a"} {
		flag := root.Cmd.PersistentFlags().Lookup(name)
		require.NotNil(t, flag, name)
		assert.Equal(t, short, flag.Shorthand)
	}
	assert.NotNil(t, root.Cmd.PersistentFlags().Lookup("config"))
}

func TestRootCommand_ExecuteBuildsContainer(t *testing.T) {
	dir := t.TempDir()
	prevWD, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prevWD) })
	t.Setenv("HOME", dir)
	t.Setenv("ACTEXP_STATE_FILE", filepath.Join(dir, "state.yaml"))

	root.Init()
	root.Cmd.SetArgs([]string{})
	require.NoError(t, root.Cmd.Execute())
	assert.Nil(t, root.AppContainer)
}

func TestRootCommand_BadConfigFile(t *testing.T) {
	dir := t.TempDir()
	prevWD, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prevWD) })
	t.Setenv("HOME", dir)
	cfg := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("log:\n  level: loud\n"), 0600))

	root.Init()
	root.Cmd.SetArgs([]string{"--config", cfg})
	t.Cleanup(func() { root.ConfigFile = "" })

	err := root.Cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}
