package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeCmd_RequiresRepoURL(t *testing.T) {
	root := NewRootCmd()
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"analyze"})

	err := root.Execute()
	assert.Error(t, err)
}

func TestAnalyzeCmd_Registered(t *testing.T) {
	root := NewRootCmd()
	cmd, _, err := root.Find([]string{"analyze"})
	require.NoError(t, err)
	assert.Equal(t, "analyze <repo-url>", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("out"))
	assert.NotNil(t, cmd.Flags().Lookup("repos-dir"))
}
