package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewCmd_Metadata(t *testing.T) {
	assert.Equal(t, "view [file]", viewCmd.Use)
	assert.Contains(t, viewCmd.Long, "Toggle display and all columns")
}

func TestViewCmd_NotConfigured(t *testing.T) {
	resetState()
	defer resetState()

	_, _, err := execute(t, "", "view", "well.csv")
	assert.ErrorIs(t, err, errNoEngine)
}

func TestMCPServeCmd_Metadata(t *testing.T) {
	assert.Equal(t, "serve", mcpServeCmd.Use)
	port := mcpServeCmd.Flags().Lookup("port")
	assert.NotNil(t, port)
	assert.Equal(t, "p", port.Shorthand)
	assert.Equal(t, "0", port.DefValue)
}

func TestMCPServeCmd_NotConfigured(t *testing.T) {
	resetState()
	defer resetState()

	_, _, err := execute(t, "", "mcp", "serve")
	assert.ErrorIs(t, err, errNoEngine)
}
