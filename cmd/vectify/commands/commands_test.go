package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("HUGGINGFACE_API_TOKEN", "")
	t.Setenv("SUPABASE_URL", "")

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(t.Context())
	return out.String(), err
}

func TestPlaceholderCommand(t *testing.T) {
	out, err := run(t, "placeholder", "https://host/bucket/user/1700000000.png")
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.True(t, strings.HasPrefix(decoded["vectorUrl"], "data:image/svg+xml;base64,"))
	assert.True(t, strings.HasPrefix(decoded["pngUrl"], "data:image/svg+xml;base64,"))
}

func TestPlaceholderCommandWithoutName(t *testing.T) {
	_, err := run(t, "placeholder", "https://host/")
	assert.Error(t, err)
}

func TestProcessCommandWithoutProviders(t *testing.T) {
	out, err := run(t, "process", "https://host/bucket/user/sketch.png", "--mode", "drawing")
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "placeholder", decoded["drawingSource"])
	assert.NotEqual(t, decoded["vectorUrl"], decoded["pngUrl"])
}

func TestProcessCommandTextWithoutKey(t *testing.T) {
	_, err := run(t, "process", "https://host/a.png", "--mode", "text")
	assert.Error(t, err)
}
