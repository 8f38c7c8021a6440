package maven

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolchainEnv(t *testing.T) {
	base := []string{
		"HOME=/home/ci",
		"PATH=/usr/local/bin:/usr/bin",
		"JAVA_HOME=/usr/lib/jvm/old",
	}

	env := toolchainEnv(base, "/opt/java", "17")

	assert.Contains(t, env, "HOME=/home/ci")
	assert.Contains(t, env, "JAVA_HOME=/opt/java/17")
	assert.NotContains(t, env, "JAVA_HOME=/usr/lib/jvm/old")

	var path string
	for _, kv := range env {
		if strings.HasPrefix(kv, "PATH=") {
			path = strings.TrimPrefix(kv, "PATH=")
		}
	}
	require.NotEmpty(t, path)
	assert.True(t, strings.HasPrefix(path, "/opt/java/17/bin"), "toolchain bin must come first, got %q", path)
	assert.Contains(t, path, "/usr/local/bin:/usr/bin")

	// Input is not mutated.
	assert.Equal(t, "JAVA_HOME=/usr/lib/jvm/old", base[2])
}

func TestToolchainEnv_NoAmbientPath(t *testing.T) {
	env := toolchainEnv([]string{"HOME=/home/ci"}, "/opt/java", "21")
	assert.Contains(t, env, "PATH=/opt/java/21/bin")
}
