package maven

import (
	"os"
	"path/filepath"
	"strings"
)

// toolchainEnv builds the environment for the build invocation: the ambient
// environment with JAVA_HOME replaced by the requested toolchain and the
// toolchain's bin directory prepended to PATH.
func toolchainEnv(base []string, toolchainDir, version string) []string {
	javaHome := filepath.Join(toolchainDir, version)

	var path string
	env := make([]string, 0, len(base)+2)
	for _, kv := range base {
		switch {
		case strings.HasPrefix(kv, "JAVA_HOME="):
			// replaced below
		case strings.HasPrefix(kv, "PATH="):
			path = strings.TrimPrefix(kv, "PATH=")
		default:
			env = append(env, kv)
		}
	}

	binDir := filepath.Join(javaHome, "bin")
	if path == "" {
		path = binDir
	} else {
		path = binDir + string(os.PathListSeparator) + path
	}

	env = append(env, "JAVA_HOME="+javaHome)
	env = append(env, "PATH="+path)
	return env
}
