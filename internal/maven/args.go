package maven

import (
	"path/filepath"
	"strings"

	"github.com/mavenhook/mavenhook/internal/project"
)

const (
	repoLocalProperty = "maven.repo.local"
	settingsLongFlag  = "--settings"
	settingsShortFlag = "-s"
)

// splitExecutable pops a user-supplied executable override from the front of
// the tokenized argument list. If the first token names the build tool
// itself, it is used as the executable and removed so it is not passed twice.
func splitExecutable(tokens []string) (exe string, rest []string) {
	if len(tokens) == 0 {
		return "", tokens
	}
	if isMavenExecutable(tokens[0]) {
		return tokens[0], tokens[1:]
	}
	return "", tokens
}

func isMavenExecutable(token string) bool {
	base := filepath.Base(token)
	return base == "mvn" || base == "mvnw"
}

// hasRepoLocal reports whether the user already overrides the local
// repository path anywhere in the argument list.
func hasRepoLocal(tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(t, repoLocalProperty) {
			return true
		}
	}
	return false
}

// hasSettingsFlag reports whether the argument list already carries a
// settings-file flag, in either the long or the short spelling.
func hasSettingsFlag(tokens []string) bool {
	for _, t := range tokens {
		if t == settingsShortFlag || t == settingsLongFlag || strings.HasPrefix(t, settingsLongFlag+"=") {
			return true
		}
	}
	return false
}

// buildArgs assembles the final argument list for the build invocation:
// user arguments first, then injected defaults unless the user already
// supplied an equivalent flag.
func buildArgs(userArgs []string, root string, withSettings bool) []string {
	args := make([]string, len(userArgs))
	copy(args, userArgs)

	if !hasRepoLocal(args) {
		args = append(args, "-D"+repoLocalProperty+"="+filepath.Join(root, ".m2", "repository"))
	}
	if withSettings && !hasSettingsFlag(args) {
		args = append(args, settingsLongFlag+"="+project.SettingsFile)
	}
	return args
}
