package maven

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitExecutable(t *testing.T) {
	exe, rest := splitExecutable([]string{"mvn", "clean", "install"})
	assert.Equal(t, "mvn", exe)
	assert.Equal(t, []string{"clean", "install"}, rest)

	exe, rest = splitExecutable([]string{"./mvnw", "verify"})
	assert.Equal(t, "./mvnw", exe)
	assert.Equal(t, []string{"verify"}, rest)

	exe, rest = splitExecutable([]string{"clean", "install"})
	assert.Empty(t, exe)
	assert.Equal(t, []string{"clean", "install"}, rest)

	exe, rest = splitExecutable(nil)
	assert.Empty(t, exe)
	assert.Empty(t, rest)
}

func TestBuildArgs_InjectsDefaults(t *testing.T) {
	args := buildArgs([]string{"clean", "install"}, "/work/proj", false)
	assert.Equal(t, []string{
		"clean", "install",
		"-Dmaven.repo.local=/work/proj/.m2/repository",
	}, args)
}

func TestBuildArgs_NoDuplicateRepoLocal(t *testing.T) {
	args := buildArgs([]string{"clean", "install", "-Dmaven.repo.local=/custom"}, "/work/proj", false)
	assert.Equal(t, []string{"clean", "install", "-Dmaven.repo.local=/custom"}, args)
}

func TestBuildArgs_SettingsInjection(t *testing.T) {
	args := buildArgs([]string{"verify"}, "/p", true)
	assert.Contains(t, args, "--settings=ci-settings.xml")
}

func TestBuildArgs_NoDuplicateSettingsFlag(t *testing.T) {
	for _, existing := range []string{"--settings=my.xml", "--settings", "-s"} {
		args := buildArgs([]string{"verify", existing}, "/p", true)
		count := 0
		for _, a := range args {
			if a == "-s" || a == "--settings" || len(a) > 11 && a[:11] == "--settings=" {
				count++
			}
		}
		assert.Equal(t, 1, count, "input flag %q", existing)
	}
}

func TestBuildArgs_DoesNotMutateInput(t *testing.T) {
	user := []string{"clean"}
	_ = buildArgs(user, "/p", true)
	assert.Equal(t, []string{"clean"}, user)
}
