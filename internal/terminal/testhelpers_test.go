package terminal

import (
	"testing"
)

// setupCleanEnv gives a test full control over every environment variable
// the package reads. Variables not listed in envVars are cleared, so the
// surrounding CI or developer shell cannot leak into assertions.
func setupCleanEnv(t *testing.T, envVars map[string]string) {
	t.Helper()

	// NO_COLOR uses os.LookupEnv: empty and unset differ, so it is only
	// set when the test asks for it.
	if value, specified := envVars["NO_COLOR"]; specified {
		t.Setenv("NO_COLOR", value)
	}

	// The rest use os.Getenv, where empty means unset.
	valueCheckedVars := []string{
		"CLICOLOR", "CLICOLOR_FORCE", "TERM",
		"CI", "CONTINUOUS_INTEGRATION", "GITHUB_ACTIONS", "TRAVIS",
		"CIRCLECI", "JENKINS_URL", "BUILD_NUMBER", "GITLAB_CI",
		"APPVEYOR", "BUILDKITE", "DRONE", "TF_BUILD",
	}
	for _, v := range valueCheckedVars {
		if value, specified := envVars[v]; specified {
			t.Setenv(v, value)
		} else {
			t.Setenv(v, "")
		}
	}
}
