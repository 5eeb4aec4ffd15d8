package build

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Tests that modify the global Version variable cannot run in parallel.
func TestVersionGlobalVariable(t *testing.T) {
	tests := map[string]struct {
		version string
		want    bool
	}{
		"dev version":     {version: "dev", want: true},
		"release version": {version: "v0.2.0", want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			origVersion := Version
			Version = tt.version
			defer func() { Version = origVersion }()

			assert.Equal(t, tt.want, IsDevBuild())
		})
	}
}

func TestInfo(t *testing.T) {
	origCommit := Commit
	Commit = "0123456789abcdef"
	defer func() { Commit = origCommit }()

	info := Info()
	assert.True(t, strings.HasPrefix(info, "claude-notify "))
	assert.Contains(t, info, "commit: 01234567\n")
	assert.NotContains(t, info, "0123456789abcdef")
}
