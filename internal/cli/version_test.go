package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ariel-frischer/claude-notify/internal/build"
)

func TestVersionCmd(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		args []string
	}{
		"full name": {args: []string{"version"}},
		"alias":     {args: []string{"v"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			rec := &recordingDisplayer{}
			res := execute(t, testEnv(t, "", rec), tt.args...)

			assert.Equal(t, ExitSuccess, res.code)
			assert.Equal(t, build.Info(), res.stdout)
			assert.Contains(t, res.stdout, "claude-notify ")
			assert.Empty(t, rec.calls)
		})
	}
}
