package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var shellCommands = []string{"request", "solve", "submit", "status", "layout", "payload", "help", "quit"}

func TestMatchCommand(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr string
	}{
		{input: "request", want: "request"},
		{input: "REQ", want: "request"},
		{input: "so", want: "solve"},
		{input: "sub", want: "submit"},
		{input: "l", want: "layout"},
		{input: " q ", want: "quit"},
		{input: "s", wantErr: `ambiguous command "s" matches: solve, submit, status`},
		{input: "st", want: "status"},
		{input: "zap", wantErr: `command "zap" not found`},
		{input: "", wantErr: "empty command"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := MatchCommand(tt.input, shellCommands)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchCommand_ExactBeatsPrefix(t *testing.T) {
	got, err := MatchCommand("go", []string{"go", "gone"})
	require.NoError(t, err)
	assert.Equal(t, "go", got)
}

func TestMatchCommand_NotFoundType(t *testing.T) {
	_, err := MatchCommand("x", shellCommands)
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "command", nf.Type)
}
