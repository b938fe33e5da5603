package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()

	assert.True(t, cmd.SilenceUsage)
	assert.True(t, cmd.SilenceErrors)
	require.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	require.NotNil(t, cmd.PersistentFlags().Lookup("verbose"))
	assert.Equal(t, "c", cmd.PersistentFlags().Lookup("config").Shorthand)

	for _, path := range [][]string{{"serve"}, {"init-db"}, {"user", "add"}, {"user", "del"}, {"user", "list"}} {
		sub, _, err := cmd.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], sub.Name())
	}

	add, _, err := cmd.Find([]string{"user", "add"})
	require.NoError(t, err)
	assert.NotNil(t, add.Flags().Lookup("admin"))
}

func TestRootCommand_UnknownCommand(t *testing.T) {
	_, err := runCLI(t, writeCLIConfig(t), "", "migrate")
	assert.Error(t, err)
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	path := writeConfigFile(t, "bcrypt_cost: 99\n")
	clearConfigEnv(t)

	_, err := runCLI(t, path, "", "user", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestReadSecret(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "single line", input: "adminpass1", want: "adminpass1"},
		{name: "first line only", input: "adminpass1\nignored\n", want: "adminpass1"},
		{name: "crlf", input: "adminpass1\r\n", want: "adminpass1"},
		{name: "inner spaces kept", input: "correct horse battery\n", want: "correct horse battery"},
		{name: "empty input", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readSecret(strings.NewReader(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
