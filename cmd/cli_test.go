package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeCLIConfig writes a YAML config with a fresh database and returns its path.
func writeCLIConfig(t *testing.T) string {
	t.Helper()
	clearConfigEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "database: " + filepath.Join(dir, "iotpersistence.db") + "\n" +
		"http_port: 0\n" +
		"health_port: 0\n" +
		"bcrypt_cost: 4\n" +
		"log_level: error\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// runCLI executes the root command and returns what it wrote to stdout.
func runCLI(t *testing.T, configPath, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", configPath}, args...))

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}
