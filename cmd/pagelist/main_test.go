package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/pagelist/internal/cli"
	"github.com/rshade/pagelist/internal/config"
	"github.com/rshade/pagelist/pkg/version"
)

func setupMainTest(t *testing.T) {
	t.Helper()
	t.Setenv("PAGELIST_HOME", t.TempDir())
	t.Setenv("PAGELIST_LOG_LEVEL", "error")
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)
}

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version.GetVersion())
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		assert.NotNil(t, root)
		assert.Equal(t, "pagelist", root.Use)
	})
}

func TestRun(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "plain first page",
			args:       []string{"list", "--plain"},
			wantCode:   0,
			wantStdout: "Item 5",
		},
		{
			name:       "invalid page",
			args:       []string{"list", "--page", "0"},
			wantCode:   1,
			wantStderr: "Error: page must be >= 1",
		},
		{
			name:       "version",
			args:       []string{"--version"},
			wantCode:   0,
			wantStdout: version.Display(),
		},
		{
			name:       "unknown command",
			args:       []string{"frobnicate"},
			wantCode:   1,
			wantStderr: "Error:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupMainTest(t)

			var stdout, stderr bytes.Buffer
			code := run(tt.args, &stdout, &stderr)

			assert.Equal(t, tt.wantCode, code)
			assert.Contains(t, stdout.String(), tt.wantStdout)
			assert.Contains(t, stderr.String(), tt.wantStderr)
		})
	}
}
