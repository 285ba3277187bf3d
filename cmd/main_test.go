package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProducts(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ENVIRONMENT", "production")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCheckCommand(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"valid", `{"products":[{"id":1,"code":"X1","name":"Bracket","stockStatus":"in_stock"}]}`, ""},
		{"empty_collection", `{}`, ""},
		{"duplicate_ids", `{"products":[{"id":"1"},{"id":1}]}`, "1 problems found"},
		{"unknown_stock", `{"products":[{"id":"1","stockStatus":"sold"}]}`, "1 problems found"},
		{"malformed", `{"products":`, "parse products"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, "check", writeProducts(t, tt.body))
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Contains(t, out, "products file is valid")
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCheckCommandMissingFile(t *testing.T) {
	_, err := runCommand(t, "check", filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestPublishCommandRequiresToken(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	path := writeProducts(t, `{"products":[{"id":"1","name":"Bracket"}]}`)

	_, err := runCommand(t, "publish", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "github client")
}

func TestCleanSourcePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"module_prefix", "/home/dev/3dwebmarket/internal/catalog/loader.go", "internal/catalog/loader.go"},
		{"gopath", "/root/go/src/example.com/x/y.go", "example.com/x/y.go"},
		{"unrelated", "/opt/lib/z.go", "/opt/lib/z.go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanSourcePath(tt.path, "/3dwebmarket/"))
		})
	}
}
