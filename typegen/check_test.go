package typegen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeExisting(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "api.rs")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCompare_UpToDate(t *testing.T) {
	content := "pub mod users {\n}\n\n"
	res, err := Compare(content, writeExisting(t, content))
	require.NoError(t, err)

	assert.True(t, res.UpToDate)
	assert.False(t, res.Missing)
	assert.Empty(t, res.Lines)
}

func TestCompare_IgnoresSourceVersion(t *testing.T) {
	existing := strings.Join(Header("https://example.com", "1.0.0"), "\n") + "\npub mod users {\n}\n"
	generated := strings.Join(Header("https://example.com", "1.1.0"), "\n") + "\npub mod users {\n}\n"

	res, err := Compare(generated, writeExisting(t, existing))
	require.NoError(t, err)
	assert.True(t, res.UpToDate)
}

func TestCompare_Differs(t *testing.T) {
	res, err := Compare("a\nB\nc\n", writeExisting(t, "a\nb\nc\n"))
	require.NoError(t, err)

	assert.False(t, res.UpToDate)
	assert.Equal(t, 1, res.Added)
	assert.Equal(t, 1, res.Removed)
	assert.Equal(t, " a\n-b\n+B\n c\n", res.Unified(1))
	assert.Equal(t, "...\n-b\n+B\n", res.Unified(0))
}

func TestCompare_Missing(t *testing.T) {
	res, err := Compare("x\ny\n", filepath.Join(t.TempDir(), "api.rs"))
	require.NoError(t, err)

	assert.True(t, res.Missing)
	assert.False(t, res.UpToDate)
	assert.Equal(t, 2, res.Added)
	assert.Equal(t, 0, res.Removed)
}

func TestHeader(t *testing.T) {
	assert.Equal(t, []string{generatedMarker}, Header("", ""))
	assert.Equal(t, []string{
		"// Code generated by auth0-codegen. DO NOT EDIT.",
		"// Source: https://login.auth0.com/api/v2/api-docs",
		"// Source version: 1.2.0",
	}, Header("https://login.auth0.com/api/v2/api-docs", "1.2.0"))
}

func TestCompare_LongLines(t *testing.T) {
	existing := "// " + strings.Repeat("A", 70000) + "\n"
	generated := "// " + strings.Repeat("B", 70000) + "\n"

	res, err := Compare(generated, writeExisting(t, existing))
	require.NoError(t, err)
	assert.False(t, res.UpToDate)
	assert.Equal(t, 1, res.Added)
	assert.Equal(t, 1, res.Removed)
}

func TestCompare_LineTooLong(t *testing.T) {
	huge := strings.Repeat("x", maxLineBytes+1)

	_, err := Compare(huge, writeExisting(t, "x\n"))
	assert.Error(t, err)
}
