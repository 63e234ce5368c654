package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `{
	"Item1": ["Courier1", "Courier2"],
	"Item2": ["Courier2", "Courier3"],
	"Item3": ["Courier1", "Courier3"],
	"Item4": []
}`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func runSplit(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_ItemsAsArguments(t *testing.T) {
	catalogPath := writeTemp(t, "catalog.json", testCatalog)

	code, stdout, stderr := runSplit(t, "-catalog", catalogPath, "Item1", "Item2", "Item3")

	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, "Courier1: Item1, Item3\nCourier2: Item2\n", stdout)
}

func TestRun_BasketFileAndJSONOutput(t *testing.T) {
	catalogPath := writeTemp(t, "catalog.json", testCatalog)
	basketPath := writeTemp(t, "basket.json", `["Item2", "Item2"]`)

	code, stdout, stderr := runSplit(t, "-catalog", catalogPath, "-basket", basketPath, "-json")

	require.Equal(t, exitOK, code, stderr)
	assert.JSONEq(t, `[{"courier": "Courier2", "items": ["Item2", "Item2"]}]`, stdout)
}

func TestRun_EmptyBasket(t *testing.T) {
	catalogPath := writeTemp(t, "catalog.json", testCatalog)

	code, stdout, _ := runSplit(t, "-catalog", catalogPath)

	assert.Equal(t, exitOK, code)
	assert.Empty(t, stdout)
}

func TestRun_ExitCodes(t *testing.T) {
	catalogPath := writeTemp(t, "catalog.json", testCatalog)

	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{name: "unknown item", args: []string{"-catalog", catalogPath, "Item1", "Caviar"}, wantCode: exitUnknownItem},
		{name: "no coverage", args: []string{"-catalog", catalogPath, "Item4"}, wantCode: exitNoCoverage},
		{name: "missing catalog flag", args: []string{"Item1"}, wantCode: exitFailure},
		{name: "missing catalog file", args: []string{"-catalog", filepath.Join(t.TempDir(), "absent.json")}, wantCode: exitFailure},
		{name: "basket file and arguments", args: []string{"-catalog", catalogPath, "-basket", "b.json", "Item1"}, wantCode: exitFailure},
		{name: "unknown flag", args: []string{"-verbose"}, wantCode: exitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runSplit(t, tt.args...)

			assert.Equal(t, tt.wantCode, code)
			assert.NotEmpty(t, stderr)
		})
	}
}
