package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunArgs(t *testing.T) {
	out, err := execute(t, "", "3 + 4 * 2", "10 / 0", "1/3", "--", "-2^2")
	require.NoError(t, err)
	want := "11\n" +
		"ERR DIVBYZERO: 4: division by zero\n" +
		"0.333333\n" +
		"4\n"
	assert.Equal(t, want, out)
}

func TestRunStdin(t *testing.T) {
	out, err := execute(t, "1+1\n\n  2*3\n(3 + 4\n")
	require.NoError(t, err)
	want := "2\n" +
		"6\n" +
		`ERR SYNTAX: 1: open paren with no close paren: "("` + "\n"
	assert.Equal(t, want, out)
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exprs.txt")
	require.NoError(t, os.WriteFile(path, []byte("2^3^2\n3 4\n"), 0o644))
	out, err := execute(t, "ignored", "--in", path, "--workers", "2", "--echo", "0.5 + 0.25")
	require.NoError(t, err)
	want := "2^3^2 : 512\n" +
		`3 4 : ERR SYNTAX: 3: unexpected number after number: "4"` + "\n" +
		"0.5 + 0.25 : 0.75\n"
	assert.Equal(t, want, out)
}

func TestRunTrace(t *testing.T) {
	out, err := execute(t, "", "--trace", "3--2", "3 +")
	require.NoError(t, err)
	want := "expression 1:\n" +
		"  expression: 3--2\n" +
		"  tokens: 3 - (-) 2\n" +
		"  postfix: 3 2 -(unary) -\n" +
		"  evaluation complete\n" +
		"5\n" +
		"expression 2:\n" +
		"  expression: 3 +\n" +
		"  tokens: 3 +\n" +
		`  error: ERR SYNTAX (3: expression ends with operator: "+")` + "\n" +
		`ERR SYNTAX: 3: expression ends with operator: "+"` + "\n"
	assert.Equal(t, want, out)
}

func TestRunMissingFile(t *testing.T) {
	_, err := execute(t, "", "--in", filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
