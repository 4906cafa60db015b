package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDoMainNormalizesArguments(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := doMain(&stdout, &stderr, []string{"VITALIK"})
	require.Equal(t, 0, code)
	require.Equal(t, "vitalik\n", stdout.String())
	require.Empty(t, stderr.String())
}

func TestDoMainBeautifyFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := doMain(&stdout, &stderr, []string{"-beautify", "Vitalik"})
	require.Equal(t, 0, code)
	require.Equal(t, "vitalik\n", stdout.String())
	require.Empty(t, stderr.String())
}

func TestDoMainReportsErrorsAndKeepsGoing(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := doMain(&stdout, &stderr, []string{"", "VITALIK"})
	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "empty label")
	require.Equal(t, "vitalik\n", stdout.String())
}

func TestDoMainNoArgsPrintsUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := doMain(&stdout, &stderr, nil)
	require.Equal(t, 0, code)
	require.Contains(t, stderr.String(), "usage:")
}
