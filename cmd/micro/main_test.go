package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/micro/internal/kernels"
)

func TestRunVersion(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"version"}, &out, &out))
	assert.Contains(t, out.String(), version)
}

func TestRunOps(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"ops"}, &out, &out))
	assert.Contains(t, out.String(), "AveragePool2D")
	assert.Contains(t, out.String(), "L2Pool2D")
}

func TestRunPoolAverage(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run([]string{"pool", "-op", "avg", "-fill", "const", "-value", "3"}, &out, &errOut)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "AveragePool2D")
	assert.Contains(t, out.String(), "[3 3]")
}

func TestRunPoolInt8Max(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run([]string{"pool", "-op", "max", "-dtype", "int8", "-scale", "0.5"}, &out, &errOut)
	require.NoError(t, err)

	// Ramp 0..15 over a 4x4 input, 2x2 windows with stride 2.
	assert.Contains(t, out.String(), "[5 7]")
	assert.Contains(t, out.String(), "[13 15]")
}

func TestRunPoolInt8Real(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run([]string{"pool", "-op", "max", "-dtype", "int8", "-scale", "0.5", "-zp", "1", "-real"}, &out, &errOut)
	require.NoError(t, err)

	// Levels 5, 7, 13, 15 with scale 0.5 and zero point 1.
	assert.Contains(t, out.String(), "[2 3]")
	assert.Contains(t, out.String(), "[6 7]")
}

func TestRunPoolConfigureError(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run([]string{"pool", "-op", "l2", "-dtype", "int8"}, &out, &errOut)
	assert.Error(t, err)
}

func TestRunPoolNonPositiveAttributes(t *testing.T) {
	for _, args := range [][]string{
		{"pool", "-stride", "0"},
		{"pool", "-stride", "-2"},
		{"pool", "-filter", "0"},
	} {
		var out, errOut bytes.Buffer
		err := run(args, &out, &errOut)
		require.Error(t, err, "%v", args)
		assert.True(t, errors.Is(err, kernels.ErrInvalidAttribute), "%v: %v", args, err)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run([]string{"train"}, &out, &out))
}
