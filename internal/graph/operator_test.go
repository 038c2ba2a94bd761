package graph

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool2DAttributes(t *testing.T) {
	op := &Operator{
		Code:       OpAveragePool2D,
		Attributes: Pool2DAttributes(3, 2, 2, 1, PaddingSame, ActivationRelu6),
	}

	assert.Equal(t, int64(3), GetAttrInt(op, AttrFilterHeight, 0))
	assert.Equal(t, int64(2), GetAttrInt(op, AttrFilterWidth, 0))
	assert.Equal(t, int64(2), GetAttrInt(op, AttrStrideH, 0))
	assert.Equal(t, int64(1), GetAttrInt(op, AttrStrideW, 0))
	assert.Equal(t, "SAME", GetAttrString(op, AttrPadding, ""))
	assert.Equal(t, "RELU6", GetAttrString(op, AttrFusedActivation, ""))

	assert.True(t, HasAttr(op, AttrPadding))
	assert.False(t, HasAttr(op, "dilation"))
	assert.Equal(t, int64(7), GetAttrInt(op, "dilation", 7))
	assert.Equal(t, "x", GetAttrString(op, "dilation", "x"))
}

func TestParsePadding(t *testing.T) {
	for _, p := range []Padding{PaddingSame, PaddingValid} {
		got, err := ParsePadding(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	_, err := ParsePadding("same")
	assert.EqualError(t, err, `unknown padding "same"`)
	assertHasStack(t, err)
}

func TestParseActivation(t *testing.T) {
	for _, a := range []Activation{ActivationNone, ActivationRelu, ActivationReluN1To1, ActivationRelu6} {
		got, err := ParseActivation(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}

	got, err := ParseActivation("")
	require.NoError(t, err)
	assert.Equal(t, ActivationNone, got)

	_, err = ParseActivation("TANH")
	assert.EqualError(t, err, `unknown fused activation "TANH"`)
	assertHasStack(t, err)
}

func assertHasStack(t *testing.T, err error) {
	t.Helper()
	_, ok := err.(interface{ StackTrace() errors.StackTrace })
	assert.True(t, ok, "error %v has no stack trace", err)
}

func TestOpCodeString(t *testing.T) {
	assert.Equal(t, "AveragePool2D", OpAveragePool2D.String())
	assert.Equal(t, "MaxPool2D", OpMaxPool2D.String())
	assert.Equal(t, "L2Pool2D", OpL2Pool2D.String())
	assert.Equal(t, "OpCode(9)", OpCode(9).String())
}
