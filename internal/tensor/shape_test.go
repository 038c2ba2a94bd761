package tensor

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestShapeNumElements(t *testing.T) {
	assert.Equal(t, 1, Shape{}.NumElements())
	assert.Equal(t, 16, Shape{1, 4, 4, 1}.NumElements())
	assert.Equal(t, 0, Shape{1, 0, 4, 1}.NumElements())
}

func TestShapeValidate(t *testing.T) {
	assert.NoError(t, Shape{1, 0, 3}.Validate())
	err := Shape{1, -2}.Validate()
	assert.EqualError(t, err, "invalid dimension at index 1: -2 (must be >= 0)")

	_, hasStack := err.(interface{ StackTrace() errors.StackTrace })
	assert.True(t, hasStack, "validation errors carry a stack trace")
}

func TestShapeCloneIsIndependent(t *testing.T) {
	s := Shape{1, 2, 3}
	c := s.Clone()
	c[0] = 9

	assert.True(t, s.Equal(Shape{1, 2, 3}))
	assert.False(t, s.Equal(c))
	assert.False(t, s.Equal(Shape{1, 2}))
}

func TestShapeOffset4D(t *testing.T) {
	s := Shape{2, 3, 4, 5}
	assert.Equal(t, 0, s.Offset4D(0, 0, 0, 0))
	assert.Equal(t, 1*60+2*20+3*5+4, s.Offset4D(1, 2, 3, 4))
	assert.Equal(t, s.NumElements()-1, s.Offset4D(1, 2, 3, 4))
}
