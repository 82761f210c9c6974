package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Dimension", Capitalize("dimension"))
	assert.Equal(t, "X_y", Capitalize("x_y"))
	assert.Equal(t, "Already", Capitalize("Already"))
	assert.Empty(t, Capitalize(""))
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty([]string(nil)))
	assert.True(t, IsEmpty([]int{}))
	assert.False(t, IsEmpty([]int{1}))
}
