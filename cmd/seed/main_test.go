package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLocationCodes(t *testing.T) {
	// "Pañol-1" en ISO-8859-1: ñ = 0xF1
	raw := []byte("A\nA-01\n\n B-02 \nH\nPa\xf1ol-1\nA-01\nI\n")

	codes, err := ReadLocationCodes(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, []string{"A-01", "B-02", "Pañol-1", "I"}, codes)
}

func TestSkip(t *testing.T) {
	assert.False(t, skip(nil))
}
