package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRejectsUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	assert.ErrorIs(t, run(nil, &out), errUsage)
	assert.ErrorIs(t, run([]string{"dance"}, &out), errUsage)
}

func TestMeditateRequiresToken(t *testing.T) {
	t.Setenv("MINDFUL_TOKEN", "")
	var out bytes.Buffer
	err := run([]string{"meditate", "-length", "1s"}, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token")
}
