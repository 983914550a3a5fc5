package biometric

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomwalk/hrm-client/internal/logger"
)

func TestNewExecPrompter_DefaultCommand(t *testing.T) {
	p := NewExecPrompter("", logger.Nop())
	assert.Equal(t, defaultVerifyCommand, p.command)
}

func TestExecPrompter_Available(t *testing.T) {
	assert.True(t, NewExecPrompter("true", logger.Nop()).Available())
	assert.False(t, NewExecPrompter("no-such-verify-helper", logger.Nop()).Available())
}

func TestExecPrompter_Prompt(t *testing.T) {
	ctx := context.Background()

	ok, err := NewExecPrompter("true", logger.Nop()).Prompt(ctx, "unlock")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = NewExecPrompter("false", logger.Nop()).Prompt(ctx, "unlock")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = NewExecPrompter("no-such-verify-helper", logger.Nop()).Prompt(ctx, "unlock")
	require.Error(t, err)
}
