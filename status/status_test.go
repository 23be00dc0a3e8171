package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameStatus_String(t *testing.T) {
	assert.Equal(t, "InProgress", InProgress.String())
	assert.Equal(t, "BlackCheckmated", BlackCheckmated.String())
	assert.Equal(t, "Unknown", GameStatus(-1).String())
}

func TestGameStatus_IsTerminal(t *testing.T) {
	assert.False(t, InProgress.IsTerminal())
	assert.True(t, Stalemate.IsTerminal())
	assert.True(t, FiftyMoveDraw.IsTerminal())
}

func TestGameStatus_IsValid(t *testing.T) {
	assert.True(t, DrawAgreement.IsValid())
	assert.False(t, StatusLength.IsValid())
	assert.False(t, GameStatus(-1).IsValid())
}
