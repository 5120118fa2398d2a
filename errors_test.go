package chesscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFenErrorMessage(t *testing.T) {
	err := newFenError(5, false)
	assert.Equal(t, 5, err.Code)
	assert.Contains(t, err.Error(), "each rank must account for exactly 8 squares")
}

func TestFenErrorOnlyPositionVariant(t *testing.T) {
	err := newFenError(1, true)
	assert.Equal(t, fenErrorMessageOnlyPosition1, err.Message)
}

func TestMoveErrorFormatting(t *testing.T) {
	err := newMoveError("no legal move from %s to %s", "e2", "e5")
	assert.Equal(t, "chesscore: illegal move: no legal move from e2 to e5", err.Error())
}
