package shellerr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mansson/poshell/internal/shellerr"
	"github.com/stretchr/testify/assert"
)

func TestCommandNotFound(t *testing.T) {
	err := shellerr.CommandNotFound("frobnicate")
	assert.Equal(t, "frobnicate: command not found", err.Error())

	var shErr *shellerr.Error
	require := errors.As(err, &shErr)
	assert.True(t, require)
	assert.Equal(t, shellerr.KindCommandNotFound, shErr.Kind)
}

func TestRedirectionOpen_UnwrapsCause(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := shellerr.RedirectionOpen("out.txt", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "out.txt")
}

func TestInterrupted_IsSentinel(t *testing.T) {
	assert.True(t, errors.Is(shellerr.Interrupted, shellerr.Interrupted))
}
