package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "buyback-detector/internal/errors"
)

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitMissingAPIKey, exitCode(apperrors.ErrMissingAPIKey))
	assert.Equal(t, ExitMissingAPIKey, exitCode(fmt.Errorf("startup: %w", apperrors.ErrMissingAPIKey)))
	assert.Equal(t, ExitNotifyFailure, exitCode(fmt.Errorf("%w: smtp down", apperrors.ErrNotifySend)))
	assert.Equal(t, ExitNotifyFailure, exitCode(errors.New("anything else")))
}
