package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("dataset", "Global Equity Trades")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "Global Equity Trades")
	assert.NotErrorIs(t, err, ErrInvalidInput)
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("datasetName", "cannot be empty")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "datasetName")
}
