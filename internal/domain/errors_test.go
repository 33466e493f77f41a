package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	assert.Equal(t, "metadata_not_found", Code(ErrMetadataNotFound))
	assert.Equal(t, "retire_reason_required", Code(fmt.Errorf("retire: %w", ErrRetireReasonRequired)))
	assert.Equal(t, "", Code(errors.New("boom")))
	assert.Equal(t, "", Code(nil))
}

func TestWrappedDomainErrorsMatch(t *testing.T) {
	err := fmt.Errorf("find metadata: %w", ErrMetadataNotFound)
	assert.ErrorIs(t, err, ErrMetadataNotFound)
	assert.NotErrorIs(t, err, ErrUnknownKind)
}
