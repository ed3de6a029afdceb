package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestErrorIsMatchesCodeAndMessage(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", ErrNotFound)
	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.False(t, errors.Is(ErrNoReviewData, ErrNotFound))
	assert.True(t, errors.Is(WithDetails(ErrTokenInvalid, "x"), ErrTokenInvalid))
}

func TestWithDetailsCopies(t *testing.T) {
	err := WithDetails(ErrPeriodBeyondData, map[string]string{"cutoff": "2025-04"})

	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, StatusBadRequest, e.StatusCode)
	assert.Equal(t, "REP_003", e.Code.Code)
	assert.NotNil(t, e.Details)
	assert.Nil(t, ErrPeriodBeyondData.(*Error).Details)

	plain := errors.New("plain")
	assert.Same(t, plain, WithDetails(plain, "x"))
}

func TestConvertMongoError(t *testing.T) {
	assert.Nil(t, ConvertMongoError(nil))
	assert.ErrorIs(t, ConvertMongoError(mongo.ErrNoDocuments), ErrNotFound)
	assert.Same(t, ErrTokenMissing, ConvertMongoError(ErrTokenMissing))

	dup := ConvertMongoError(mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000"}}})
	var e *Error
	require.ErrorAs(t, dup, &e)
	assert.Equal(t, StatusConflict, e.StatusCode)

	other := ConvertMongoError(errors.New("socket closed"))
	require.ErrorAs(t, other, &e)
	assert.Equal(t, StatusInternalServerError, e.StatusCode)
	assert.Equal(t, "socket closed", e.Message)
}
