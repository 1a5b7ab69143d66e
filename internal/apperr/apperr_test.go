package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("gone")))
	assert.Equal(t, KindValidation, KindOf(Validation("bad")))
	assert.Equal(t, KindStorage, KindOf(Storage("down", errors.New("conn refused"))))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))

	// Wrapped errors still classify.
	wrapped := fmt.Errorf("handler: %w", NotFound("gone"))
	assert.Equal(t, KindNotFound, KindOf(wrapped))
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusCode(NotFound("gone")))
	assert.Equal(t, http.StatusBadRequest, StatusCode(Validation("bad")))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(Storage("down", nil)))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("plain")))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(NotImplemented("export")))
}

func TestClientMessage(t *testing.T) {
	assert.Equal(t, "gone", ClientMessage(NotFound("gone")))
	assert.Equal(t, "bad", ClientMessage(Validation("bad")))

	// Causes never leak to clients.
	storage := Storage("query failed", errors.New("SQLSTATE 08006: conn refused"))
	assert.Equal(t, "storage unavailable", ClientMessage(storage))
	assert.NotContains(t, ClientMessage(storage), "SQLSTATE")

	assert.Equal(t, "internal server error", ClientMessage(errors.New("plain")))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("conn refused")
	err := Storage("down", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "conn refused")
}
