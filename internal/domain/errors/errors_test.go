package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Constructors(t *testing.T) {
	err := NewAppError(http.StatusBadRequest, CodeBadRequest, "bad", ErrBadRequest)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, CodeBadRequest, err.Code)
	assert.Equal(t, "bad", err.Message)
	assert.Equal(t, ErrBadRequest.Error(), err.Error())

	notFound := NotFound("missing")
	assert.Equal(t, http.StatusNotFound, notFound.Status)
	assert.Equal(t, CodeNotFound, notFound.Code)

	conflict := Conflict("exists")
	assert.Equal(t, http.StatusConflict, conflict.Status)
	assert.Equal(t, CodeConflict, conflict.Code)

	exists := AlreadyExists("gstin taken")
	assert.Equal(t, http.StatusBadRequest, exists.Status)
	assert.ErrorIs(t, exists, ErrAlreadyExists)

	internal := InternalError(stderrors.New("db down"))
	assert.Equal(t, http.StatusInternalServerError, internal.Status)
	assert.Equal(t, CodeInternalError, internal.Code)
	assert.Equal(t, "internal server error", internal.Message)

	custom := NewError("custom", ErrForbidden)
	assert.Equal(t, ErrForbidden.Error(), custom.Error())

	badReq := BadRequest("bad request")
	assert.Equal(t, http.StatusBadRequest, badReq.Status)
	assert.Equal(t, CodeInvalidInput, badReq.Code)

	unauth := Unauthorized("unauthorized")
	assert.Equal(t, http.StatusUnauthorized, unauth.Status)
	assert.Equal(t, CodeUnauthorized, unauth.Code)

	forbidden := Forbidden("forbidden")
	assert.Equal(t, http.StatusForbidden, forbidden.Status)
	assert.Equal(t, CodeForbidden, forbidden.Code)

	internalMsg := InternalServerError("boom")
	assert.Equal(t, http.StatusInternalServerError, internalMsg.Status)
	assert.Equal(t, "boom", internalMsg.Message)
	assert.Equal(t, "boom", internalMsg.Error())
}

func TestFromError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("get order: %w", ErrNotFound), http.StatusNotFound, CodeNotFound},
		{fmt.Errorf("create outlet: %w", ErrAlreadyExists), http.StatusBadRequest, CodeAlreadyExists},
		{ErrConstraintViolation, http.StatusBadRequest, CodeConstraintViolation},
		{ErrInvalidTransition, http.StatusBadRequest, CodeInvalidTransition},
		{ErrInvalidCredentials, http.StatusUnauthorized, CodeInvalidCredentials},
		{ErrForbidden, http.StatusForbidden, CodeForbidden},
		{stderrors.New("connection reset"), http.StatusInternalServerError, CodeInternalError},
	}
	for _, tc := range cases {
		got := FromError(tc.err)
		assert.Equal(t, tc.status, got.Status, tc.err.Error())
		assert.Equal(t, tc.code, got.Code, tc.err.Error())
	}

	assert.Nil(t, FromError(nil))

	appErr := Forbidden("not your order")
	assert.Same(t, appErr, FromError(fmt.Errorf("wrapped: %w", appErr)))
}

func TestFromError_InternalHidesDetail(t *testing.T) {
	got := FromError(stderrors.New("pq: password authentication failed"))
	assert.Equal(t, "internal server error", got.Message)
	assert.NotContains(t, got.Message, "pq")
}
