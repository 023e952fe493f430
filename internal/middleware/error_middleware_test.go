package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asmit/placenet/internal/app/models/dto"
	"github.com/asmit/placenet/internal/pkg/apperrors"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, *dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, err)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder, &body
}

func TestHandleAPIError(t *testing.T) {
	t.Run("blocked delete answers bad request", func(t *testing.T) {
		recorder, body := handleError(t, apperrors.NewResourceInUseError("Cannot delete department, it is in use"))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, dto.ErrorCodeResourceInUse, body.Error.Code)
		assert.Equal(t, "Cannot delete department, it is in use", body.Error.Message)
	})

	t.Run("duplicate answers conflict", func(t *testing.T) {
		recorder, body := handleError(t, apperrors.NewConflictError("Already applied to this drive"))

		assert.Equal(t, http.StatusConflict, recorder.Code)
		assert.Equal(t, dto.ErrorCodeResourceAlreadyExists, body.Error.Code)
	})

	t.Run("missing resource answers not found", func(t *testing.T) {
		recorder, _ := handleError(t, apperrors.NewResourceNotFoundError("Drive not found"))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("unknown errors answer internal server error", func(t *testing.T) {
		recorder, body := handleError(t, assert.AnError)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Equal(t, dto.ErrorCodeInternalServer, body.Error.Code)
		assert.Equal(t, "Internal server error", body.Error.Message)
	})
}
