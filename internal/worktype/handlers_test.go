package worktype_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bizapi/internal/apperr"
	"bizapi/internal/http/httperr"
	"bizapi/internal/worktype"
	"bizapi/internal/worktype/mocks"
)

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: httperr.ErrorHandler(zap.NewNop()),
	})
}

func TestListWorkTypes(t *testing.T) {
	mockRepo := new(mocks.MockRepository)
	app := newTestApp()
	app.Get("/worktypes", worktype.ListWorkTypes(mockRepo))

	t.Run("success", func(t *testing.T) {
		mockRepo.On("List", mock.Anything).
			Return([]worktype.WorkType{{ID: uuid.New(), Title: "Incident"}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/worktypes", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var got []worktype.WorkType
		json.NewDecoder(resp.Body).Decode(&got)
		require.Len(t, got, 1)
		assert.Equal(t, "Incident", got[0].Title)
		mockRepo.AssertExpectations(t)
	})

	t.Run("storage failure maps to 500", func(t *testing.T) {
		mockRepo.On("List", mock.Anything).
			Return(nil, apperr.Storage("listing work types failed", errors.New("down"))).Once()

		req := httptest.NewRequest(http.MethodGet, "/worktypes", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockRepo.AssertExpectations(t)
	})
}

func TestCreateWorkType(t *testing.T) {
	mockRepo := new(mocks.MockRepository)
	app := newTestApp()
	app.Post("/worktypes", worktype.CreateWorkType(mockRepo))

	t.Run("success", func(t *testing.T) {
		created := &worktype.WorkType{ID: uuid.New(), Title: "Incident"}
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(created, nil).Once()

		body := `{"title":"Incident","attributes":[{"name":"Reading","data_type":"numeric","is_required":true}]}`
		req := httptest.NewRequest(http.MethodPost, "/worktypes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown data type token is a 400, not a silent default", func(t *testing.T) {
		body := `{"title":"Incident","attributes":[{"name":"Reading","data_type":"integer"}]}`
		req := httptest.NewRequest(http.MethodPost, "/worktypes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var payload httperr.Payload
		json.NewDecoder(resp.Body).Decode(&payload)
		assert.Contains(t, payload.Error, "unknown data type")
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/worktypes", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
