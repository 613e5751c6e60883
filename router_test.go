package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type _spyController struct {
	calls map[string]int
}

func _newSpyController() *_spyController {
	return &_spyController{calls: map[string]int{}}
}

func (s *_spyController) UploadSheetAction(c *gin.Context) { s.calls["UploadSheetAction"]++ }
func (s *_spyController) GetSheetAction(c *gin.Context)    { s.calls["GetSheetAction"]++ }
func (s *_spyController) GetCellAction(c *gin.Context)     { s.calls["GetCellAction"]++ }
func (s *_spyController) SetCellAction(c *gin.Context)     { s.calls["SetCellAction"]++ }

func TestSetupRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	expectedApiRoutes := [][3]string{
		{http.MethodPost, "/:sheet_id", "UploadSheetAction"},
		{http.MethodGet, "/:sheet_id", "GetSheetAction"},
		{http.MethodGet, "/:sheet_id/:cell_id", "GetCellAction"},
		{http.MethodPut, "/:sheet_id/:cell_id", "SetCellAction"},
	}

	for _, expectedRoute := range expectedApiRoutes {
		t.Run("Route "+expectedRoute[2], func(t *testing.T) {
			controller := _newSpyController()
			router := SetupRouter(controller)

			w := httptest.NewRecorder()
			path := "/api/" + ApiVersion + expectedRoute[1]
			req, _ := http.NewRequest(expectedRoute[0], path, nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, 1, controller.calls[expectedRoute[2]])
		})
	}

	t.Run("healthcheck", func(t *testing.T) {
		router := SetupRouter(_newSpyController())

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/healthcheck", nil)

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "health", w.Body.String())
	})
}
