package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blueprint-ai-api/internal/application/design"
	"blueprint-ai-api/internal/infrastructure/persistence/memory"
)

type fixedGateway struct {
	response string
}

func (g *fixedGateway) Invoke(_ context.Context, _ string) string {
	return g.response
}

func newTestRouter(response string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := design.NewService(memory.NewSessionStore(), design.NewEngine(&fixedGateway{response: response}))
	h := NewBlueprintHandler(svc)

	r := gin.New()
	v1 := r.Group("/v1")
	v1.GET("/building-types", h.ListBuildingTypes)
	blueprints := v1.Group("/blueprints")
	blueprints.POST("", h.Generate)
	blueprints.POST("/:sid/iterate", h.Iterate)
	blueprints.POST("/:sid/optimize", h.Optimize)
	blueprints.PUT("/:sid/floor", h.UpdateFloor)
	blueprints.GET("/:sid/floor", h.CurrentFloor)
	blueprints.GET("/:sid/history", h.History)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func generateRequestBody() map[string]any {
	return map[string]any{
		"building_type": "residential_house",
		"total_area":    150.0,
		"floors":        2,
		"occupancy":     "family",
	}
}

// createSession 走生成接口拿到会话 ID
func createSession(t *testing.T, r *gin.Engine) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/v1/blueprints", generateRequestBody())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			SessionID string `json:"session_id"`
			Version   int    `json:"version"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.SessionID)
	require.Equal(t, 1, resp.Data.Version)
	return resp.Data.SessionID
}

func TestListBuildingTypes(t *testing.T) {
	r := newTestRouter("garbage")

	w := doJSON(t, r, http.MethodGet, "/v1/building-types", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			BuildingTypes []string `json:"building_types"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Data.BuildingTypes, "residential_house")
	assert.Contains(t, resp.Data.BuildingTypes, "hospital")
	assert.Len(t, resp.Data.BuildingTypes, 15)
}

func TestGenerateBlueprint(t *testing.T) {
	r := newTestRouter("garbage")
	sid := createSession(t, r)
	assert.NotEmpty(t, sid)
}

func TestGenerateRejectsInvalidBuildingType(t *testing.T) {
	r := newTestRouter("garbage")

	body := generateRequestBody()
	body["building_type"] = "observatory"
	w := doJSON(t, r, http.MethodPost, "/v1/blueprints", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateRejectsMissingFields(t *testing.T) {
	r := newTestRouter("garbage")

	w := doJSON(t, r, http.MethodPost, "/v1/blueprints", map[string]any{"building_type": "hotel"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIterateBlueprint(t *testing.T) {
	r := newTestRouter("garbage")
	sid := createSession(t, r)

	w := doJSON(t, r, http.MethodPost, "/v1/blueprints/"+sid+"/iterate", map[string]any{
		"feedback": "more natural light",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			Version int    `json:"version"`
			Message string `json:"message"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Data.Version)
	assert.Equal(t, "Blueprint updated successfully based on feedback", resp.Data.Message)
}

func TestIterateUnknownSessionReturns404(t *testing.T) {
	r := newTestRouter("garbage")

	w := doJSON(t, r, http.MethodPost, "/v1/blueprints/no-such/iterate", map[string]any{
		"feedback": "anything",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestIterateRequiresFeedback(t *testing.T) {
	r := newTestRouter("garbage")
	sid := createSession(t, r)

	w := doJSON(t, r, http.MethodPost, "/v1/blueprints/"+sid+"/iterate", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOptimizeBlueprint(t *testing.T) {
	r := newTestRouter("garbage")
	sid := createSession(t, r)

	w := doJSON(t, r, http.MethodPost, "/v1/blueprints/"+sid+"/optimize", map[string]any{
		"goals": []string{"energy efficiency"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			Version int `json:"version"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Data.Version)
}

func TestOptimizeRequiresGoals(t *testing.T) {
	r := newTestRouter("garbage")
	sid := createSession(t, r)

	w := doJSON(t, r, http.MethodPost, "/v1/blueprints/"+sid+"/optimize", map[string]any{
		"goals": []string{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateAndGetFloor(t *testing.T) {
	// 固定输出退化为兜底蓝图，兜底有两层
	r := newTestRouter("garbage")
	sid := createSession(t, r)

	w := doJSON(t, r, http.MethodPut, "/v1/blueprints/"+sid+"/floor", map[string]any{
		"floor_number": 2,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/v1/blueprints/"+sid+"/floor", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			CurrentFloor int `json:"current_floor"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Data.CurrentFloor)
}

func TestUpdateFloorRejectsMissingFloor(t *testing.T) {
	r := newTestRouter("garbage")
	sid := createSession(t, r)

	w := doJSON(t, r, http.MethodPut, "/v1/blueprints/"+sid+"/floor", map[string]any{
		"floor_number": 7,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHistory(t *testing.T) {
	r := newTestRouter("garbage")
	sid := createSession(t, r)

	doJSON(t, r, http.MethodPost, "/v1/blueprints/"+sid+"/iterate", map[string]any{
		"feedback": "bigger kitchen",
	})

	w := doJSON(t, r, http.MethodGet, "/v1/blueprints/"+sid+"/history", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			SessionID string `json:"session_id"`
			Versions  []struct {
				Version   int    `json:"version"`
				Feedback  string `json:"feedback"`
				Blueprint *struct {
					FloorPlans []struct {
						FloorNumber int `json:"floor_number"`
					} `json:"floor_plans"`
				} `json:"blueprint"`
			} `json:"versions"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, sid, resp.Data.SessionID)
	require.Len(t, resp.Data.Versions, 2)
	assert.Equal(t, "Initial generation", resp.Data.Versions[0].Feedback)
	assert.Equal(t, "bigger kitchen", resp.Data.Versions[1].Feedback)

	// 每个版本都带当时的完整蓝图快照
	for i, v := range resp.Data.Versions {
		require.NotNil(t, v.Blueprint, "version %d must carry its blueprint snapshot", i+1)
		assert.Len(t, v.Blueprint.FloorPlans, 2)
		assert.Equal(t, 1, v.Blueprint.FloorPlans[0].FloorNumber)
	}
}

func TestHistoryUnknownSessionReturns404(t *testing.T) {
	r := newTestRouter("garbage")

	w := doJSON(t, r, http.MethodGet, "/v1/blueprints/no-such/history", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
