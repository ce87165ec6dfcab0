package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/pipeline/trigger", TriggerPipeline)
	router.GET("/api/pipeline/jobs", ListJobs)
	return router
}

func postTrigger(t *testing.T, router *gin.Engine, body string) TriggerResponse {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/pipeline/trigger", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp TriggerResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	return resp
}

func TestTriggerKnownJob(t *testing.T) {
	router := newTestRouter()

	resp := postTrigger(t, router, `{"job": "elt-postgres", "environment": "staging", "triggered_by": "scheduler"}`)

	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, "elt-postgres", resp.Job)
	assert.Equal(t, "staging", resp.Environment)
	assert.Equal(t, "scheduler", resp.TriggeredBy)
	assert.Len(t, resp.StreamsSynced, 5)
	assert.Equal(t, 350, resp.RecordsProcessed)
	assert.Len(t, resp.ModelsBuilt, 11)
	assert.Equal(t, 24, resp.TestsPassed)
	assert.Equal(t, "Meltano job 'elt-postgres' completed: 5 streams, ~350 records, 11 dbt models, 24 tests passed", resp.Message)
}

func TestTriggerExtractOnlyJobOmitsModels(t *testing.T) {
	router := newTestRouter()

	resp := postTrigger(t, router, `{"job": "el-s3"}`)

	assert.Equal(t, []string{"contacts_csv", "deals_csv"}, resp.StreamsSynced)
	assert.Equal(t, 80, resp.RecordsProcessed)
	assert.Empty(t, resp.ModelsBuilt)
	assert.Zero(t, resp.TestsPassed)
	assert.NotContains(t, resp.Message, "dbt models")
}

func TestTriggerUnknownJob(t *testing.T) {
	router := newTestRouter()

	resp := postTrigger(t, router, `{"job": "el-salesforce"}`)

	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, "el-salesforce", resp.Job)
	assert.Empty(t, resp.StreamsSynced)
	assert.Zero(t, resp.RecordsProcessed)
	assert.Empty(t, resp.ModelsBuilt)
	assert.Equal(t, "Meltano job 'el-salesforce' completed: 0 streams, ~0 records", resp.Message)
}

func TestTriggerEmptyBodyUsesDefaults(t *testing.T) {
	router := newTestRouter()

	resp := postTrigger(t, router, "")

	assert.Equal(t, "elt-postgres", resp.Job)
	assert.Equal(t, "dev", resp.Environment)
	assert.Equal(t, "manual", resp.TriggeredBy)
	assert.Len(t, resp.StreamsSynced, 5)
}

func TestTriggerRejectsMalformedBody(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/pipeline/trigger", strings.NewReader(`{"job":`))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestListJobs(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/pipeline/jobs", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Jobs []string `json:"jobs"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, []string{"el-all", "el-hubspot", "el-postgres", "el-s3", "elt-all", "elt-postgres"}, body.Jobs)
}
