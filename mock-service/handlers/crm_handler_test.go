package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supervisionlab-backend/mock-service/middleware"
	"supervisionlab-backend/shared/synth"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

type listResponse struct {
	Results []synth.CRMObject `json:"results"`
	Paging  *struct {
		Next struct {
			After string `json:"after"`
			Link  string `json:"link"`
		} `json:"next"`
	} `json:"paging"`
}

type errorResponse struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId"`
	Category      string `json:"category"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	snapshot := synth.NewAt(synth.DefaultSeed, testNow).GenerateAll()
	crmHandler := NewCRMHandler(snapshot)

	router := gin.New()
	authorized := router.Group("/", middleware.APIKeyAuthMiddleware())
	authorized.GET("/crm/v3/objects/:objectType", crmHandler.ListObjects)
	authorized.GET("/crm/v3/objects/:objectType/:objectID", crmHandler.GetObject)
	authorized.POST("/crm/v3/objects/:objectType/search", crmHandler.SearchObjects)
	authorized.GET("/crm/v3/schemas", crmHandler.ListSchemas)
	authorized.GET("/crm/v3/schemas/:objectType", crmHandler.GetSchema)
	authorized.GET("/contacts/v1/lists/all/contacts/all", crmHandler.LegacyContacts)
	authorized.GET("/deals/v1/deal/paged", crmHandler.LegacyDeals)
	authorized.GET("/companies/v2/companies/paged", crmHandler.LegacyCompanies)
	router.NoRoute(middleware.APIKeyAuthMiddleware(), crmHandler.CatchAll)

	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, authorized bool) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if authorized {
		req.Header.Set("Authorization", "Bearer pat-na1-demo-token")
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestListContactsPagination(t *testing.T) {
	router := newTestRouter(t)

	// First page of a 50-record collection.
	recorder := doRequest(t, router, http.MethodGet, "/crm/v3/objects/contacts?limit=10", true)
	require.Equal(t, http.StatusOK, recorder.Code)

	var page listResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &page))
	assert.Len(t, page.Results, 10)
	require.NotNil(t, page.Paging)
	assert.Equal(t, "10", page.Paging.Next.After)

	// Final page: no paging key.
	recorder = doRequest(t, router, http.MethodGet, "/crm/v3/objects/contacts?limit=10&after=40", true)
	require.Equal(t, http.StatusOK, recorder.Code)

	page = listResponse{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &page))
	assert.Len(t, page.Results, 10)
	assert.Nil(t, page.Paging)
}

func TestListContactsWalksWholeCollection(t *testing.T) {
	router := newTestRouter(t)

	seen := map[string]bool{}
	after := ""
	for {
		path := "/crm/v3/objects/contacts?limit=20"
		if after != "" {
			path += "&after=" + after
		}
		recorder := doRequest(t, router, http.MethodGet, path, true)
		require.Equal(t, http.StatusOK, recorder.Code)

		var page listResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &page))
		for _, object := range page.Results {
			assert.False(t, seen[object.ID], "contact %s served twice", object.ID)
			seen[object.ID] = true
		}
		if page.Paging == nil {
			break
		}
		after = page.Paging.Next.After
	}

	assert.Len(t, seen, 50)
}

func TestListObjectsRequiresAuth(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/crm/v3/objects/contacts", false)
	require.Equal(t, http.StatusUnauthorized, recorder.Code)

	var body errorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, "INVALID_AUTHENTICATION", body.Category)
	assert.NotEmpty(t, body.CorrelationID)
}

func TestAPIKeyQueryParamAccepted(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/crm/v3/objects/deals?hapikey=demo-key", false)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestGetObject(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/crm/v3/objects/contacts/1", true)
	require.Equal(t, http.StatusOK, recorder.Code)

	var object synth.CRMObject
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &object))
	assert.Equal(t, "1", object.ID)
	assert.NotEmpty(t, object.Properties["email"])
}

func TestGetObjectNotFound(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "unknown id", path: "/crm/v3/objects/contacts/9999"},
		{name: "unknown object type", path: "/crm/v3/objects/tickets/1"},
	}

	router := newTestRouter(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := doRequest(t, router, http.MethodGet, tt.path, true)
			require.Equal(t, http.StatusNotFound, recorder.Code)

			var body errorResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, "error", body.Status)
			assert.Equal(t, "OBJECT_NOT_FOUND", body.Category)
		})
	}
}

func TestInvalidPaginationParams(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/crm/v3/objects/contacts?after=abc", true)
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var body errorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_ERROR", body.Category)
}

func TestSearchObjects(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/crm/v3/objects/deals/search", true)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Total   int               `json:"total"`
		Results []synth.CRMObject `json:"results"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, 30, body.Total)
	assert.Len(t, body.Results, 30)
}

func TestSchemas(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/crm/v3/schemas", true)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Results []struct {
			ID         string `json:"id"`
			Properties []struct {
				Name string `json:"name"`
				Type string `json:"type"`
			} `json:"properties"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.Results, 3)
	assert.Equal(t, "contacts", body.Results[0].ID)
	assert.Len(t, body.Results[0].Properties, len(synth.ContactPropertyNames))

	recorder = doRequest(t, router, http.MethodGet, "/crm/v3/schemas/tickets", true)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestLegacyAliases(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/contacts/v1/lists/all/contacts/all", true)
	require.Equal(t, http.StatusOK, recorder.Code)

	var contactsBody map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &contactsBody))
	assert.Contains(t, contactsBody, "contacts")
	assert.Contains(t, contactsBody, "has-more")
	assert.Contains(t, contactsBody, "vid-offset")

	recorder = doRequest(t, router, http.MethodGet, "/deals/v1/deal/paged", true)
	require.Equal(t, http.StatusOK, recorder.Code)

	var dealsBody map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &dealsBody))
	assert.Contains(t, dealsBody, "deals")
	assert.Contains(t, dealsBody, "hasMore")

	recorder = doRequest(t, router, http.MethodGet, "/companies/v2/companies/paged", true)
	require.Equal(t, http.StatusOK, recorder.Code)
}

func TestCatchAllReturnsEmptyEnvelope(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/crm/v4/objects/unknown/thing", true)
	require.Equal(t, http.StatusOK, recorder.Code)

	var page listResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &page))
	assert.NotNil(t, page.Results)
	assert.Empty(t, page.Results)
	assert.Nil(t, page.Paging)
}
