package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/ooda-AI-GB/gb-gdev-legal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter wires every handler against a fresh in-memory database.
// Routes are mounted without the auth middleware, which has its own tests.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := service.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	contractSvc := service.NewContractService(db)
	contractHandler := NewContractHandler(contractSvc)
	clauseHandler := NewClauseHandler(service.NewClauseService(db, contractSvc))
	complianceHandler := NewComplianceHandler(service.NewComplianceService(db))
	contactHandler := NewContactHandler(service.NewContactService(db))
	noteHandler := NewNoteHandler(service.NewNoteService(db))
	dashboardHandler := NewDashboardHandler(service.NewDashboardService(db))

	router := gin.New()
	api := router.Group("/api/v1")
	{
		api.GET("/contracts", contractHandler.List)
		api.POST("/contracts", contractHandler.Create)
		api.GET("/contracts/:id", contractHandler.Get)
		api.PUT("/contracts/:id", contractHandler.Update)
		api.DELETE("/contracts/:id", contractHandler.Delete)
		api.GET("/contracts/:id/clauses", contractHandler.Clauses)

		api.GET("/clauses", clauseHandler.List)
		api.POST("/clauses", clauseHandler.Create)
		api.GET("/clauses/:id", clauseHandler.Get)
		api.PUT("/clauses/:id", clauseHandler.Update)
		api.DELETE("/clauses/:id", clauseHandler.Delete)

		api.GET("/compliance", complianceHandler.List)
		api.POST("/compliance", complianceHandler.Create)
		api.GET("/compliance/:id", complianceHandler.Get)
		api.PUT("/compliance/:id", complianceHandler.Update)
		api.DELETE("/compliance/:id", complianceHandler.Delete)

		api.GET("/contacts", contactHandler.List)
		api.POST("/contacts", contactHandler.Create)
		api.GET("/contacts/:id", contactHandler.Get)
		api.PUT("/contacts/:id", contactHandler.Update)
		api.DELETE("/contacts/:id", contactHandler.Delete)

		api.GET("/notes", noteHandler.List)
		api.POST("/notes", noteHandler.Create)
		api.GET("/notes/:id", noteHandler.Get)
		api.PUT("/notes/:id", noteHandler.Update)
		api.DELETE("/notes/:id", noteHandler.Delete)

		api.GET("/dashboard", dashboardHandler.Get)
	}
	return router
}

// doJSON performs a request with an optional JSON body and returns the
// recorded response.
func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("Failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("Failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}
