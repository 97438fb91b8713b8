package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"nestegg/internal/allocation"
	apperrors "nestegg/internal/errors"
	"nestegg/internal/services"
	"nestegg/internal/validator"
)

// --- shared test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

type mockAuditService struct{}

func (m *mockAuditService) Log(_ uint, _, _ string, _ uint, _ string, _ map[string]interface{}) {}

func injectUserID(uid uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", uid)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

// --- mock allocation service ---

type mockAllocationService struct {
	getAllocationFn func(userID uint) (*allocation.Result, error)
}

func (m *mockAllocationService) GetAllocation(userID uint) (*allocation.Result, error) {
	if m.getAllocationFn != nil {
		return m.getAllocationFn(userID)
	}
	return &allocation.Result{}, nil
}

var _ services.AllocationServicer = (*mockAllocationService)(nil)
var _ services.AuditServicer = (*mockAuditService)(nil)

func setupAllocationRouter(handler *AllocationHandler) *gin.Engine {
	r := gin.New()
	r.GET("/allocation", injectUserID(1), handler.GetAllocation)
	return r
}

// --- tests ---

func TestAllocationHandler_GetAllocation(t *testing.T) {
	t.Run("flattens hierarchy keys", func(t *testing.T) {
		svc := &mockAllocationService{
			getAllocationFn: func(_ uint) (*allocation.Result, error) {
				return &allocation.Result{
					TotalValue: 1000000,
					ByClass: map[allocation.AssetClass]allocation.Entry{
						allocation.ClassEquity: {CurrentValue: 1000000, CurrentPercent: 100, Action: allocation.ActionHold},
					},
					BySubCategory: map[allocation.SubKey]allocation.Entry{
						{Class: allocation.ClassEquity, SubCategory: "etf"}: {CurrentValue: 1000000},
					},
					BySpecific: map[allocation.SpecificKey]allocation.Entry{
						{Class: allocation.ClassEquity, SubCategory: "etf", SpecificAsset: "VWCE"}: {Action: allocation.ActionBuy},
					},
				}, nil
			},
		}
		handler := NewAllocationHandler(svc)
		r := setupAllocationRouter(handler)

		rec := doRequest(r, "GET", "/allocation", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		result := parseJSON(t, rec)
		byClass := result["by_class"].(map[string]interface{})
		if _, ok := byClass["equity"]; !ok {
			t.Errorf("expected by_class key 'equity', got %v", byClass)
		}
		bySub := result["by_sub_category"].(map[string]interface{})
		if _, ok := bySub["equity:etf"]; !ok {
			t.Errorf("expected by_sub_category key 'equity:etf', got %v", bySub)
		}
		bySpecific := result["by_specific"].(map[string]interface{})
		if _, ok := bySpecific["equity:etf:VWCE"]; !ok {
			t.Errorf("expected by_specific key 'equity:etf:VWCE', got %v", bySpecific)
		}
	})

	t.Run("surfaces invalid holding data", func(t *testing.T) {
		svc := &mockAllocationService{
			getAllocationFn: func(_ uint) (*allocation.Result, error) {
				return nil, apperrors.ErrInvalidHoldingData
			},
		}
		handler := NewAllocationHandler(svc)
		r := setupAllocationRouter(handler)

		rec := doRequest(r, "GET", "/allocation", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_HOLDING_DATA")
	})

	t.Run("requires authentication", func(t *testing.T) {
		handler := NewAllocationHandler(&mockAllocationService{})
		r := gin.New()
		r.GET("/allocation", handler.GetAllocation)

		rec := doRequest(r, "GET", "/allocation", "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}
