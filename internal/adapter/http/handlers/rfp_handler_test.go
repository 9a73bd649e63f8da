package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"appraisal_desk/internal/adapter/http/handlers/mocks"
	"appraisal_desk/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestRFPHandler_SendRFP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("should return 400 for invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockRFP := mocks.NewMockIRFPUseCase(ctrl)

		handler := NewRFPHandler(mockRFP)
		r := gin.New()
		r.POST("/v1/orders/:order_id/rfp", handler.SendRFP)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ORD-2024-00042/rfp", strings.NewReader("{broken"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", w.Code)
		}
	})

	t.Run("should treat an empty body as auto-match", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockRFP := mocks.NewMockIRFPUseCase(ctrl)
		mockRFP.EXPECT().
			SendRFP(gomock.Any(), usecase.RFPParams{OrderID: "ORD-2024-00042"}).
			Return(usecase.RFPResult{
				OrderID:   "ORD-2024-00042",
				SentCount: 3,
				Deadline:  "March 07, 2024 at 10:30 AM",
			}, nil)

		handler := NewRFPHandler(mockRFP)
		r := gin.New()
		r.POST("/v1/orders/:order_id/rfp", handler.SendRFP)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ORD-2024-00042/rfp", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}
		var body usecase.RFPResult
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if body.SentCount != 3 {
			t.Errorf("expected sent_count 3, got %d", body.SentCount)
		}
	})

	t.Run("should forward explicit appraiser ids and dry run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockRFP := mocks.NewMockIRFPUseCase(ctrl)
		mockRFP.EXPECT().
			SendRFP(gomock.Any(), usecase.RFPParams{
				OrderID:      "ORD-2024-00042",
				AppraiserIDs: []string{"APP-001", "APP-002"},
				DryRun:       true,
			}).
			Return(usecase.RFPResult{OrderID: "ORD-2024-00042", DryRun: true}, nil)

		handler := NewRFPHandler(mockRFP)
		r := gin.New()
		r.POST("/v1/orders/:order_id/rfp", handler.SendRFP)

		payload := `{"appraiser_ids": ["APP-001", "APP-002"], "dry_run": true}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ORD-2024-00042/rfp", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("should return 422 when there is nobody to send to", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockRFP := mocks.NewMockIRFPUseCase(ctrl)
		mockRFP.EXPECT().
			SendRFP(gomock.Any(), gomock.Any()).
			Return(usecase.RFPResult{}, usecase.ErrNoRFPTargets)

		handler := NewRFPHandler(mockRFP)
		r := gin.New()
		r.POST("/v1/orders/:order_id/rfp", handler.SendRFP)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ORD-2024-00042/rfp", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Errorf("expected status 422, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if body["code"] != "NO_RFP_TARGETS" {
			t.Errorf("expected code NO_RFP_TARGETS, got %v", body["code"])
		}
	})

	t.Run("should return 404 when the order does not exist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockRFP := mocks.NewMockIRFPUseCase(ctrl)
		mockRFP.EXPECT().
			SendRFP(gomock.Any(), gomock.Any()).
			Return(usecase.RFPResult{}, usecase.ErrOrderNotFound)

		handler := NewRFPHandler(mockRFP)
		r := gin.New()
		r.POST("/v1/orders/:order_id/rfp", handler.SendRFP)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ORD-0000-00000/rfp", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", w.Code)
		}
	})
}
