package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"oficina_os/internal/adapter/http/handlers/mocks"
	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestMaintenanceHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaintenanceUseCase(ctrl)
		h := NewMaintenanceHandler(uc)

		r := gin.New()
		r.POST("/v1/maintenances", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/maintenances", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("non-positive value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaintenanceUseCase(ctrl)
		h := NewMaintenanceHandler(uc)

		r := gin.New()
		r.POST("/v1/maintenances", h.Create)

		body := `{"client_id":"c-1","service_title":"revisão","description":"revisão geral","value":-10}`
		req := httptest.NewRequest(http.MethodPost, "/v1/maintenances", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("negative cost entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaintenanceUseCase(ctrl)
		h := NewMaintenanceHandler(uc)

		r := gin.New()
		r.POST("/v1/maintenances", h.Create)

		body := `{"client_id":"c-1","service_title":"revisão","description":"revisão geral","value":100,"costs":[{"name":"peça","value":-5}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/maintenances", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("client not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaintenanceUseCase(ctrl)
		h := NewMaintenanceHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.MaintenanceOrder{}, usecase.ErrClientNotFound)

		r := gin.New()
		r.POST("/v1/maintenances", h.Create)

		body := `{"client_id":"ghost","service_title":"revisão","description":"revisão geral","value":100}`
		req := httptest.NewRequest(http.MethodPost, "/v1/maintenances", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaintenanceUseCase(ctrl)
		h := NewMaintenanceHandler(uc)

		step := entities.ReminderStepM4
		uc.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(usecase.CreateMaintenanceCommand{})).DoAndReturn(
			func(_ any, cmd usecase.CreateMaintenanceCommand) (entities.MaintenanceOrder, error) {
				if cmd.ClientID != "c-1" || !cmd.Value.Equal(decimal.NewFromFloat(450.90)) {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return entities.MaintenanceOrder{
					ID: "os-1", ClientID: cmd.ClientID,
					ServiceTitle: cmd.ServiceTitle, Description: cmd.Description,
					Value: cmd.Value, Status: entities.MaintenanceStatusOpen,
					NextReminderStep: &step,
				}, nil
			},
		)

		r := gin.New()
		r.POST("/v1/maintenances", h.Create)

		body := `{"client_id":"c-1","service_title":"revisão","description":"revisão geral","value":450.90}`
		req := httptest.NewRequest(http.MethodPost, "/v1/maintenances", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if res["id"] != "os-1" || res["status"] != "OPEN" || res["value"] != 450.90 {
			t.Fatalf("unexpected response: %v", res)
		}
		if res["next_reminder_step"] != "M4" {
			t.Fatalf("expected seeded reminder, got %v", res["next_reminder_step"])
		}
	})
}

func TestMaintenanceHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaintenanceUseCase(ctrl)
		h := NewMaintenanceHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "os-404").Return(entities.MaintenanceOrder{}, usecase.ErrMaintenanceNotFound)

		r := gin.New()
		r.GET("/v1/maintenances/:id", h.GetByID)

		req := httptest.NewRequest(http.MethodGet, "/v1/maintenances/os-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaintenanceUseCase(ctrl)
		h := NewMaintenanceHandler(uc)

		flat := decimal.NewFromInt(40)
		uc.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.MaintenanceOrder{
			ID: "os-1", Value: decimal.NewFromInt(100), InternalCost: &flat,
			Status: entities.MaintenanceStatusOpen,
		}, nil)

		r := gin.New()
		r.GET("/v1/maintenances/:id", h.GetByID)

		req := httptest.NewRequest(http.MethodGet, "/v1/maintenances/os-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if res["total_cost"] != 40.0 {
			t.Fatalf("expected total_cost 40, got %v", res["total_cost"])
		}
	})
}

func TestMaintenanceHandler_Complete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success with delivery date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaintenanceUseCase(ctrl)
		h := NewMaintenanceHandler(uc)

		wantDelivery := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
		next := time.Date(2024, time.October, 15, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().Complete(gomock.Any(), "os-1", gomock.Any(), nil).DoAndReturn(
			func(_ any, id string, deliveryDate, _ *time.Time) (entities.MaintenanceOrder, error) {
				if deliveryDate == nil || !deliveryDate.Equal(wantDelivery) {
					t.Fatalf("expected delivery %v, got %v", wantDelivery, deliveryDate)
				}
				return entities.MaintenanceOrder{
					ID: id, Status: entities.MaintenanceStatusCompleted,
					DeliveryDate: &wantDelivery, NextMaintenanceDate: &next,
				}, nil
			},
		)

		r := gin.New()
		r.PATCH("/v1/maintenances/:id/complete", h.Complete)

		req := httptest.NewRequest(http.MethodPatch, "/v1/maintenances/os-1/complete", bytes.NewBufferString(`{"delivery_date":"2024-06-15"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if res["status"] != "COMPLETED" {
			t.Fatalf("expected COMPLETED, got %v", res["status"])
		}
	})

	t.Run("empty body completes with defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaintenanceUseCase(ctrl)
		h := NewMaintenanceHandler(uc)

		uc.EXPECT().Complete(gomock.Any(), "os-1", nil, nil).
			Return(entities.MaintenanceOrder{ID: "os-1", Status: entities.MaintenanceStatusCompleted}, nil)

		r := gin.New()
		r.PATCH("/v1/maintenances/:id/complete", h.Complete)

		req := httptest.NewRequest(http.MethodPatch, "/v1/maintenances/os-1/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("already closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaintenanceUseCase(ctrl)
		h := NewMaintenanceHandler(uc)

		uc.EXPECT().Complete(gomock.Any(), "os-1", nil, nil).
			Return(entities.MaintenanceOrder{}, usecase.ErrOrderTerminal)

		r := gin.New()
		r.PATCH("/v1/maintenances/:id/complete", h.Complete)

		req := httptest.NewRequest(http.MethodPatch, "/v1/maintenances/os-1/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("concurrent transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaintenanceUseCase(ctrl)
		h := NewMaintenanceHandler(uc)

		uc.EXPECT().Complete(gomock.Any(), "os-1", nil, nil).
			Return(entities.MaintenanceOrder{}, usecase.ErrTransitionConflict)

		r := gin.New()
		r.PATCH("/v1/maintenances/:id/complete", h.Complete)

		req := httptest.NewRequest(http.MethodPatch, "/v1/maintenances/os-1/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestMaintenanceHandler_Cancel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("cancel success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaintenanceUseCase(ctrl)
		h := NewMaintenanceHandler(uc)

		uc.EXPECT().Cancel(gomock.Any(), "os-1").
			Return(entities.MaintenanceOrder{ID: "os-1", Status: entities.MaintenanceStatusCancelled}, nil)

		r := gin.New()
		r.PATCH("/v1/maintenances/:id/cancel", h.Cancel)

		req := httptest.NewRequest(http.MethodPatch, "/v1/maintenances/os-1/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("already closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaintenanceUseCase(ctrl)
		h := NewMaintenanceHandler(uc)

		uc.EXPECT().Cancel(gomock.Any(), "os-1").
			Return(entities.MaintenanceOrder{}, usecase.ErrOrderTerminal)

		r := gin.New()
		r.PATCH("/v1/maintenances/:id/cancel", h.Cancel)

		req := httptest.NewRequest(http.MethodPatch, "/v1/maintenances/os-1/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestMaintenanceHandler_AdvanceReminder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIMaintenanceUseCase(ctrl)
	h := NewMaintenanceHandler(uc)

	step := entities.ReminderStepM6
	uc.EXPECT().AdvanceReminder(gomock.Any(), "os-1").
		Return(entities.MaintenanceOrder{ID: "os-1", NextReminderStep: &step}, nil)

	r := gin.New()
	r.PATCH("/v1/maintenances/:id/reminder", h.AdvanceReminder)

	req := httptest.NewRequest(http.MethodPatch, "/v1/maintenances/os-1/reminder", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if res["next_reminder_step"] != "M6" {
		t.Fatalf("expected M6, got %v", res["next_reminder_step"])
	}
}

func TestMaintenanceHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIMaintenanceUseCase(ctrl)
	h := NewMaintenanceHandler(uc)

	uc.EXPECT().List(gomock.Any(), "revisão").Return([]usecase.MaintenanceWithClient{
		{
			MaintenanceOrder: entities.MaintenanceOrder{ID: "os-1", ClientID: "c-1", Value: decimal.NewFromInt(100)},
			Client:           entities.Client{ID: "c-1", Name: "João"},
		},
	}, nil)

	r := gin.New()
	r.GET("/v1/maintenances", h.List)

	req := httptest.NewRequest(http.MethodGet, "/v1/maintenances?query=revis%C3%A3o", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if len(res) != 1 {
		t.Fatalf("expected one item, got %d", len(res))
	}
	client, _ := res[0]["client"].(map[string]any)
	if client == nil || client["name"] != "João" {
		t.Fatalf("expected joined client, got %v", res[0]["client"])
	}
}

func TestMaintenanceHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaintenanceUseCase(ctrl)
		h := NewMaintenanceHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "os-404").Return(usecase.ErrMaintenanceNotFound)

		r := gin.New()
		r.DELETE("/v1/maintenances/:id", h.Delete)

		req := httptest.NewRequest(http.MethodDelete, "/v1/maintenances/os-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaintenanceUseCase(ctrl)
		h := NewMaintenanceHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "os-1").Return(errors.New("db"))

		r := gin.New()
		r.DELETE("/v1/maintenances/:id", h.Delete)

		req := httptest.NewRequest(http.MethodDelete, "/v1/maintenances/os-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaintenanceUseCase(ctrl)
		h := NewMaintenanceHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "os-1").Return(nil)

		r := gin.New()
		r.DELETE("/v1/maintenances/:id", h.Delete)

		req := httptest.NewRequest(http.MethodDelete, "/v1/maintenances/os-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
