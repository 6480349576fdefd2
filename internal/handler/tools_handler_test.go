package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fairclaim/complaint-api/internal/service"
)

func newToolsContext(t *testing.T, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	data, ok := resp.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected object data, got %+v", resp.Data)
	}
	return data
}

func TestToolsHandler_FlightCompensation(t *testing.T) {
	handler := NewToolsHandler(service.NewAnalyticsService(nil))
	flightDate := time.Now().AddDate(0, -2, 0).Format("2006-01-02")

	t.Run("eligible uk delay", func(t *testing.T) {
		body := fmt.Sprintf(`{"region":"uk","delay_hours":4,"delay_reason":"technical","flight_distance":"medium","flight_date":%q}`, flightDate)
		c, rec := newToolsContext(t, "/api/tools/flight-compensation", body)

		if err := handler.FlightCompensation(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		data := decodeData(t, rec)
		if data["eligible"] != true {
			t.Fatalf("expected eligible result, got %+v", data)
		}
		if data["compensation"].(float64) != 350 || data["currency"] != "GBP" {
			t.Fatalf("expected 350 GBP, got %v %v", data["compensation"], data["currency"])
		}
	})

	t.Run("weather pays nothing", func(t *testing.T) {
		body := fmt.Sprintf(`{"region":"uk","delay_hours":8,"delay_reason":"weather","flight_distance":"long","flight_date":%q}`, flightDate)
		c, rec := newToolsContext(t, "/api/tools/flight-compensation", body)

		_ = handler.FlightCompensation(c)
		data := decodeData(t, rec)
		if data["eligible"] != false || data["compensation"] != nil {
			t.Fatalf("expected ineligible weather result, got %+v", data)
		}
	})

	t.Run("invalid region", func(t *testing.T) {
		body := fmt.Sprintf(`{"region":"mars","delay_hours":4,"flight_date":%q}`, flightDate)
		c, rec := newToolsContext(t, "/api/tools/flight-compensation", body)

		_ = handler.FlightCompensation(c)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		body := `{"region":"uk","delay_hours":4,"flight_date":"not-a-date"}`
		c, rec := newToolsContext(t, "/api/tools/flight-compensation", body)

		_ = handler.FlightCompensation(c)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("negative delay", func(t *testing.T) {
		body := fmt.Sprintf(`{"region":"uk","delay_hours":-1,"flight_date":%q}`, flightDate)
		c, rec := newToolsContext(t, "/api/tools/flight-compensation", body)

		_ = handler.FlightCompensation(c)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestToolsHandler_CoolingOff(t *testing.T) {
	handler := NewToolsHandler(service.NewAnalyticsService(nil))
	received := time.Now().AddDate(0, 0, -10).Format("2006-01-02")

	body := fmt.Sprintf(`{"country":"uk","purchase_location":"online","product_type":"physical-goods","receive_date":%q}`, received)
	c, rec := newToolsContext(t, "/api/tools/cooling-off", body)

	if err := handler.CoolingOff(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	data := decodeData(t, rec)
	if data["has_cooling_off"] != true {
		t.Fatalf("expected open window, got %+v", data)
	}
	if data["days_remaining"].(float64) != 4 {
		t.Fatalf("expected 4 days remaining, got %v", data["days_remaining"])
	}
}

func TestToolsHandler_RefundTimeline(t *testing.T) {
	handler := NewToolsHandler(service.NewAnalyticsService(nil))

	t.Run("uk faulty goods", func(t *testing.T) {
		purchase := time.Now().AddDate(0, 0, -10).Format("2006-01-02")
		body := fmt.Sprintf(`{"country":"uk","category":"faulty-goods","purchase_date":%q}`, purchase)
		c, rec := newToolsContext(t, "/api/tools/refund-timeline", body)

		_ = handler.RefundTimeline(c)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		data := decodeData(t, rec)
		if data["refund_due"] != true {
			t.Fatalf("expected refund due inside 30-day window, got %+v", data)
		}
	})

	t.Run("fault before purchase", func(t *testing.T) {
		purchase := time.Now().AddDate(0, 0, -10).Format("2006-01-02")
		fault := time.Now().AddDate(0, 0, -20).Format("2006-01-02")
		body := fmt.Sprintf(`{"country":"uk","category":"faulty-goods","purchase_date":%q,"fault_date":%q}`, purchase, fault)
		c, rec := newToolsContext(t, "/api/tools/refund-timeline", body)

		_ = handler.RefundTimeline(c)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestToolsHandler_ResponseDeadline(t *testing.T) {
	handler := NewToolsHandler(service.NewAnalyticsService(nil))
	sent := time.Now().AddDate(0, 0, -5).Format("2006-01-02")

	body := fmt.Sprintf(`{"country":"uk","industry":"financial","complaint_sent":%q}`, sent)
	c, rec := newToolsContext(t, "/api/tools/response-deadline", body)

	_ = handler.ResponseDeadline(c)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	data := decodeData(t, rec)
	if data["response_days"].(float64) != 56 {
		t.Fatalf("expected 56-day financial deadline, got %v", data["response_days"])
	}
	if data["overdue"] != false {
		t.Fatalf("expected not overdue, got %+v", data)
	}
}

func TestToolsHandler_CancelSubscription(t *testing.T) {
	handler := NewToolsHandler(service.NewAnalyticsService(nil))

	t.Run("without letter fields", func(t *testing.T) {
		body := `{"country":"uk","subscription_type":"gym","reason":"moving"}`
		c, rec := newToolsContext(t, "/api/tools/cancel-subscription", body)

		_ = handler.CancelSubscription(c)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		data := decodeData(t, rec)
		if data["notice_days"].(float64) != 30 {
			t.Fatalf("expected 30 notice days, got %v", data["notice_days"])
		}
		if _, present := data["letter"]; present {
			t.Fatalf("expected no letter without customer details, got %+v", data)
		}
	})

	t.Run("with letter fields", func(t *testing.T) {
		body := `{"country":"uk","subscription_type":"gym","reason":"moving","customer_name":"Jordan Smith","company_name":"FitLife Gyms Ltd","account_ref":"FL-1"}`
		c, rec := newToolsContext(t, "/api/tools/cancel-subscription", body)

		_ = handler.CancelSubscription(c)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		data := decodeData(t, rec)
		letterText, _ := data["letter"].(string)
		if !strings.Contains(letterText, "FitLife Gyms Ltd") || !strings.Contains(letterText, "Jordan Smith") {
			t.Fatalf("expected rendered letter, got %q", letterText)
		}
	})
}
