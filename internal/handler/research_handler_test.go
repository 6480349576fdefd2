package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/fairclaim/complaint-api/internal/research"
)

func TestResearchHandler_Research(t *testing.T) {
	e := echo.New()
	handler := NewResearchHandler(research.NewAggregator(nil, nil, "GB"))

	newContext := func(body string) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodPost, "/api/research/company", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		return e.NewContext(req, rec), rec
	}

	t.Run("invalid payload", func(t *testing.T) {
		c, rec := newContext("{")
		_ = handler.Research(c)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("missing company name", func(t *testing.T) {
		c, rec := newContext(`{"companyName":"   "}`)
		_ = handler.Research(c)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("mock mode without search key", func(t *testing.T) {
		c, rec := newContext(`{"companyName":"British Airways"}`)
		if err := handler.Research(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var resp APIResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		data, ok := resp.Data.(map[string]any)
		if !ok {
			t.Fatalf("expected object data, got %+v", resp.Data)
		}
		if data["mock"] != true {
			t.Fatalf("expected mock report, got %+v", data)
		}
	})
}
