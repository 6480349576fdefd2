package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fairclaim/complaint-api/internal/dto"
	middlewarepkg "github.com/fairclaim/complaint-api/internal/middleware"
)

// LetterHandler forwards case facts to the AI letter-generation service.
type LetterHandler struct {
	letters LetterPoster
}

// NewLetterHandler constructs a letter handler backed by an HTTP client.
func NewLetterHandler(client *http.Client, baseURL string) *LetterHandler {
	return &LetterHandler{letters: NewLetterClient(client, baseURL)}
}

// NewLetterHandlerWithPoster allows injecting a custom client (used in tests).
func NewLetterHandlerWithPoster(letters LetterPoster) *LetterHandler {
	return &LetterHandler{letters: letters}
}

// Generate handles POST /api/generate/letter.
func (h *LetterHandler) Generate(c echo.Context) error {
	var req dto.GenerateLetterRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.CompanyName = strings.TrimSpace(req.CompanyName)
	req.Description = strings.TrimSpace(req.Description)
	if req.CustomerName == "" || req.CompanyName == "" || req.Description == "" {
		return Error(c, http.StatusBadRequest, "customer_name, company_name and description are required")
	}

	ctx := c.Request().Context()
	data, err := h.letters.PostJSON(ctx, "/generate/letter", req, middlewarepkg.RequestIDFromContext(c))
	if err != nil {
		if errors.Is(err, ErrLetterServiceUnavailable) {
			return Error(c, http.StatusServiceUnavailable, "letter generation is not available")
		}
		return Error(c, http.StatusBadGateway, err.Error())
	}

	letterText, _ := data["letter"].(string)
	if letterText == "" {
		return Error(c, http.StatusBadGateway, "letter service returned no letter")
	}
	return Success(c, http.StatusOK, "letter generated", dto.GenerateLetterResponse{Letter: letterText})
}
