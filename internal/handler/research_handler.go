package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fairclaim/complaint-api/internal/dto"
	"github.com/fairclaim/complaint-api/internal/research"
)

// ResearchHandler serves company research requests.
type ResearchHandler struct {
	aggregator *research.Aggregator
}

// NewResearchHandler wires a research handler.
func NewResearchHandler(aggregator *research.Aggregator) *ResearchHandler {
	return &ResearchHandler{aggregator: aggregator}
}

// Research handles POST /api/research/company.
func (h *ResearchHandler) Research(c echo.Context) error {
	var req dto.ResearchRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	req.CompanyName = strings.TrimSpace(req.CompanyName)
	if req.CompanyName == "" {
		return Error(c, http.StatusBadRequest, "companyName is required")
	}

	report, err := h.aggregator.Research(c.Request().Context(), req.CompanyName)
	if err != nil {
		return Error(c, http.StatusBadGateway, "company research failed")
	}

	return Success(c, http.StatusOK, "company researched", report)
}
