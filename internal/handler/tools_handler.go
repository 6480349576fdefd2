package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fairclaim/complaint-api/internal/dto"
	"github.com/fairclaim/complaint-api/internal/letter"
	"github.com/fairclaim/complaint-api/internal/rules"
	"github.com/fairclaim/complaint-api/internal/service"
)

const dateLayout = "2006-01-02"

// ToolsHandler serves the free consumer-rights calculators. Every tool is
// stateless: the result is computed from the submission and discarded.
type ToolsHandler struct {
	analytics *service.AnalyticsService
}

// NewToolsHandler wires a tools handler.
func NewToolsHandler(analytics *service.AnalyticsService) *ToolsHandler {
	return &ToolsHandler{analytics: analytics}
}

// FlightCompensation handles POST /api/tools/flight-compensation.
func (h *ToolsHandler) FlightCompensation(c echo.Context) error {
	var req dto.FlightCompensationRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	region, err := rules.ParseJurisdiction(req.Region)
	if err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}
	departure, err := rules.ParseJurisdiction(req.DepartureRegion)
	if err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}
	arrival, err := rules.ParseJurisdiction(req.ArrivalRegion)
	if err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}
	flightDate, err := parseDate(req.FlightDate)
	if err != nil {
		return Error(c, http.StatusBadRequest, "flight_date must be a valid YYYY-MM-DD date")
	}
	if req.DelayHours < 0 {
		return Error(c, http.StatusBadRequest, "delay_hours must not be negative")
	}

	result := rules.CalculateCompensation(rules.FlightInput{
		Region:          region,
		DepartureRegion: departure,
		ArrivalRegion:   arrival,
		DelayHours:      req.DelayHours,
		DelayReason:     rules.DelayReason(req.DelayReason),
		Distance:        rules.FlightDistance(req.FlightDistance),
		FlightDate:      flightDate,
		Now:             time.Now(),
	})

	h.analytics.Record(c.Request().Context(), "flight-compensation", string(region), string(rules.CategoryTravel), &result.Eligible)
	return Success(c, http.StatusOK, "compensation assessed", result)
}

// CoolingOff handles POST /api/tools/cooling-off.
func (h *ToolsHandler) CoolingOff(c echo.Context) error {
	var req dto.CoolingOffRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	country, err := rules.ParseJurisdiction(req.Country)
	if err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}
	receiveDate, err := parseDate(req.ReceiveDate)
	if err != nil {
		return Error(c, http.StatusBadRequest, "receive_date must be a valid YYYY-MM-DD date")
	}

	result := rules.CheckCoolingOff(rules.CoolingOffInput{
		Country:     country,
		Location:    rules.PurchaseLocation(req.PurchaseLocation),
		ProductType: rules.ProductType(req.ProductType),
		ReceiveDate: receiveDate,
		Now:         time.Now(),
	})

	h.analytics.Record(c.Request().Context(), "cooling-off", string(country), string(rules.CategoryOnlinePurchases), &result.HasCoolingOff)
	return Success(c, http.StatusOK, "cooling-off period assessed", result)
}

// RefundTimeline handles POST /api/tools/refund-timeline.
func (h *ToolsHandler) RefundTimeline(c echo.Context) error {
	var req dto.RefundTimelineRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	country, err := rules.ParseJurisdiction(req.Country)
	if err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}
	purchaseDate, err := parseDate(req.PurchaseDate)
	if err != nil {
		return Error(c, http.StatusBadRequest, "purchase_date must be a valid YYYY-MM-DD date")
	}

	input := rules.RefundInput{
		Country:      country,
		Category:     rules.ParseCategory(req.Category),
		PurchaseDate: purchaseDate,
		Now:          time.Now(),
	}
	if req.FaultDate != "" {
		faultDate, err := parseDate(req.FaultDate)
		if err != nil {
			return Error(c, http.StatusBadRequest, "fault_date must be a valid YYYY-MM-DD date")
		}
		input.FaultDate = &faultDate
	}

	result, err := rules.RefundTimeline(input)
	if err != nil {
		if errors.Is(err, rules.ErrFaultBeforePurchase) {
			return Error(c, http.StatusBadRequest, err.Error())
		}
		return Error(c, http.StatusInternalServerError, "failed to assess refund timeline")
	}

	h.analytics.Record(c.Request().Context(), "refund-timeline", string(country), string(input.Category), &result.RefundDue)
	return Success(c, http.StatusOK, "refund timeline assessed", result)
}

// ResponseDeadline handles POST /api/tools/response-deadline.
func (h *ToolsHandler) ResponseDeadline(c echo.Context) error {
	var req dto.ResponseDeadlineRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	country, err := rules.ParseJurisdiction(req.Country)
	if err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}
	sentDate, err := parseDate(req.ComplaintSent)
	if err != nil {
		return Error(c, http.StatusBadRequest, "complaint_sent must be a valid YYYY-MM-DD date")
	}

	industry := rules.ParseCategory(req.Industry)
	result := rules.ResponseDeadline(rules.ResponseDeadlineInput{
		Country:       country,
		Industry:      industry,
		ComplaintSent: sentDate,
		Now:           time.Now(),
	})

	h.analytics.Record(c.Request().Context(), "response-deadline", string(country), string(industry), nil)
	return Success(c, http.StatusOK, "response deadline assessed", result)
}

// cancelSubscriptionResponse bundles the rule result with the optional
// rendered letter.
type cancelSubscriptionResponse struct {
	rules.CancelResult
	Letter string `json:"letter,omitempty"`
}

// CancelSubscription handles POST /api/tools/cancel-subscription.
func (h *ToolsHandler) CancelSubscription(c echo.Context) error {
	var req dto.CancelSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	country, err := rules.ParseJurisdiction(req.Country)
	if err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}

	input := rules.CancelInput{
		Country:      country,
		Subscription: rules.SubscriptionType(req.SubscriptionType),
		Reason:       rules.CancelReason(req.Reason),
		Now:          time.Now(),
	}
	if req.SignupDate != "" {
		signup, err := parseDate(req.SignupDate)
		if err != nil {
			return Error(c, http.StatusBadRequest, "signup_date must be a valid YYYY-MM-DD date")
		}
		input.SignupDate = signup
	}

	result := rules.CheckCancellation(input)
	response := cancelSubscriptionResponse{CancelResult: result}

	if req.CustomerName != "" && req.CompanyName != "" {
		response.Letter = letter.Generate(country, letter.Facts{
			CustomerName: req.CustomerName,
			CompanyName:  req.CompanyName,
			AccountRef:   req.AccountRef,
			Subscription: input.Subscription,
			Reason:       input.Reason,
			EndDate:      result.EarliestEnd,
			Today:        input.Now,
		})
	}

	h.analytics.Record(c.Request().Context(), "cancel-subscription", string(country), string(rules.CategorySubscriptions), nil)
	return Success(c, http.StatusOK, "cancellation rights assessed", response)
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}
