package resthandler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo"

	"github.com/golangid/attendo/internal/modules/event/domain"
	"github.com/golangid/attendo/internal/modules/event/usecase"
	"github.com/golangid/attendo/pkg/codebase/interfaces"
	"github.com/golangid/attendo/pkg/helper"
	"github.com/golangid/attendo/pkg/tracer"
	"github.com/golangid/attendo/pkg/wrapper"
)

// RestHandler handler
type RestHandler struct {
	uc        usecase.EventUsecase
	validator interfaces.Validator
}

// NewRestHandler create new rest handler
func NewRestHandler(uc usecase.EventUsecase, validator interfaces.Validator) *RestHandler {
	return &RestHandler{
		uc:        uc,
		validator: validator,
	}
}

// Mount handler with root "/"
func (h *RestHandler) Mount(root *echo.Group) {
	root.POST("/create-event", h.createEvent)
	root.GET("/get-events", h.getAllEvent)
	root.GET("/my-events", h.getMyEvents)
}

func (h *RestHandler) createEvent(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "EventDeliveryREST:CreateEvent")
	defer trace.Finish()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		trace.SetError(err)
		return wrapper.NewHTTPResponse(http.StatusInternalServerError, "Failed to read request body", err).JSON(c.Response())
	}
	if err := h.validator.ValidateDocument("event/create", body); err != nil {
		return wrapper.NewHTTPResponse(http.StatusBadRequest, "Invalid request payload", err).JSON(c.Response())
	}

	var payload domain.RequestEvent
	if err := json.Unmarshal(body, &payload); err != nil {
		return wrapper.NewHTTPResponse(http.StatusBadRequest, "Invalid request payload", err).JSON(c.Response())
	}

	if _, err := h.uc.CreateEvent(ctx, &payload); err != nil {
		trace.SetError(err)
		return wrapper.NewHTTPErrorResponse(err, "Failed to create event").JSON(c.Response())
	}

	return wrapper.NewHTTPResponse(http.StatusCreated, "Event created successfully").JSON(c.Response())
}

func (h *RestHandler) getAllEvent(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "EventDeliveryREST:GetAllEvent")
	defer trace.Finish()

	data, err := h.uc.GetAllEvent(ctx)
	if err != nil {
		trace.SetError(err)
		return wrapper.NewHTTPErrorResponse(err, "Failed to fetch events").JSON(c.Response())
	}

	return wrapper.WriteJSON(c.Response(), http.StatusOK, data)
}

func (h *RestHandler) getMyEvents(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "EventDeliveryREST:GetMyEvents")
	defer trace.Finish()

	var filter domain.FilterMyEvents
	if err := helper.ParseFromQueryParam(c.Request().URL.Query(), &filter); err != nil {
		return wrapper.NewHTTPResponse(http.StatusBadRequest, "Invalid query parameter", err).JSON(c.Response())
	}

	data, err := h.uc.GetMyEvents(ctx, filter.Email)
	if err != nil {
		trace.SetError(err)
		return wrapper.NewHTTPErrorResponse(err, "Internal Server Error").JSON(c.Response())
	}

	return wrapper.WriteJSON(c.Response(), http.StatusOK, data)
}
