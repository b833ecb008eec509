package resthandler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo"

	"github.com/golangid/attendo/internal/modules/attendance/domain"
	"github.com/golangid/attendo/internal/modules/attendance/usecase"
	"github.com/golangid/attendo/pkg/codebase/interfaces"
	"github.com/golangid/attendo/pkg/tracer"
	"github.com/golangid/attendo/pkg/wrapper"
)

// RestHandler handler
type RestHandler struct {
	uc        usecase.AttendanceUsecase
	validator interfaces.Validator
}

// NewRestHandler create new rest handler
func NewRestHandler(uc usecase.AttendanceUsecase, validator interfaces.Validator) *RestHandler {
	return &RestHandler{
		uc:        uc,
		validator: validator,
	}
}

// Mount handler with root "/"
func (h *RestHandler) Mount(root *echo.Group) {
	root.POST("/join-event", h.joinEvent)
	root.POST("/verify-student", h.verifyParticipant)
	root.GET("/students", h.getAllParticipant)
	root.GET("/attendance-analysis", h.getAttendanceReport)
}

func (h *RestHandler) joinEvent(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "AttendanceDeliveryREST:JoinEvent")
	defer trace.Finish()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		trace.SetError(err)
		return wrapper.NewHTTPResponse(http.StatusInternalServerError, "Failed to read request body", err).JSON(c.Response())
	}
	if err := h.validator.ValidateDocument("attendance/join", body); err != nil {
		return wrapper.NewHTTPResponse(http.StatusBadRequest, "Invalid request payload", err).JSON(c.Response())
	}

	var payload domain.RequestJoin
	if err := json.Unmarshal(body, &payload); err != nil {
		return wrapper.NewHTTPResponse(http.StatusBadRequest, "Invalid request payload", err).JSON(c.Response())
	}

	res, err := h.uc.JoinEvent(ctx, &payload)
	if err != nil {
		trace.SetError(err)
		return wrapper.NewHTTPErrorResponse(err, "Server error").JSON(c.Response())
	}

	return wrapper.NewHTTPResponse(http.StatusCreated, "Successfully joined event!",
		wrapper.Fields{"uniqueNumber": res.UniqueNumber},
	).JSON(c.Response())
}

func (h *RestHandler) verifyParticipant(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "AttendanceDeliveryREST:VerifyParticipant")
	defer trace.Finish()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		trace.SetError(err)
		return wrapper.NewHTTPResponse(http.StatusInternalServerError, "Failed to read request body", err).JSON(c.Response())
	}
	if err := h.validator.ValidateDocument("attendance/verify", body); err != nil {
		return wrapper.NewHTTPResponse(http.StatusBadRequest, "Invalid request payload", err).JSON(c.Response())
	}

	var payload domain.RequestVerify
	if err := json.Unmarshal(body, &payload); err != nil {
		return wrapper.NewHTTPResponse(http.StatusBadRequest, "Invalid request payload", err).JSON(c.Response())
	}

	participant, err := h.uc.VerifyParticipant(ctx, payload.UniqueNumber)
	if err != nil {
		trace.SetError(err)
		return wrapper.NewHTTPErrorResponse(err, "Server error").JSON(c.Response())
	}

	return wrapper.NewHTTPResponse(http.StatusOK,
		fmt.Sprintf("Verified: %s (%s)", participant.Name, participant.Email),
		wrapper.Fields{"attendance": participant.Attendance},
	).JSON(c.Response())
}

func (h *RestHandler) getAllParticipant(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "AttendanceDeliveryREST:GetAllParticipant")
	defer trace.Finish()

	data, err := h.uc.GetAllParticipant(ctx)
	if err != nil {
		trace.SetError(err)
		return wrapper.NewHTTPErrorResponse(err, "Failed to fetch students").JSON(c.Response())
	}

	return wrapper.WriteJSON(c.Response(), http.StatusOK, data)
}

func (h *RestHandler) getAttendanceReport(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "AttendanceDeliveryREST:GetAttendanceReport")
	defer trace.Finish()

	data, err := h.uc.GetAttendanceReport(ctx)
	if err != nil {
		trace.SetError(err)
		return wrapper.NewHTTPErrorResponse(err, "Server error").JSON(c.Response())
	}

	return wrapper.WriteJSON(c.Response(), http.StatusOK, data)
}
