package resthandler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo"

	"github.com/golangid/attendo/internal/modules/feedback/domain"
	"github.com/golangid/attendo/internal/modules/feedback/usecase"
	"github.com/golangid/attendo/pkg/codebase/interfaces"
	"github.com/golangid/attendo/pkg/tracer"
	"github.com/golangid/attendo/pkg/wrapper"
)

// RestHandler handler
type RestHandler struct {
	uc        usecase.FeedbackUsecase
	validator interfaces.Validator
}

// NewRestHandler create new rest handler
func NewRestHandler(uc usecase.FeedbackUsecase, validator interfaces.Validator) *RestHandler {
	return &RestHandler{
		uc:        uc,
		validator: validator,
	}
}

// Mount handler with root "/"
func (h *RestHandler) Mount(root *echo.Group) {
	root.POST("/submit-feedback", h.submitFeedback)
}

func (h *RestHandler) submitFeedback(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "FeedbackDeliveryREST:SubmitFeedback")
	defer trace.Finish()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		trace.SetError(err)
		return wrapper.NewHTTPResponse(http.StatusInternalServerError, "Failed to read request body", err).JSON(c.Response())
	}
	if err := h.validator.ValidateDocument("feedback/submit", body); err != nil {
		return wrapper.NewHTTPResponse(http.StatusBadRequest, "Invalid request payload", err).JSON(c.Response())
	}

	var payload domain.RequestFeedback
	if err := json.Unmarshal(body, &payload); err != nil {
		return wrapper.NewHTTPResponse(http.StatusBadRequest, "Invalid request payload", err).JSON(c.Response())
	}

	if err := h.uc.SubmitFeedback(ctx, &payload); err != nil {
		trace.SetError(err)
		return wrapper.NewHTTPErrorResponse(err, "Failed to submit feedback.").JSON(c.Response())
	}

	return wrapper.NewHTTPResponse(http.StatusCreated, "Feedback submitted successfully!").JSON(c.Response())
}
