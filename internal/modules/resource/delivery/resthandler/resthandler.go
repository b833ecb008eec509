package resthandler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo"

	"github.com/golangid/attendo/internal/modules/resource/domain"
	"github.com/golangid/attendo/internal/modules/resource/usecase"
	"github.com/golangid/attendo/pkg/codebase/interfaces"
	"github.com/golangid/attendo/pkg/tracer"
	"github.com/golangid/attendo/pkg/wrapper"
)

// RestHandler handler
type RestHandler struct {
	uc        usecase.ResourceUsecase
	validator interfaces.Validator
}

// NewRestHandler create new rest handler
func NewRestHandler(uc usecase.ResourceUsecase, validator interfaces.Validator) *RestHandler {
	return &RestHandler{
		uc:        uc,
		validator: validator,
	}
}

// Mount handler with root "/"
func (h *RestHandler) Mount(root *echo.Group) {
	root.POST("/resources", h.addResource)
	root.GET("/resources", h.getAllResource)
}

func (h *RestHandler) addResource(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "ResourceDeliveryREST:AddResource")
	defer trace.Finish()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		trace.SetError(err)
		return wrapper.NewHTTPResponse(http.StatusInternalServerError, "Failed to read request body", err).JSON(c.Response())
	}
	if err := h.validator.ValidateDocument("resource/add", body); err != nil {
		return wrapper.NewHTTPResponse(http.StatusBadRequest, "Invalid request payload", err).JSON(c.Response())
	}

	var payload domain.RequestResource
	if err := json.Unmarshal(body, &payload); err != nil {
		return wrapper.NewHTTPResponse(http.StatusBadRequest, "Invalid request payload", err).JSON(c.Response())
	}

	data, err := h.uc.AddResource(ctx, &payload)
	if err != nil {
		trace.SetError(err)
		return wrapper.NewHTTPErrorResponse(err, "Failed to add resource").JSON(c.Response())
	}

	return wrapper.NewHTTPResponse(http.StatusCreated, "Resource added successfully",
		wrapper.Fields{"resource": data},
	).JSON(c.Response())
}

func (h *RestHandler) getAllResource(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "ResourceDeliveryREST:GetAllResource")
	defer trace.Finish()

	data, err := h.uc.GetAllResource(ctx)
	if err != nil {
		trace.SetError(err)
		return wrapper.NewHTTPErrorResponse(err, "Failed to fetch resources").JSON(c.Response())
	}

	return wrapper.WriteJSON(c.Response(), http.StatusOK, data)
}
