package resthandler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo"

	"github.com/golangid/attendo/internal/modules/account/domain"
	"github.com/golangid/attendo/internal/modules/account/usecase"
	"github.com/golangid/attendo/pkg/codebase/interfaces"
	"github.com/golangid/attendo/pkg/helper"
	"github.com/golangid/attendo/pkg/tracer"
	"github.com/golangid/attendo/pkg/wrapper"
)

// RestHandler handler
type RestHandler struct {
	uc        usecase.AccountUsecase
	validator interfaces.Validator
}

// NewRestHandler create new rest handler
func NewRestHandler(uc usecase.AccountUsecase, validator interfaces.Validator) *RestHandler {
	return &RestHandler{
		uc:        uc,
		validator: validator,
	}
}

// Mount handler with root "/"
func (h *RestHandler) Mount(root *echo.Group) {
	root.POST("/signup", h.signup)
	root.POST("/login", h.login)
	root.GET("/api/user-profile", h.getProfile)
}

func (h *RestHandler) signup(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "AccountDeliveryREST:Signup")
	defer trace.Finish()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		trace.SetError(err)
		return wrapper.NewHTTPResponse(http.StatusInternalServerError, "Failed to read request body", err).JSON(c.Response())
	}
	if err := h.validator.ValidateDocument("account/signup", body); err != nil {
		return wrapper.NewHTTPResponse(http.StatusBadRequest, "Invalid request payload", err).JSON(c.Response())
	}

	var payload domain.RequestSignup
	if err := json.Unmarshal(body, &payload); err != nil {
		return wrapper.NewHTTPResponse(http.StatusBadRequest, "Invalid request payload", err).JSON(c.Response())
	}

	if err := h.uc.Signup(ctx, &payload); err != nil {
		trace.SetError(err)
		return wrapper.NewHTTPErrorResponse(err, "Server error").JSON(c.Response())
	}

	return wrapper.NewHTTPResponse(http.StatusCreated, "Account created, pending approval").JSON(c.Response())
}

func (h *RestHandler) login(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "AccountDeliveryREST:Login")
	defer trace.Finish()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		trace.SetError(err)
		return wrapper.NewHTTPResponse(http.StatusInternalServerError, "Failed to read request body", err).JSON(c.Response())
	}
	if err := h.validator.ValidateDocument("account/login", body); err != nil {
		return wrapper.NewHTTPResponse(http.StatusBadRequest, "Invalid request payload", err).JSON(c.Response())
	}

	var payload domain.RequestLogin
	if err := json.Unmarshal(body, &payload); err != nil {
		return wrapper.NewHTTPResponse(http.StatusBadRequest, "Invalid request payload", err).JSON(c.Response())
	}

	res, err := h.uc.Login(ctx, &payload)
	if err != nil {
		trace.SetError(err)
		return wrapper.NewHTTPErrorResponse(err, "Server error").JSON(c.Response())
	}

	return wrapper.NewHTTPResponse(http.StatusOK, "Login successful", wrapper.Fields{"status": res.Status}).JSON(c.Response())
}

func (h *RestHandler) getProfile(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "AccountDeliveryREST:GetProfile")
	defer trace.Finish()

	var filter domain.FilterProfile
	if err := helper.ParseFromQueryParam(c.Request().URL.Query(), &filter); err != nil {
		return wrapper.NewHTTPResponse(http.StatusBadRequest, "User ID is required", err).JSON(c.Response())
	}
	if err := h.validator.ValidateStruct(&filter); err != nil {
		return wrapper.NewHTTPResponse(http.StatusBadRequest, "User ID is required", err).JSON(c.Response())
	}

	res, err := h.uc.GetProfile(ctx, filter.ID)
	if err != nil {
		trace.SetError(err)
		return wrapper.NewHTTPErrorResponse(err, "Server error").JSON(c.Response())
	}

	return wrapper.WriteJSON(c.Response(), http.StatusOK, res)
}
