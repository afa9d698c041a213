package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/influencer-summit/summit-api/internal/api/metrics"
	"github.com/influencer-summit/summit-api/internal/core/domain"
	"github.com/influencer-summit/summit-api/internal/core/ports"
)

// RegistrationHandler serves the public summit sign-up endpoints.
type RegistrationHandler struct {
	service ports.RegistrationService
	logger  zerolog.Logger
}

func NewRegistrationHandler(service ports.RegistrationService, logger zerolog.Logger) *RegistrationHandler {
	return &RegistrationHandler{service: service, logger: logger}
}

// Register handles POST /summit/register.
//
// @Summary      Register an influencer for the summit
// @Tags         registrations
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Sign-up details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /summit/register [post]
func (h *RegistrationHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.RegistrationsRejectedTotal.WithLabelValues("invalid_input").Inc()
		return err
	}

	reg, err := h.service.Register(c.Request().Context(), ports.RegisterInput{
		InfluencerID: req.InfluencerID,
		Email:        req.Email,
		Name:         req.Name,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			metrics.RegistrationsRejectedTotal.WithLabelValues("invalid_input").Inc()
		case errors.Is(err, domain.ErrConflict):
			metrics.RegistrationsRejectedTotal.WithLabelValues("conflict").Inc()
		}
		return err
	}

	metrics.RegistrationsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, registerResponse{RegID: reg.RegID})
}

// List handles GET /summit/register. A storage failure is answered with an
// empty list.
//
// @Summary      List all summit registrations
// @Tags         registrations
// @Produce      json
// @Success      200  {object}  registrationsResponse
// @Router       /summit/register [get]
func (h *RegistrationHandler) List(c echo.Context) error {
	regs, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		regs = h.degrade(c, err)
	}
	return c.JSON(http.StatusOK, registrationsResponse{Registrations: nonNil(regs)})
}

// ListByInfluencer handles GET /summit/registrations. Without an influencerId
// every registration is returned. The body is a bare array.
//
// @Summary      List registrations for an influencer
// @Tags         registrations
// @Produce      json
// @Param        influencerId  query  string  false  "Exact influencer id"
// @Success      200  {array}  domain.Registration
// @Router       /summit/registrations [get]
func (h *RegistrationHandler) ListByInfluencer(c echo.Context) error {
	ctx := c.Request().Context()
	influencerID := c.QueryParam("influencerId")

	var (
		regs []domain.Registration
		err  error
	)
	if influencerID == "" {
		regs, err = h.service.ListAll(ctx)
	} else {
		regs, err = h.service.ListByInfluencer(ctx, influencerID)
	}
	if err != nil {
		regs = h.degrade(c, err)
	}
	return c.JSON(http.StatusOK, nonNil(regs))
}

func (h *RegistrationHandler) degrade(c echo.Context, err error) []domain.Registration {
	metrics.DegradedReadsTotal.WithLabelValues("registrations").Inc()
	h.logger.Warn().
		Err(err).
		Str("path", c.Path()).
		Msg("registrations unavailable, serving empty list")
	return nil
}

// nonNil keeps empty collections encoded as [] instead of null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
