package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/influencer-summit/summit-api/internal/core/ports"
)

// AdminHandler serves the key-protected management endpoints. Storage
// failures surface as 500 here; nothing is degraded.
type AdminHandler struct {
	registrations ports.RegistrationService
	badges        ports.BadgeService
}

func NewAdminHandler(registrations ports.RegistrationService, badges ports.BadgeService) *AdminHandler {
	return &AdminHandler{registrations: registrations, badges: badges}
}

// ListRegistrations handles GET /admin/registrations.
//
// @Summary      List registrations (admin)
// @Tags         admin
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {object}  registrationsResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /admin/registrations [get]
func (h *AdminHandler) ListRegistrations(c echo.Context) error {
	regs, err := h.registrations.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, registrationsResponse{Registrations: nonNil(regs)})
}

// DeleteRegistration handles DELETE /admin/registrations?regId=.
//
// @Summary      Delete a registration (admin)
// @Tags         admin
// @Produce      json
// @Security     ApiKeyAuth
// @Param        regId  query     string  true  "Registration id (e.g. SR_001)"
// @Success      200    {object}  successResponse
// @Failure      400    {object}  errorResponse
// @Failure      401    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Failure      500    {object}  errorResponse
// @Router       /admin/registrations [delete]
func (h *AdminHandler) DeleteRegistration(c echo.Context) error {
	if err := h.registrations.Delete(c.Request().Context(), c.QueryParam("regId")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// ListBadges handles GET /admin/badges.
//
// @Summary      List badges (admin)
// @Tags         admin
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {object}  badgesResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /admin/badges [get]
func (h *AdminHandler) ListBadges(c echo.Context) error {
	badges, err := h.badges.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, badgesResponse{Badges: nonNil(badges)})
}

// DeleteBadge handles DELETE /admin/badges?badgeId=.
//
// @Summary      Delete a badge (admin)
// @Tags         admin
// @Produce      json
// @Security     ApiKeyAuth
// @Param        badgeId  query     string  true  "Badge id (e.g. BD_001)"
// @Success      200      {object}  successResponse
// @Failure      400      {object}  errorResponse
// @Failure      401      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Failure      500      {object}  errorResponse
// @Router       /admin/badges [delete]
func (h *AdminHandler) DeleteBadge(c echo.Context) error {
	if err := h.badges.Delete(c.Request().Context(), c.QueryParam("badgeId")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}
