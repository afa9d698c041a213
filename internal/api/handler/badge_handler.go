package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/influencer-summit/summit-api/internal/api/metrics"
	"github.com/influencer-summit/summit-api/internal/core/domain"
	"github.com/influencer-summit/summit-api/internal/core/ports"
)

// BadgeHandler serves badge issuance and lookup.
type BadgeHandler struct {
	service ports.BadgeService
}

func NewBadgeHandler(service ports.BadgeService) *BadgeHandler {
	return &BadgeHandler{service: service}
}

// Issue handles POST /badges/issue.
//
// @Summary      Award a badge to an influencer
// @Tags         badges
// @Accept       json
// @Produce      json
// @Param        body  body      issueBadgeRequest  true  "Badge to award"
// @Success      200   {object}  issueBadgeResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /badges/issue [post]
func (h *BadgeHandler) Issue(c echo.Context) error {
	var req issueBadgeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	b, err := h.service.Issue(c.Request().Context(), ports.IssueBadgeInput{
		InfluencerID: req.InfluencerID,
		Badge:        req.Badge,
	})
	if err != nil {
		return err
	}

	metrics.BadgesIssuedTotal.Inc()
	return c.JSON(http.StatusOK, issueBadgeResponse{BadgeID: b.BadgeID})
}

// List handles GET /badges. With influencerId only that influencer's badges
// are returned.
//
// @Summary      List badges
// @Tags         badges
// @Produce      json
// @Param        influencerId  query  string  false  "Exact influencer id"
// @Success      200  {array}   domain.Badge
// @Failure      500  {object}  errorResponse
// @Router       /badges [get]
func (h *BadgeHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		badges []domain.Badge
		err    error
	)
	if id := c.QueryParam("influencerId"); id != "" {
		badges, err = h.service.ListByInfluencer(ctx, id)
	} else {
		badges, err = h.service.ListAll(ctx)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, nonNil(badges))
}

// Delete handles DELETE /badges/:badgeId. It sits behind the admin key.
//
// @Summary      Revoke a badge
// @Tags         badges
// @Produce      json
// @Security     ApiKeyAuth
// @Param        badgeId  path      string  true  "Badge id (e.g. BD_001)"
// @Success      200      {object}  successResponse
// @Failure      401      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Failure      500      {object}  errorResponse
// @Router       /badges/{badgeId} [delete]
func (h *BadgeHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("badgeId")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}
