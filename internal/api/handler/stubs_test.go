package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/influencer-summit/summit-api/internal/core/domain"
	"github.com/influencer-summit/summit-api/internal/core/ports"
)

type stubRegistrationService struct {
	registerFn         func(ctx context.Context, in ports.RegisterInput) (*domain.Registration, error)
	listAllFn          func(ctx context.Context) ([]domain.Registration, error)
	listByInfluencerFn func(ctx context.Context, influencerID string) ([]domain.Registration, error)
	deleteFn           func(ctx context.Context, regID string) error
}

func (s *stubRegistrationService) Register(ctx context.Context, in ports.RegisterInput) (*domain.Registration, error) {
	return s.registerFn(ctx, in)
}

func (s *stubRegistrationService) ListAll(ctx context.Context) ([]domain.Registration, error) {
	return s.listAllFn(ctx)
}

func (s *stubRegistrationService) ListByInfluencer(ctx context.Context, influencerID string) ([]domain.Registration, error) {
	return s.listByInfluencerFn(ctx, influencerID)
}

func (s *stubRegistrationService) Delete(ctx context.Context, regID string) error {
	return s.deleteFn(ctx, regID)
}

func (s *stubRegistrationService) Import(ctx context.Context, regs []domain.Registration) (int, error) {
	return len(regs), nil
}

type stubBadgeService struct {
	issueFn            func(ctx context.Context, in ports.IssueBadgeInput) (*domain.Badge, error)
	listAllFn          func(ctx context.Context) ([]domain.Badge, error)
	listByInfluencerFn func(ctx context.Context, influencerID string) ([]domain.Badge, error)
	deleteFn           func(ctx context.Context, badgeID string) error
}

func (s *stubBadgeService) Issue(ctx context.Context, in ports.IssueBadgeInput) (*domain.Badge, error) {
	return s.issueFn(ctx, in)
}

func (s *stubBadgeService) ListAll(ctx context.Context) ([]domain.Badge, error) {
	return s.listAllFn(ctx)
}

func (s *stubBadgeService) ListByInfluencer(ctx context.Context, influencerID string) ([]domain.Badge, error) {
	return s.listByInfluencerFn(ctx, influencerID)
}

func (s *stubBadgeService) Delete(ctx context.Context, badgeID string) error {
	return s.deleteFn(ctx, badgeID)
}

// newContext builds an echo context with the package validator installed.
func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}
