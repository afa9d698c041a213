package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/rs/zerolog"

	"github.com/influencer-summit/summit-api/internal/core/domain"
	"github.com/influencer-summit/summit-api/internal/core/ports"
)

func TestRegistrationHandler_Register_Success(t *testing.T) {
	stub := &stubRegistrationService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.Registration, error) {
			if in.InfluencerID != "INF_001" || in.Email != "a@b.com" || in.Name != "Ana" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Registration{RegID: "SR_001"}, nil
		},
	}
	h := NewRegistrationHandler(stub, zerolog.Nop())

	c, rec := newContext(http.MethodPost, "/summit/register", `{"influencerId":"INF_001","email":"a@b.com","name":"Ana"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp registerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.RegID != "SR_001" {
		t.Fatalf("expected SR_001, got %q", resp.RegID)
	}
}

func TestRegistrationHandler_Register_InvalidEmail(t *testing.T) {
	stub := &stubRegistrationService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.Registration, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewRegistrationHandler(stub, zerolog.Nop())

	c, _ := newContext(http.MethodPost, "/summit/register", `{"influencerId":"INF_001","email":"nope"}`)
	err := h.Register(c)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRegistrationHandler_Register_MalformedJSON(t *testing.T) {
	h := NewRegistrationHandler(&stubRegistrationService{}, zerolog.Nop())

	c, _ := newContext(http.MethodPost, "/summit/register", `{"influencerId":`)
	err := h.Register(c)
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestRegistrationHandler_Register_Conflict(t *testing.T) {
	stub := &stubRegistrationService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.Registration, error) {
			return nil, domain.ErrConflict
		},
	}
	h := NewRegistrationHandler(stub, zerolog.Nop())

	c, _ := newContext(http.MethodPost, "/summit/register", `{"influencerId":"INF_001","email":"a@b.com"}`)
	if err := h.Register(c); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestRegistrationHandler_List_DegradesOnError(t *testing.T) {
	stub := &stubRegistrationService{
		listAllFn: func(ctx context.Context) ([]domain.Registration, error) {
			return nil, errors.New("store down")
		},
	}
	h := NewRegistrationHandler(stub, zerolog.Nop())

	c, rec := newContext(http.MethodGet, "/summit/register", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != "{\"registrations\":[]}\n" {
		t.Fatalf("unexpected body: %q", got)
	}
}

func TestRegistrationHandler_ListByInfluencer(t *testing.T) {
	stub := &stubRegistrationService{
		listByInfluencerFn: func(ctx context.Context, influencerID string) ([]domain.Registration, error) {
			if influencerID != "INF_002" {
				t.Fatalf("unexpected influencer %q", influencerID)
			}
			return []domain.Registration{{RegID: "SR_002", InfluencerID: "INF_002"}}, nil
		},
	}
	h := NewRegistrationHandler(stub, zerolog.Nop())

	c, rec := newContext(http.MethodGet, "/summit/registrations?influencerId=INF_002", "")
	if err := h.ListByInfluencer(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var regs []domain.Registration
	if err := json.Unmarshal(rec.Body.Bytes(), &regs); err != nil {
		t.Fatalf("expected bare array: %v", err)
	}
	if len(regs) != 1 || regs[0].RegID != "SR_002" {
		t.Fatalf("unexpected registrations: %+v", regs)
	}
}

func TestRegistrationHandler_ListByInfluencer_NoFilter(t *testing.T) {
	stub := &stubRegistrationService{
		listAllFn: func(ctx context.Context) ([]domain.Registration, error) {
			return []domain.Registration{{RegID: "SR_001"}, {RegID: "SR_002"}}, nil
		},
	}
	h := NewRegistrationHandler(stub, zerolog.Nop())

	c, rec := newContext(http.MethodGet, "/summit/registrations", "")
	if err := h.ListByInfluencer(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var regs []domain.Registration
	if err := json.Unmarshal(rec.Body.Bytes(), &regs); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(regs) != 2 {
		t.Fatalf("expected 2 registrations, got %d", len(regs))
	}
}

func TestRegistrationHandler_ListByInfluencer_DegradesOnError(t *testing.T) {
	stub := &stubRegistrationService{
		listByInfluencerFn: func(ctx context.Context, influencerID string) ([]domain.Registration, error) {
			return nil, errors.New("store down")
		},
	}
	h := NewRegistrationHandler(stub, zerolog.Nop())

	c, rec := newContext(http.MethodGet, "/summit/registrations?influencerId=INF_001", "")
	if err := h.ListByInfluencer(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got := rec.Body.String(); got != "[]\n" {
		t.Fatalf("expected empty array, got %q", got)
	}
}
