package handler

import "github.com/influencer-summit/summit-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Registration ---

type registerRequest struct {
	InfluencerID string `json:"influencerId" validate:"required"`
	Email        string `json:"email"        validate:"required,summitemail"`
	Name         string `json:"name"`
}

type registerResponse struct {
	RegID string `json:"regId"`
}

type registrationsResponse struct {
	Registrations []domain.Registration `json:"registrations"`
}

// --- Badges ---

type issueBadgeRequest struct {
	InfluencerID string `json:"influencerId" validate:"required,startswith=INF_"`
	Badge        string `json:"badge"        validate:"required"`
}

type issueBadgeResponse struct {
	BadgeID string `json:"badgeId"`
}

type badgesResponse struct {
	Badges []domain.Badge `json:"badges"`
}

// --- Admin ---

type successResponse struct {
	Success bool `json:"success"`
}
