package domain

import "strings"

const (
	// BadgePrefix is prepended to every badge sequence number.
	BadgePrefix = "BD_"
	// InfluencerPrefix is required on influencer ids when a badge is issued.
	InfluencerPrefix = "INF_"
)

// Badge is a recognition awarded to an influencer. It is not tied to a
// registration; a badge may be issued to someone who never registered.
type Badge struct {
	BadgeID      string `json:"badgeId" bson:"badgeId"`
	InfluencerID string `json:"influencerId" bson:"influencerId"`
	Badge        string `json:"badge" bson:"badge"`
	AwardedAt    string `json:"awardedAt" bson:"awardedAt"`
}

// IsInfluencerID reports whether id carries the INF_ prefix.
func IsInfluencerID(id string) bool {
	return strings.HasPrefix(id, InfluencerPrefix)
}
