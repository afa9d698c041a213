package domain

import (
	"regexp"
	"time"
)

// RegistrationPrefix is prepended to every registration sequence number.
const RegistrationPrefix = "SR_"

// TimestampLayout is the wire format for registeredAt / awardedAt.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Registration records an influencer's sign-up for the summit.
type Registration struct {
	RegID        string `json:"regId" bson:"regId"`
	InfluencerID string `json:"influencerId" bson:"influencerId"`
	Email        string `json:"email" bson:"email"`
	Name         string `json:"name,omitempty" bson:"name,omitempty"`
	RegisteredAt string `json:"registeredAt" bson:"registeredAt"`
}

// IsValidEmail reports whether s looks like local@domain.tld.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ConflictsWith reports whether r already claims the influencer or the email.
func (r Registration) ConflictsWith(influencerID, email string) bool {
	return r.InfluencerID == influencerID || r.Email == email
}

// Timestamp formats t in the wire layout, always in UTC.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
