package usage

import "time"

// dayFormat is the calendar-day layout stored in Record.Date.
// Day boundaries are local calendar days, not rolling 24h windows;
// the rolling 24h window only governs the displayed reset time.
const dayFormat = "Mon Jan 2 2006"

// premiumLimit is the effectively-unbounded limit reported for premium users.
const premiumLimit = 999999

// UserType distinguishes quota-limited users from premium users.
type UserType string

const (
	UserFree    UserType = "free"
	UserPremium UserType = "premium"
)

// Record is the persisted per-user, per-day usage counter.
// It is stored as JSON under the key "usage_<user_id>".
type Record struct {
	// Date is the calendar day the counter applies to.
	Date string `json:"date"`

	// Count is the number of quota-consuming actions taken on Date.
	Count int `json:"count"`

	// LastUsedAt is the time of the most recent consuming action.
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty"`
}

// Status is the derived, read-only view of a user's quota.
type Status struct {
	UserType      UserType
	UsageCount    int
	UsageLimit    int
	CanUseFeature bool
	LastUsedAt    *time.Time

	// ResetTime is LastUsedAt + 24h, nil if the user has never consumed.
	ResetTime *time.Time

	IsPremium bool
}

// Key returns the storage key for a user's usage record.
func Key(userID string) string {
	return "usage_" + userID
}

// formatDay renders t as a stored calendar day.
func formatDay(t time.Time) string {
	return t.Format(dayFormat)
}

// sameDay reports whether the stored day string names the calendar day of now.
func sameDay(storedDate string, now time.Time) bool {
	return storedDate == formatDay(now)
}
