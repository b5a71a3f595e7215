package entities

import (
	"math"
	"time"
)

type ExpiryTier string

const (
	TierExpired ExpiryTier = "Expired"
	TierUrgent  ExpiryTier = "Urgent"
	TierSoon    ExpiryTier = "Soon"
	TierFresh   ExpiryTier = "Fresh"
)

type ExpiryClassification struct {
	DaysLeft int        `json:"days_left"`
	Tier     ExpiryTier `json:"tier"`
}

// ClassifyExpiry reports how many days remain until expiry and the
// matching status tier. Fractional days round up, so an item expiring in
// 2.1 days reports 3 days left.
func ClassifyExpiry(expiryDate, now time.Time) ExpiryClassification {
	daysLeft := int(math.Ceil(expiryDate.Sub(now).Hours() / 24))

	var tier ExpiryTier
	switch {
	case daysLeft < 0:
		tier = TierExpired
	case daysLeft <= 1:
		tier = TierUrgent
	case daysLeft <= 3:
		tier = TierSoon
	default:
		tier = TierFresh
	}

	return ExpiryClassification{DaysLeft: daysLeft, Tier: tier}
}
