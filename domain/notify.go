package domain

import (
	"errors"
)

var (
	MessageSuccessSendDigest = "expiry digest sent successfully"
	MessageFailedSendDigest  = "failed to send expiry digest"

	ErrNoDigestRecipient = errors.New("no digest recipient configured")
	ErrNothingExpiring   = errors.New("no items expiring soon")
)

type SendDigestRequest struct {
	Recipient string `json:"recipient,omitempty" validate:"omitempty,email"`
}
