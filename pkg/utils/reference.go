package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewBookingReference generates the immutable human-readable code assigned
// to a booking at creation, e.g. "EVT-9F1C2B7A4D3E".
func NewBookingReference() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "EVT-" + id[:12]
}

// NewConversationID generates an id for a recommendation conversation.
func NewConversationID() string {
	return "conv_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:13]
}
