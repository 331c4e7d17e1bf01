package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBookingReference(t *testing.T) {
	ref := NewBookingReference()

	assert.True(t, strings.HasPrefix(ref, "EVT-"))
	assert.Len(t, ref, len("EVT-")+12)
	assert.Equal(t, ref, strings.ToUpper(ref))
	assert.NotEqual(t, ref, NewBookingReference())
}

func TestNewConversationID(t *testing.T) {
	id := NewConversationID()

	assert.True(t, strings.HasPrefix(id, "conv_"))
	assert.Len(t, id, len("conv_")+13)
	assert.NotEqual(t, id, NewConversationID())
}
