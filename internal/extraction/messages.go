package extraction

import (
	"errors"
	"strings"

	"github.com/2beens/coachshot/internal/quota"
)

const (
	MsgNotConfigured      = "Server API key not configured"
	MsgUnauthenticated    = "Authentication required"
	MsgQuotaExceeded      = "Daily upload limit reached. Please try again tomorrow."
	MsgRateLimited        = "Rate limit exceeded. Please try again in a minute."
	MsgFailedToProcessImg = "Failed to process image."
)

// UserMessage maps an extraction error to the string shown to the user.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotConfigured):
		return MsgNotConfigured
	case errors.Is(err, ErrUnauthenticated):
		return MsgUnauthenticated
	case errors.Is(err, quota.ErrQuotaExceeded):
		return MsgQuotaExceeded
	case errors.Is(err, ErrRateLimited), strings.Contains(err.Error(), "429"):
		return MsgRateLimited
	default:
		return MsgFailedToProcessImg
	}
}
