package httphandler

import "time"

// SetNow replaces the handler clock in tests.
func (h *Handler) SetNow(now func() time.Time) {
	h.now = now
}
