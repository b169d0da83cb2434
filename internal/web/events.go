package web

import (
	"io"

	"github.com/gin-gonic/gin"
)

// events streams a server-sent event each time a store changes. Signals
// carry no payload, so the stream only tells the page which store to
// re-read. Bursts coalesce into a single event per source.
func (h *Handler) events(c *gin.Context) {
	session := make(chan struct{}, 1)
	admin := make(chan struct{}, 1)

	note := func(ch chan struct{}) func() {
		return func() {
			select {
			case ch <- struct{}{}:
			default:
			}
		}
	}

	cancelSession := h.users.Changed().Subscribe(note(session))
	defer cancelSession()
	cancelAdmin := h.admin.Changed().Subscribe(note(admin))
	defer cancelAdmin()

	c.Writer.Header().Set("Cache-Control", "no-cache")

	c.Stream(func(w io.Writer) bool {
		select {
		case <-session:
			c.SSEvent("change", gin.H{"store": "session"})
		case <-admin:
			c.SSEvent("change", gin.H{"store": "admin"})
		case <-c.Request.Context().Done():
			return false
		}
		return true
	})
}
