package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/ui"
)

type step struct {
	text string
	done bool
}

// typing streams the hero headline as server-sent events: one "typed" event
// per revealed character, then a single "done" event with the full text.
// The pending step is cancelled as soon as the client goes away.
func (a *app) typing(c *gin.Context) {
	tw := ui.NewTypewriter(a.portfolio.Profile.TypedText(), a.clock, a.cfg.TypingDelay)
	defer tw.Stop()

	finish := a.metrics.TypingStarted()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	// Room for every step, so the timer callback never blocks.
	steps := make(chan step, tw.Len()+1)
	if !tw.Start(func(text string, done bool) {
		steps <- step{text: text, done: done}
	}) {
		c.SSEvent("done", tw.Text())
		c.Writer.Flush()
		finish("completed")
		return
	}
	c.Writer.Flush()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			finish("cancelled")
			return
		case s := <-steps:
			c.SSEvent("typed", s.text)
			if s.done {
				c.SSEvent("done", s.text)
				c.Writer.Flush()
				finish("completed")
				return
			}
			c.Writer.Flush()
		}
	}
}
