// Package widget implements the support chat widget: a login flow that
// captures the user's identity, and a message exchange that posts each
// message to the support endpoint and renders the formatted reply.
package widget

import (
	"context"
	"html"
	"log"
	"strings"
	"sync"

	"support-widget/internal/format"
	"support-widget/internal/model/support"
)

// Fixed reply texts. transportErrorText is shown verbatim for any
// transport, status, or parse failure; the underlying error is only logged.
const (
	transportErrorText = "Error: Unable to reach the server."
	emptyReplyText     = "No response"
)

// SupportClient posts one support request and returns the decoded reply.
type SupportClient interface {
	Send(ctx context.Context, req support.Request) (support.Response, error)
}

// Session is the logged-in user's identity, valid for the widget's lifetime.
type Session struct {
	Name string
	ID   string
}

// Controller owns the widget state: the session, the surface it renders
// to, and the in-flight send bookkeeping. Completions are flushed to the
// transcript strictly in send order, so rapid-fire sends cannot interleave
// their replies.
type Controller struct {
	surface Surface
	client  SupportClient

	mu        sync.Mutex
	session   Session
	started   bool
	nextSeq   uint64
	flushed   uint64
	completed map[uint64]Message

	// flushMu is held across an entire flush, so batches from concurrent
	// Complete calls reach the surface without interleaving.
	flushMu sync.Mutex
}

// New creates a controller rendering to surface and sending via client.
func New(surface Surface, client SupportClient) *Controller {
	return &Controller{
		surface:   surface,
		client:    client,
		completed: make(map[uint64]Message),
	}
}

// Session returns the current session identity. Both fields are empty
// before a successful login.
func (c *Controller) Session() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Started reports whether login has completed.
func (c *Controller) Started() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.started
}

// StartChat validates the login fields and, on first success, commits the
// session, switches the surface to the chat view, and appends the
// greeting. Empty fields surface a notification and change nothing.
// Calling again after a successful login is a no-op returning
// ErrAlreadyStarted.
func (c *Controller) StartChat() error {
	name := strings.TrimSpace(c.surface.FieldValue(FieldUserName))
	id := strings.TrimSpace(c.surface.FieldValue(FieldUserID))

	if name == "" {
		err := &ValidationError{Field: "name"}
		c.surface.Notify("Please enter both your name and user ID.")
		return err
	}
	if id == "" {
		err := &ValidationError{Field: "user id"}
		c.surface.Notify("Please enter both your name and user ID.")
		return err
	}

	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return ErrAlreadyStarted
	}
	c.session = Session{Name: name, ID: id}
	c.started = true
	c.mu.Unlock()

	c.surface.ShowChat()
	c.surface.AppendMessage(Message{
		Author:  support.AuthorBot,
		Content: "Hello " + html.EscapeString(name) + "! How can I assist you today?",
	})
	return nil
}

// Pending describes one accepted send awaiting its reply.
type Pending struct {
	Seq     uint64
	Request support.Request
}

// BeginSend reads the message field and, for non-empty input, clears the
// field, appends the user's message to the transcript, and returns the
// request to post. Empty-after-trim input returns (nil, nil): no message,
// no network call. The returned Pending must be handed to Complete.
func (c *Controller) BeginSend() (*Pending, error) {
	c.mu.Lock()
	if !c.started {
		c.mu.Unlock()
		return nil, ErrNotStarted
	}
	session := c.session
	c.mu.Unlock()

	raw := c.surface.FieldValue(FieldUserMessage)
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	// Clear before the network call so the box never shows a stale
	// pending message.
	c.surface.SetFieldValue(FieldUserMessage, "")
	c.surface.AppendMessage(Message{
		Author:  support.AuthorUser,
		Content: html.EscapeString(raw),
	})

	c.mu.Lock()
	c.nextSeq++
	seq := c.nextSeq
	c.mu.Unlock()

	return &Pending{
		Seq: seq,
		Request: support.Request{
			UserID: session.ID,
			UserDetails: support.UserDetails{
				UserID: session.ID,
				Name:   session.Name,
			},
			UserMessage: raw,
		},
	}, nil
}

// Complete resolves one pending send. Success renders the formatted reply;
// any failure renders the fixed transport error text and logs the cause.
// The resulting bot message is flushed to the transcript only once every
// earlier send has been flushed; this holds even when Complete is called
// from concurrent goroutines.
func (c *Controller) Complete(p *Pending, resp support.Response, err error) {
	var content string
	switch {
	case err != nil:
		log.Printf("[widget] send %d failed: %v", p.Seq, err)
		content = transportErrorText
	case resp.Response != "":
		content = format.Response(resp.Response)
	case resp.Error != "":
		content = format.Response(resp.Error)
	default:
		content = format.Response(emptyReplyText)
	}

	c.flushMu.Lock()
	defer c.flushMu.Unlock()

	c.mu.Lock()
	c.completed[p.Seq] = Message{Author: support.AuthorBot, Content: content}
	var flushable []Message
	for {
		msg, ok := c.completed[c.flushed+1]
		if !ok {
			break
		}
		delete(c.completed, c.flushed+1)
		c.flushed++
		flushable = append(flushable, msg)
	}
	c.mu.Unlock()

	for _, msg := range flushable {
		c.surface.AppendMessage(msg)
	}
	if len(flushable) > 0 {
		c.surface.ScrollToBottom()
	}
}

// SendMessage performs one full exchange synchronously: BeginSend, the
// network call, Complete. Transport failures are converted into a
// transcript entry rather than returned, per the widget's propagation
// policy; only ErrNotStarted reaches the caller.
func (c *Controller) SendMessage(ctx context.Context) error {
	p, err := c.BeginSend()
	if err != nil || p == nil {
		return err
	}

	resp, err := c.client.Send(ctx, p.Request)
	c.Complete(p, resp, err)
	return nil
}
