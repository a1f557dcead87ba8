package widget

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"support-widget/internal/model/support"
)

// fakeSurface records every controller interaction.
type fakeSurface struct {
	fields        map[string]string
	chatVisible   bool
	transcript    []Message
	scrolls       int
	notifications []string
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{fields: make(map[string]string)}
}

func (f *fakeSurface) FieldValue(name string) string { return f.fields[name] }
func (f *fakeSurface) SetFieldValue(name, value string) { f.fields[name] = value }
func (f *fakeSurface) ShowChat() { f.chatVisible = true }
func (f *fakeSurface) AppendMessage(msg Message) { f.transcript = append(f.transcript, msg) }
func (f *fakeSurface) ScrollToBottom() { f.scrolls++ }
func (f *fakeSurface) Notify(text string) { f.notifications = append(f.notifications, text) }

type fakeClient struct {
	resp support.Response
	err  error
	sent []support.Request
}

func (f *fakeClient) Send(_ context.Context, req support.Request) (support.Response, error) {
	f.sent = append(f.sent, req)
	return f.resp, f.err
}

func login(t *testing.T, c *Controller, surface *fakeSurface, name, id string) {
	t.Helper()
	surface.fields[FieldUserName] = name
	surface.fields[FieldUserID] = id
	require.NoError(t, c.StartChat())
}

func TestStartChatSuccess(t *testing.T) {
	surface := newFakeSurface()
	c := New(surface, &fakeClient{})
	surface.fields[FieldUserName] = "  Ada  "
	surface.fields[FieldUserID] = "u1"

	require.NoError(t, c.StartChat())

	require.True(t, surface.chatVisible)
	require.Equal(t, Session{Name: "Ada", ID: "u1"}, c.Session())
	require.Len(t, surface.transcript, 1)
	greeting := surface.transcript[0]
	require.Equal(t, support.AuthorBot, greeting.Author)
	require.Contains(t, greeting.Content, "Ada")
}

func TestStartChatValidation(t *testing.T) {
	for _, tc := range []struct{ name, id string }{
		{"", ""},
		{"Ada", ""},
		{"", "u1"},
		{"   ", "u1"},
		{"Ada", "\t\n"},
	} {
		surface := newFakeSurface()
		c := New(surface, &fakeClient{})
		surface.fields[FieldUserName] = tc.name
		surface.fields[FieldUserID] = tc.id

		err := c.StartChat()

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr, "name=%q id=%q", tc.name, tc.id)
		require.False(t, surface.chatVisible)
		require.Empty(t, surface.transcript)
		require.Equal(t, Session{}, c.Session())
		require.Len(t, surface.notifications, 1)
	}
}

func TestStartChatIsIdempotentAfterSuccess(t *testing.T) {
	surface := newFakeSurface()
	c := New(surface, &fakeClient{})
	login(t, c, surface, "Ada", "u1")

	surface.fields[FieldUserName] = "Eve"
	err := c.StartChat()

	require.ErrorIs(t, err, ErrAlreadyStarted)
	require.Equal(t, Session{Name: "Ada", ID: "u1"}, c.Session())
	require.Len(t, surface.transcript, 1, "no duplicate greeting")
}

func TestSendMessageSuccess(t *testing.T) {
	surface := newFakeSurface()
	cl := &fakeClient{resp: support.Response{Response: "hi"}}
	c := New(surface, cl)
	login(t, c, surface, "Ada", "u1")
	surface.fields[FieldUserMessage] = "hello"

	require.NoError(t, c.SendMessage(context.Background()))

	require.Equal(t, "", surface.fields[FieldUserMessage], "input cleared")
	require.Len(t, surface.transcript, 3) // greeting, user, bot
	require.Equal(t, support.AuthorUser, surface.transcript[1].Author)
	require.Equal(t, "hello", surface.transcript[1].Content)
	require.Equal(t, support.AuthorBot, surface.transcript[2].Author)
	require.Equal(t, "<p>hi</p>", surface.transcript[2].Content)
	require.Equal(t, 1, surface.scrolls)

	require.Len(t, cl.sent, 1)
	require.Equal(t, "u1", cl.sent[0].UserID)
	require.Equal(t, support.UserDetails{UserID: "u1", Name: "Ada"}, cl.sent[0].UserDetails)
	require.Equal(t, "hello", cl.sent[0].UserMessage)
}

func TestSendMessageTransportFailure(t *testing.T) {
	surface := newFakeSurface()
	cl := &fakeClient{err: errors.New("connection refused")}
	c := New(surface, cl)
	login(t, c, surface, "Ada", "u1")
	surface.fields[FieldUserMessage] = "hello"

	require.NoError(t, c.SendMessage(context.Background()))

	require.Len(t, surface.transcript, 3)
	bot := surface.transcript[2]
	require.Equal(t, support.AuthorBot, bot.Author)
	require.Equal(t, "Error: Unable to reach the server.", bot.Content)
	require.Equal(t, 1, surface.scrolls)
}

func TestSendMessageServerErrorField(t *testing.T) {
	surface := newFakeSurface()
	cl := &fakeClient{resp: support.Response{Error: "agent unavailable"}}
	c := New(surface, cl)
	login(t, c, surface, "Ada", "u1")
	surface.fields[FieldUserMessage] = "hello"

	require.NoError(t, c.SendMessage(context.Background()))
	require.Equal(t, "<p>agent unavailable</p>", surface.transcript[2].Content)
}

func TestSendMessageEmptyResponseShape(t *testing.T) {
	surface := newFakeSurface()
	cl := &fakeClient{resp: support.Response{}}
	c := New(surface, cl)
	login(t, c, surface, "Ada", "u1")
	surface.fields[FieldUserMessage] = "hello"

	require.NoError(t, c.SendMessage(context.Background()))
	require.Equal(t, "<p>No response</p>", surface.transcript[2].Content)
}

func TestSendMessageWhitespaceSkip(t *testing.T) {
	surface := newFakeSurface()
	cl := &fakeClient{}
	c := New(surface, cl)
	login(t, c, surface, "Ada", "u1")
	surface.fields[FieldUserMessage] = "   \n\t "

	require.NoError(t, c.SendMessage(context.Background()))

	require.Len(t, surface.transcript, 1, "only the greeting")
	require.Empty(t, cl.sent, "no network call")
	require.Equal(t, "   \n\t ", surface.fields[FieldUserMessage], "input untouched")
}

func TestSendMessageBeforeLogin(t *testing.T) {
	surface := newFakeSurface()
	c := New(surface, &fakeClient{})
	surface.fields[FieldUserMessage] = "hello"

	err := c.SendMessage(context.Background())
	require.ErrorIs(t, err, ErrNotStarted)
	require.Empty(t, surface.transcript)
}

func TestSendMessagePreservesUntrimmedText(t *testing.T) {
	surface := newFakeSurface()
	cl := &fakeClient{resp: support.Response{Response: "ok"}}
	c := New(surface, cl)
	login(t, c, surface, "Ada", "u1")
	surface.fields[FieldUserMessage] = "  padded message  "

	require.NoError(t, c.SendMessage(context.Background()))
	require.Equal(t, "  padded message  ", cl.sent[0].UserMessage)
}

func TestUserContentIsEscaped(t *testing.T) {
	surface := newFakeSurface()
	cl := &fakeClient{resp: support.Response{Response: "ok"}}
	c := New(surface, cl)
	login(t, c, surface, "<b>Ada</b>", "u1")
	surface.fields[FieldUserMessage] = "<img src=x>"

	require.NoError(t, c.SendMessage(context.Background()))

	require.Contains(t, surface.transcript[0].Content, "&lt;b&gt;Ada&lt;/b&gt;")
	require.Equal(t, "&lt;img src=x&gt;", surface.transcript[1].Content)
}

func TestOutOfOrderCompletionsFlushInSendOrder(t *testing.T) {
	surface := newFakeSurface()
	c := New(surface, &fakeClient{})
	login(t, c, surface, "Ada", "u1")

	surface.fields[FieldUserMessage] = "first"
	p1, err := c.BeginSend()
	require.NoError(t, err)
	surface.fields[FieldUserMessage] = "second"
	p2, err := c.BeginSend()
	require.NoError(t, err)
	require.Less(t, p1.Seq, p2.Seq)

	// The second reply lands first; nothing may flush yet.
	c.Complete(p2, support.Response{Response: "reply two"}, nil)
	require.Len(t, surface.transcript, 3) // greeting + two user messages
	require.Equal(t, 0, surface.scrolls)

	c.Complete(p1, support.Response{Response: "reply one"}, nil)
	require.Len(t, surface.transcript, 5)
	require.Equal(t, "<p>reply one</p>", surface.transcript[3].Content)
	require.Equal(t, "<p>reply two</p>", surface.transcript[4].Content)
	require.Equal(t, 1, surface.scrolls)
}

func TestConcurrentCompletionsFlushInSendOrder(t *testing.T) {
	surface := newFakeSurface()
	c := New(surface, &fakeClient{})
	login(t, c, surface, "Ada", "u1")

	const sends = 8
	pendings := make([]*Pending, 0, sends)
	for i := 0; i < sends; i++ {
		surface.fields[FieldUserMessage] = fmt.Sprintf("message %d", i)
		p, err := c.BeginSend()
		require.NoError(t, err)
		pendings = append(pendings, p)
	}
	base := len(surface.transcript)

	// Replies land from concurrent goroutines in reverse order.
	var wg sync.WaitGroup
	for i := len(pendings) - 1; i >= 0; i-- {
		wg.Add(1)
		go func(p *Pending) {
			defer wg.Done()
			c.Complete(p, support.Response{Response: fmt.Sprintf("reply %d", p.Seq)}, nil)
		}(pendings[i])
	}
	wg.Wait()

	replies := surface.transcript[base:]
	require.Len(t, replies, sends)
	for i, msg := range replies {
		require.Equal(t, support.AuthorBot, msg.Author)
		require.Equal(t, fmt.Sprintf("<p>reply %d</p>", i+1), msg.Content)
	}
}
