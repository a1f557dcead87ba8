package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"support-widget/internal/model/support"
	"support-widget/internal/widget"
)

type viewMode int

const (
	loginView viewMode = iota
	chatView
)

// sendResultMsg carries one finished request back into the update loop.
type sendResultMsg struct {
	pending *widget.Pending
	resp    support.Response
	err     error
}

// Model is the terminal host for the widget controller. It implements
// widget.Surface, so the controller drives the login form, the
// transcript viewport, and the message input without knowing about
// bubbletea.
type Model struct {
	controller *widget.Controller
	client     widget.SupportClient
	timeout    time.Duration
	styles     Styles

	mode         viewMode
	nameInput    textinput.Model
	idInput      textinput.Model
	messageInput textinput.Model
	vp           viewport.Model

	lines    []string
	status   string
	width    int
	height   int
	ready    bool
	inFlight int
}

// NewModel wires a fresh controller to a terminal surface.
func NewModel(client widget.SupportClient, timeout time.Duration) *Model {
	name := textinput.New()
	name.Placeholder = "Name"
	name.CharLimit = 64
	name.Focus()

	id := textinput.New()
	id.Placeholder = "User ID"
	id.CharLimit = 64

	msg := textinput.New()
	msg.Placeholder = "Type a message"
	msg.CharLimit = 1024

	m := &Model{
		client:       client,
		timeout:      timeout,
		styles:       DefaultStyles(),
		mode:         loginView,
		nameInput:    name,
		idInput:      id,
		messageInput: msg,
	}
	m.controller = widget.New(m, client)
	return m
}

// FieldValue implements widget.Surface.
func (m *Model) FieldValue(name string) string {
	switch name {
	case widget.FieldUserName:
		return m.nameInput.Value()
	case widget.FieldUserID:
		return m.idInput.Value()
	case widget.FieldUserMessage:
		return m.messageInput.Value()
	}
	return ""
}

// SetFieldValue implements widget.Surface.
func (m *Model) SetFieldValue(name, value string) {
	switch name {
	case widget.FieldUserName:
		m.nameInput.SetValue(value)
	case widget.FieldUserID:
		m.idInput.SetValue(value)
	case widget.FieldUserMessage:
		m.messageInput.SetValue(value)
	}
}

// ShowChat implements widget.Surface.
func (m *Model) ShowChat() {
	m.mode = chatView
	m.status = ""
	m.nameInput.Blur()
	m.idInput.Blur()
	m.messageInput.Focus()
}

// AppendMessage implements widget.Surface.
func (m *Model) AppendMessage(msg widget.Message) {
	m.lines = append(m.lines, renderMessage(msg, m.styles))
	m.vp.SetContent(strings.Join(m.lines, "\n\n"))
}

// ScrollToBottom implements widget.Surface.
func (m *Model) ScrollToBottom() {
	m.vp.GotoBottom()
}

// Notify implements widget.Surface.
func (m *Model) Notify(text string) {
	m.status = text
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := msg.Height - 5
		if vpHeight < 3 {
			vpHeight = 3
		}
		if !m.ready {
			m.vp = viewport.New(msg.Width, vpHeight)
			m.vp.SetContent(strings.Join(m.lines, "\n\n"))
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = vpHeight
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}
		if m.mode == loginView {
			return m.updateLogin(msg)
		}
		return m.updateChat(msg)

	case sendResultMsg:
		m.inFlight--
		m.controller.Complete(msg.pending, msg.resp, msg.err)
		return m, nil
	}

	return m.updateInputs(msg)
}

func (m *Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		if m.nameInput.Focused() {
			m.nameInput.Blur()
			m.idInput.Focus()
		} else {
			m.idInput.Blur()
			m.nameInput.Focus()
		}
		return m, textinput.Blink

	case "enter":
		err := m.controller.StartChat()
		var verr *widget.ValidationError
		switch {
		case err == nil, errors.Is(err, widget.ErrAlreadyStarted):
		case errors.As(err, &verr):
			// The controller already posted the notification.
		default:
			m.status = err.Error()
		}
		return m, nil
	}
	return m.updateInputs(msg)
}

func (m *Model) updateChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		pending, err := m.controller.BeginSend()
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		if pending == nil {
			return m, nil
		}
		m.inFlight++
		return m, m.sendCmd(pending)

	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}
	return m.updateInputs(msg)
}

// sendCmd issues the request off the update loop and reports back with a
// sendResultMsg.
func (m *Model) sendCmd(p *widget.Pending) tea.Cmd {
	client, timeout := m.client, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		resp, err := client.Send(ctx, p.Request)
		return sendResultMsg{pending: p, resp: resp, err: err}
	}
}

func (m *Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	cmds = append(cmds, cmd)
	m.idInput, cmd = m.idInput.Update(msg)
	cmds = append(cmds, cmd)
	m.messageInput, cmd = m.messageInput.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *Model) View() string {
	if m.mode == loginView {
		return m.loginViewRender()
	}
	return m.chatViewRender()
}

func (m *Model) loginViewRender() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Support Chat"))
	b.WriteString("\n\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n")
	b.WriteString(m.idInput.View())
	b.WriteString("\n\n")
	if m.status != "" {
		b.WriteString(m.styles.Status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Hint.Render("tab: switch field • enter: start chat • esc: quit"))
	return b.String()
}

func (m *Model) chatViewRender() string {
	if !m.ready {
		return "loading..."
	}
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Support Chat"))
	b.WriteString("\n")
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	b.WriteString(m.messageInput.View())
	b.WriteString("\n")
	if m.inFlight > 0 {
		b.WriteString(m.styles.Hint.Render("waiting for reply..."))
	} else if m.status != "" {
		b.WriteString(m.styles.Status.Render(m.status))
	} else {
		b.WriteString(m.styles.Hint.Render("enter: send • esc: quit"))
	}
	return b.String()
}
