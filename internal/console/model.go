package console

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/interiorpro/adminconsole/internal/assets"
	"github.com/interiorpro/adminconsole/internal/domain"
	"github.com/interiorpro/adminconsole/internal/session"
	"github.com/interiorpro/adminconsole/internal/store"
)

type view int

const (
	viewLogin view = iota
	viewDashboard
)

// Messages delivered through the bubbletea loop. Each asynchronous
// operation resumes here, on the single UI control thread; the form
// generation stamp lets late results for a since-closed form be
// ignored (stale-response guard).
type (
	toastMsg     struct{ toast Toast }
	toastTickMsg time.Time

	loginResultMsg struct {
		session *domain.Session
		err     error
	}

	listRefreshedMsg struct{ err error }

	submitResultMsg struct {
		gen int
		err error
	}

	uploadResultMsg struct {
		gen   int
		field int
		url   string
		err   error
	}

	deleteResultMsg struct {
		id  domain.ID
		err error
	}
)

// Model is the root console model.
type Model struct {
	gate *session.Gate
	orch *Orchestrator

	toastCh chan Toast
	toasts  toastModel

	view    view
	login   loginModel
	profile domain.Profile

	cursor  int
	loading bool

	draft     store.Draft
	form      formModel
	formOpen  bool
	formGen   int
	uploading bool

	confirms ConfirmStack

	width  int
	height int
}

// NewModel wires the model to the gate, orchestrator, and notifier.
// A persisted session, when valid, skips the login view.
func NewModel(gate *session.Gate, orch *Orchestrator, notify *Notifier) Model {
	m := Model{
		gate:    gate,
		orch:    orch,
		toastCh: make(chan Toast, 32),
		login:   newLoginModel(),
	}
	_ = notify.Subscribe(func(t Toast) {
		select {
		case m.toastCh <- t:
		default:
			// Never block a publishing operation on a slow view.
		}
	})
	if sess, ok := gate.Resume(); ok {
		m.view = viewDashboard
		m.profile = sess.Profile
		m.loading = true
	}
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{waitToast(m.toastCh), textinput.Blink}
	if m.view == viewDashboard {
		cmds = append(cmds, m.refreshCmd())
	}
	return tea.Batch(cmds...)
}

func waitToast(ch chan Toast) tea.Cmd {
	return func() tea.Msg { return toastMsg{toast: <-ch} }
}

func toastTick() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

func (m Model) refreshCmd() tea.Cmd {
	orch := m.orch
	return func() tea.Msg {
		return listRefreshedMsg{err: orch.Refresh(context.Background())}
	}
}

func (m Model) loginCmd(username, password string) tea.Cmd {
	gate := m.gate
	return func() tea.Msg {
		sess, err := gate.Login(username, password)
		return loginResultMsg{session: sess, err: err}
	}
}

func (m Model) submitCmd(gen int, draft store.Draft) tea.Cmd {
	orch := m.orch
	return func() tea.Msg {
		return submitResultMsg{gen: gen, err: orch.Submit(context.Background(), &draft)}
	}
}

func (m Model) deleteCmd(id domain.ID) tea.Cmd {
	orch := m.orch
	return func() tea.Msg {
		return deleteResultMsg{id: id, err: orch.Delete(context.Background(), id)}
	}
}

func (m Model) uploadCmd(gen, field int, kind assets.Kind, path string) tea.Cmd {
	orch := m.orch
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return uploadResultMsg{gen: gen, field: field,
				err: domain.Wrap(domain.KindValidation, "Could not read "+path, err)}
		}
		declared := mime.TypeByExtension(filepath.Ext(path))
		scratch := store.Draft{}
		url, err := orch.AttachAsset(context.Background(), &scratch, kind,
			filepath.Base(path), data, declared)
		return uploadResultMsg{gen: gen, field: field, url: url, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case toastMsg:
		m.toasts.add(msg.toast, time.Now())
		return m, tea.Batch(waitToast(m.toastCh), toastTick())

	case toastTickMsg:
		m.toasts.expire(time.Time(msg))
		if m.toasts.active() {
			return m, toastTick()
		}
		return m, nil

	case loginResultMsg:
		m.login.busy = false
		if msg.err != nil {
			m.login.errText = msg.err.Error()
			return m, nil
		}
		m.view = viewDashboard
		m.profile = msg.session.Profile
		m.loading = true
		return m, m.refreshCmd()

	case listRefreshedMsg:
		m.loading = false
		m.clampCursor()
		return m, nil

	case submitResultMsg:
		if msg.gen != m.formGen {
			// The form this result belongs to is gone.
			return m, nil
		}
		if msg.err == nil {
			m.closeForm()
		}
		return m, nil

	case uploadResultMsg:
		if msg.gen != m.formGen || !m.formOpen {
			return m, nil
		}
		m.uploading = false
		if msg.err == nil {
			m.form.inputs[msg.field].SetValue(msg.url)
		}
		return m, nil

	case deleteResultMsg:
		m.clampCursor()
		return m, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.view {
	case viewLogin:
		return m.updateLogin(msg)
	default:
		return m.updateDashboard(msg)
	}
}

func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd       tea.Cmd
		submitted bool
	)
	m.login, cmd, submitted = m.login.update(msg)
	if submitted {
		return m, m.loginCmd(strings.TrimSpace(m.login.username.Value()), m.login.password.Value())
	}
	return m, cmd
}

func (m Model) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.formOpen {
			var cmd tea.Cmd
			m.form, cmd = m.form.update(msg)
			return m, cmd
		}
		return m, nil
	}

	// Confirmation overlay swallows all input until answered. Each
	// open confirmation acts only on its own product id.
	if top, open := m.confirms.Top(); open {
		switch {
		case key.Matches(keyMsg, keys.Confirm):
			m.confirms.Resolve(top.ID)
			return m, m.deleteCmd(top.ID)
		case key.Matches(keyMsg, keys.Deny):
			m.confirms.Resolve(top.ID)
		}
		return m, nil
	}

	if m.formOpen {
		return m.updateForm(keyMsg)
	}

	products := m.orch.Store().Products()
	switch {
	case key.Matches(keyMsg, keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, keys.Down):
		if m.cursor < len(products)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, keys.Refresh):
		m.loading = true
		return m, m.refreshCmd()
	case key.Matches(keyMsg, keys.Add):
		m.draft.BeginCreate()
		m.openForm()
	case key.Matches(keyMsg, keys.Edit):
		if m.cursor < len(products) {
			m.draft.BeginEdit(products[m.cursor])
			m.openForm()
		}
	case key.Matches(keyMsg, keys.Delete):
		if m.cursor < len(products) {
			p := products[m.cursor]
			m.confirms.Push(Confirm{ID: p.ID, Name: p.Name})
		}
	case key.Matches(keyMsg, keys.Logout):
		m.gate.Logout()
		m.view = viewLogin
		m.login = newLoginModel()
		m.profile = domain.Profile{}
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) updateForm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.Cancel):
		m.closeForm()
		return m, nil
	case key.Matches(keyMsg, keys.Submit):
		// One submission per draft: the control is inert while an
		// upload or submit is pending.
		if m.uploading || m.orch.Submitting() {
			return m, nil
		}
		m.form.syncDraft(&m.draft)
		return m, m.submitCmd(m.formGen, m.draft)
	case key.Matches(keyMsg, keys.Upload):
		if m.uploading {
			return m, nil
		}
		field, path, ok := m.form.uploadTarget()
		if !ok || path == "" {
			return m, nil
		}
		if _, err := os.Stat(path); err != nil {
			// Not a local file; treat the text as a URL and leave it.
			return m, nil
		}
		kind := assets.Image
		if field == fieldVideo {
			kind = assets.Video
		}
		m.uploading = true
		return m, m.uploadCmd(m.formGen, field, kind, path)
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.update(keyMsg)
	return m, cmd
}

func (m *Model) openForm() {
	m.form = newFormModel(&m.draft)
	m.formOpen = true
	m.formGen++
	m.uploading = false
}

func (m *Model) closeForm() {
	m.draft.Reset()
	m.formOpen = false
	m.formGen++
	m.uploading = false
}

func (m *Model) clampCursor() {
	if n := m.orch.Store().Len(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) View() string {
	var b strings.Builder
	if toastView := m.toasts.view(); toastView != "" {
		b.WriteString(toastView)
		b.WriteString("\n\n")
	}

	if m.view == viewLogin {
		b.WriteString(m.login.view())
		return b.String()
	}

	products := m.orch.Store().Products()
	b.WriteString(titleStyle.Render("Product Dashboard"))
	b.WriteString("  ")
	stats := fmt.Sprintf("Total Products: %d", len(products))
	if len(products) > 0 {
		stats += "  •  Latest: " + formatCreated(products[0].CreatedAt, time.Now())
	}
	if m.profile.Name != "" {
		stats += "  •  " + m.profile.Name
	}
	b.WriteString(statStyle.Render(stats))
	b.WriteString("\n\n")

	if top, open := m.confirms.Top(); open {
		b.WriteString(m.confirmView(top))
		return b.String()
	}
	if m.formOpen {
		b.WriteString(m.form.view(m.uploading, m.orch.Submitting()))
		return b.String()
	}

	switch {
	case m.loading:
		b.WriteString(statStyle.Render("Loading products..."))
	case len(products) == 0:
		b.WriteString("No Products Found\n")
		b.WriteString(helpStyle.Render("Get started by adding your first product! (a)"))
	default:
		b.WriteString(m.productListView(products))
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("a: add • e: edit • d: delete • r: refresh • L: logout • q: quit"))
	return b.String()
}

// badges for the three most recent rows, mirroring the dashboard's
// new-product markers.
var recencyBadges = []string{"Newest", "Recent", "New"}

func (m Model) productListView(products []domain.Product) string {
	var b strings.Builder
	now := time.Now()
	for i, p := range products {
		line := fmt.Sprintf("%-30s %-10s %-14s %-12s %s",
			truncate(p.Name, 30), formatPrice(p.Price),
			truncate(p.Brand, 14), truncate(p.Category, 12),
			formatCreated(p.CreatedAt, now))
		if p.VideoURL != "" {
			line += "  [video]"
		}
		if i < len(recencyBadges) {
			line += "  " + badgeStyle.Render(recencyBadges[i])
		}
		if i == m.cursor {
			line = selectedRowStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		if i < len(products)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) confirmView(c Confirm) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		"Are you sure you want to delete?",
		statStyle.Render(c.Name),
		"",
		helpStyle.Render("y: yes, delete • n: cancel"),
	)
	suffix := ""
	if n := m.confirms.Len(); n > 1 {
		suffix = "\n" + statStyle.Render(fmt.Sprintf("(%d more pending)", n-1))
	}
	return overlayStyle.Render(body) + suffix
}

// truncate shortens s to at most n runes, never cutting a rune apart.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 1 {
		return string(runes[:n])
	}
	return string(runes[:n-1]) + "…"
}

// Run starts the console program on the alternate screen.
func Run(gate *session.Gate, orch *Orchestrator, notify *Notifier) error {
	program := tea.NewProgram(NewModel(gate, orch, notify), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
