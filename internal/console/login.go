package console

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// loginModel is the credential form shown before the dashboard.
type loginModel struct {
	username textinput.Model
	password textinput.Model
	focus    int
	busy     bool
	errText  string
}

func newLoginModel() loginModel {
	username := textinput.New()
	username.Placeholder = "Enter your username"
	username.CharLimit = 64
	username.Focus()

	password := textinput.New()
	password.Placeholder = "Enter your password"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return loginModel{username: username, password: password}
}

const loginFieldCount = 2

func (m *loginModel) setFocus(focus int) {
	m.focus = focus
	if focus == 0 {
		m.username.Focus()
		m.password.Blur()
	} else {
		m.password.Focus()
		m.username.Blur()
	}
}

// update routes key input. It reports submitted=true when the operator
// pressed enter with both fields non-empty.
func (m loginModel) update(msg tea.Msg) (loginModel, tea.Cmd, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			m.setFocus((m.focus + 1) % loginFieldCount)
			return m, textinput.Blink, false
		case "shift+tab", "up":
			m.setFocus((m.focus + loginFieldCount - 1) % loginFieldCount)
			return m, textinput.Blink, false
		case "enter":
			if m.busy {
				return m, nil, false
			}
			if strings.TrimSpace(m.username.Value()) == "" || m.password.Value() == "" {
				m.errText = "Username and password are required"
				return m, nil, false
			}
			m.errText = ""
			m.busy = true
			return m, nil, true
		}
	}
	var cmd tea.Cmd
	if m.focus == 0 {
		m.username, cmd = m.username.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd, false
}

func (m loginModel) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("InteriorDesign Pro — Admin Portal"))
	b.WriteString("\n\n")
	if m.errText != "" {
		b.WriteString(errorTextStyle.Render("⚠ " + m.errText))
		b.WriteString("\n\n")
	}
	b.WriteString(labelStyle.Render("Username") + m.username.View() + "\n")
	b.WriteString(labelStyle.Render("Password") + m.password.View() + "\n\n")
	if m.busy {
		b.WriteString(statStyle.Render("Authenticating..."))
	} else {
		b.WriteString(helpStyle.Render("enter: access dashboard • tab: switch field • ctrl+c: quit"))
	}
	return overlayStyle.Render(b.String())
}
