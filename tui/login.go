package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cinepass-cli/model"
)

type loginForm struct {
	email    textinput.Model
	password textinput.Model
	focus    int
	notice   string
}

func newLoginForm() loginForm {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.Prompt = "Email    > "
	email.CharLimit = 120
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.Prompt = "Password > "
	password.CharLimit = 120
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return loginForm{email: email, password: password}
}

func (f loginForm) credentials() model.Credentials {
	return model.Credentials{
		Email:    strings.TrimSpace(f.email.Value()),
		Password: f.password.Value(),
	}
}

func (f loginForm) update(msg tea.Msg) (loginForm, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	f.email, cmd = f.email.Update(msg)
	cmds = append(cmds, cmd)
	f.password, cmd = f.password.Update(msg)
	cmds = append(cmds, cmd)
	return f, tea.Batch(cmds...)
}

func (f loginForm) cycleFocus() loginForm {
	f.focus = (f.focus + 1) % 2
	if f.focus == 0 {
		f.email.Focus()
		f.password.Blur()
	} else {
		f.email.Blur()
		f.password.Focus()
	}
	return f
}

func (f loginForm) view(err error) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Sign in"))
	b.WriteString("\n\n")
	if f.notice != "" {
		b.WriteString(hint(f.notice) + "\n\n")
	}
	b.WriteString(f.email.View() + "\n")
	b.WriteString(f.password.View() + "\n\n")
	b.WriteString(hint("enter sign in • tab switch field • ctrl+c quit"))
	b.WriteString("\n" + hint("need an account? run: cinepass register"))
	if err != nil {
		b.WriteString("\n\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(err.Error()))
	}
	return b.String()
}
