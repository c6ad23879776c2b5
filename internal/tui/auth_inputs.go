package tui

import (
	"strings"

	"github.com/MKhiriev/go-house-builder/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	signInEmail = iota
	signInPassword
)

const (
	signUpName = iota
	signUpEmail
	signUpPassword
	signUpConfirm
)

// authInputs holds the text inputs of both auth forms. It is shared by
// pointer with the delegator handlers, which read the submitted values.
type authInputs struct {
	signIn      []textinput.Model
	signUp      []textinput.Model
	signInFocus int
	signUpFocus int
}

func newInput(placeholder string, limit int, secret bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	return in
}

func newAuthInputs() *authInputs {
	a := &authInputs{
		signIn: []textinput.Model{
			newInput("email", 254, false),
			newInput("password", 256, true),
		},
		signUp: []textinput.Model{
			newInput("full name", 100, false),
			newInput("email", 254, false),
			newInput("password", 256, true),
			newInput("confirm password", 256, true),
		},
	}
	a.focusTab(models.TabSignIn)
	return a
}

func (a *authInputs) form(tab models.AuthTab) ([]textinput.Model, *int) {
	if tab == models.TabSignUp {
		return a.signUp, &a.signUpFocus
	}
	return a.signIn, &a.signInFocus
}

// focusTab focuses the remembered input of tab and blurs everything else.
func (a *authInputs) focusTab(tab models.AuthTab) {
	for i := range a.signIn {
		a.signIn[i].Blur()
	}
	for i := range a.signUp {
		a.signUp[i].Blur()
	}

	inputs, focus := a.form(tab)
	inputs[*focus].Focus()
}

func (a *authInputs) focusNext(tab models.AuthTab) {
	inputs, focus := a.form(tab)
	inputs[*focus].Blur()
	*focus = (*focus + 1) % len(inputs)
	inputs[*focus].Focus()
}

func (a *authInputs) focusPrev(tab models.AuthTab) {
	inputs, focus := a.form(tab)
	inputs[*focus].Blur()
	*focus = (*focus - 1 + len(inputs)) % len(inputs)
	inputs[*focus].Focus()
}

// update forwards msg to the focused input of tab.
func (a *authInputs) update(tab models.AuthTab, msg tea.Msg) tea.Cmd {
	inputs, focus := a.form(tab)

	var cmd tea.Cmd
	inputs[*focus], cmd = inputs[*focus].Update(msg)
	return cmd
}

func (a *authInputs) credentials() (email, password string) {
	return a.signIn[signInEmail].Value(), a.signIn[signInPassword].Value()
}

func (a *authInputs) registerRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Name:            strings.TrimSpace(a.signUp[signUpName].Value()),
		Email:           strings.TrimSpace(a.signUp[signUpEmail].Value()),
		Password:        a.signUp[signUpPassword].Value(),
		ConfirmPassword: a.signUp[signUpConfirm].Value(),
	}
}

func (a *authInputs) resetSignIn() {
	for i := range a.signIn {
		a.signIn[i].Reset()
	}
	a.signInFocus = signInEmail
}

func (a *authInputs) resetSignUp() {
	for i := range a.signUp {
		a.signUp[i].Reset()
	}
	a.signUpFocus = signUpName
}

// clearPasswords drops secrets but keeps the typed email and name.
func (a *authInputs) clearPasswords() {
	a.signIn[signInPassword].Reset()
	a.signUp[signUpPassword].Reset()
	a.signUp[signUpConfirm].Reset()
}

var (
	signInLabels = []string{"Email", "Password"}
	signUpLabels = []string{"Full name", "Email", "Password", "Confirm"}
)

func (a *authInputs) view(tab models.AuthTab, pending bool) string {
	inputs, _ := a.form(tab)
	labels, submit, busy := signInLabels, "[ Sign In ]", "[ Signing in... ]"
	if tab == models.TabSignUp {
		labels, submit, busy = signUpLabels, "[ Sign Up ]", "[ Signing up... ]"
	}

	var b strings.Builder
	for i, in := range inputs {
		b.WriteString(padLabel(labels[i]))
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if pending {
		b.WriteString(helpStyle.Render(busy))
	} else {
		b.WriteString(submit)
	}

	return b.String()
}

func padLabel(label string) string {
	const width = 11
	if len(label) >= width {
		return label + " "
	}
	return label + strings.Repeat(" ", width-len(label))
}
