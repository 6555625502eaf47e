// Package prompt asks the user to confirm destructive operations.
package prompt

import (
	"errors"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/conn-castle/wtg/internal/messages"
	"github.com/conn-castle/wtg/internal/terminal"
)

var (
	// ErrRequiresTerminal is returned when a prompt is shown without a TTY.
	ErrRequiresTerminal = errors.New(messages.PromptRequiresTerminal)
	// ErrCancelled is returned when the user aborts the prompt.
	ErrCancelled = errors.New(messages.PromptCancelled)
)

// Confirmer asks a yes/no question.
type Confirmer interface {
	Confirm(title, description string) (bool, error)
}

// HuhUI implements Confirmer using charmbracelet/huh.
type HuhUI struct {
	isTerminal func() bool
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// NewHuhUI creates a HuhUI using terminal.IsInteractive.
func NewHuhUI() *HuhUI {
	return &HuhUI{isTerminal: terminal.IsInteractive}
}

func (ui *HuhUI) ensureInteractive() error {
	checker := ui.isTerminal
	if checker == nil {
		checker = terminal.IsInteractive
	}
	if checker() {
		return nil
	}
	return ErrRequiresTerminal
}

// keyMap aborts on both Esc and Ctrl+C.
func keyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"))
	return km
}

// interruptFilter turns InterruptMsg into QuitMsg so the renderer clears
// the form before exiting.
func interruptFilter(_ tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.InterruptMsg); ok {
		return tea.QuitMsg{}
	}
	return msg
}

func (ui *HuhUI) runForm(form *huh.Form) error {
	if err := ui.ensureInteractive(); err != nil {
		return err
	}
	form.WithKeyMap(keyMap())
	form.WithProgramOptions(
		tea.WithOutput(os.Stderr),
		tea.WithFilter(interruptFilter),
	)
	err := runFormFunc(form)
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrCancelled
	}
	return err
}

// Confirm renders a yes/no prompt that defaults to no.
func (ui *HuhUI) Confirm(title, description string) (bool, error) {
	value := false
	err := ui.runForm(huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Apply").
				Negative("Cancel").
				Value(&value),
		),
	))
	if err != nil {
		return false, err
	}
	return value, nil
}
