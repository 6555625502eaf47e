package prompt

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubRunForm(t *testing.T, fn func(form *huh.Form) error) {
	t.Helper()
	orig := runFormFunc
	t.Cleanup(func() { runFormFunc = orig })
	runFormFunc = fn
}

func TestNewHuhUI(t *testing.T) {
	ui := NewHuhUI()
	assert.NotNil(t, ui)
	assert.NotNil(t, ui.isTerminal)
}

func TestHuhUI_NoTTY(t *testing.T) {
	stubRunForm(t, func(*huh.Form) error {
		t.Fatal("form must not run without a terminal")
		return nil
	})
	ui := &HuhUI{isTerminal: func() bool { return false }}

	ok, err := ui.Confirm("Title", "Body")
	require.ErrorIs(t, err, ErrRequiresTerminal)
	assert.False(t, ok)
}

func TestHuhUI_ConfirmRunsForm(t *testing.T) {
	called := false
	stubRunForm(t, func(form *huh.Form) error {
		assert.NotNil(t, form)
		called = true
		return nil
	})
	ui := &HuhUI{isTerminal: func() bool { return true }}

	ok, err := ui.Confirm("Title", "Body")
	require.NoError(t, err)
	assert.True(t, called)
	assert.False(t, ok, "confirm defaults to no")
}

func TestHuhUI_UserAbortMapsToCancelled(t *testing.T) {
	stubRunForm(t, func(*huh.Form) error { return huh.ErrUserAborted })
	ui := &HuhUI{isTerminal: func() bool { return true }}

	_, err := ui.Confirm("Title", "Body")
	require.ErrorIs(t, err, ErrCancelled)
}

func TestHuhUI_FormErrorPassesThrough(t *testing.T) {
	want := errors.New("boom")
	stubRunForm(t, func(*huh.Form) error { return want })
	ui := &HuhUI{isTerminal: func() bool { return true }}

	_, err := ui.Confirm("Title", "Body")
	require.ErrorIs(t, err, want)
}

func TestInterruptFilter(t *testing.T) {
	assert.Equal(t, tea.QuitMsg{}, interruptFilter(nil, tea.InterruptMsg{}))
	key := tea.KeyMsg{Type: tea.KeyEnter}
	assert.Equal(t, key, interruptFilter(nil, key))
}
