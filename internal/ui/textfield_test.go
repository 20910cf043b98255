package ui

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mark3labs/homeinfo/internal/address"
)

func typeText(m *fieldModel, s string) {
	for _, r := range s {
		m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestFieldModel_AcceptsValidValue(t *testing.T) {
	m := newFieldModel("Enter ZIP code", nil, address.ValidateZip, Theme{})
	typeText(m, "62704")

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !m.done {
		t.Fatal("expected the field to be done")
	}
	if m.value != "62704" {
		t.Errorf("value = %q, want 62704", m.value)
	}
	if cmd == nil {
		t.Error("expected a quit command")
	}
}

func TestFieldModel_NormalizesBeforeValidating(t *testing.T) {
	m := newFieldModel("Enter state", address.NormalizeState, address.ValidateState, Theme{})
	m.input.SetValue("  il ")

	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !m.done || m.value != "IL" {
		t.Errorf("done = %v, value = %q; want IL", m.done, m.value)
	}
}

func TestFieldModel_RejectsInvalidValue(t *testing.T) {
	m := newFieldModel("Enter street address", nil, address.ValidateStreet, Theme{})
	m.input.SetValue("Main")

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.done {
		t.Fatal("invalid value was accepted")
	}
	if cmd != nil {
		t.Error("no command expected while the value is invalid")
	}
	if m.hint != "Invalid street address format. Please try again." {
		t.Errorf("hint = %q", m.hint)
	}

	m.input.SetValue("123 Main St")
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !m.done || m.value != "123 Main St" {
		t.Errorf("done = %v, value = %q", m.done, m.value)
	}
}

func TestFieldModel_Cancel(t *testing.T) {
	m := newFieldModel("Enter city", nil, address.ValidateCity, Theme{})

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if !m.cancelled {
		t.Error("esc should cancel the field")
	}
	if cmd == nil {
		t.Error("expected a quit command")
	}
}
