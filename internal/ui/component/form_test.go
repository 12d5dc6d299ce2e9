package component

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func keyMsg(s string) tea.Msg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestSliderMovesByStepAndClamps(t *testing.T) {
	form := NewForm().
		AddSlider("amount", "Amount", 50000, 1000000, 10000, 100000, nil)

	form, _ = form.Update(keyMsg("right"))
	assert.Equal(t, 110000.0, form.GetNumber("amount"))

	for i := 0; i < 10; i++ {
		form, _ = form.Update(keyMsg("left"))
	}
	assert.Equal(t, 50000.0, form.GetNumber("amount"), "clamped at the minimum")

	form, _ = form.Update(keyMsg("left"))
	assert.Equal(t, 50000.0, form.GetNumber("amount"))
}

func TestSliderDisplayFunc(t *testing.T) {
	form := NewForm().
		AddSlider("fee", "Fee", 5, 15, 0.5, 10, func(v float64) string {
			return fmt.Sprintf("%.1f%%", v)
		})

	assert.Contains(t, form.View(), "10.0%")
}

func TestSelectCyclesOnEnter(t *testing.T) {
	form := NewForm().
		AddField("market", FieldTypeSelect, "Market", true, "")
	form.SetFieldOptions("market", []string{"a", "b", "c"})

	assert.Equal(t, "a", form.GetValue("market"))
	form, _ = form.Update(keyMsg("enter"))
	assert.Equal(t, "b", form.GetValue("market"))
}

func TestTabMovesFocusAndSkipsNothing(t *testing.T) {
	form := NewForm().
		AddField("phone", FieldTypeText, "Phone", true, "").
		AddSlider("years", "Years", 1, 30, 1, 5, nil)

	assert.Equal(t, "phone", form.FocusedField())
	form, _ = form.Update(keyMsg("tab"))
	assert.Equal(t, "years", form.FocusedField())
	form, _ = form.Update(keyMsg("tab"))
	assert.Equal(t, "phone", form.FocusedField(), "focus wraps")
}

func TestValidateFlagsRequiredAndCustomRules(t *testing.T) {
	form := NewForm().
		AddField("pin", FieldTypePassword, "PIN", true, "")
	form.SetFieldValidation("pin", func(v string) error {
		if len(v) != 4 {
			return fmt.Errorf("PIN must be exactly 4 digits")
		}
		return nil
	})

	assert.False(t, form.Validate(), "empty required field fails")

	form.SetFieldValue("pin", "12")
	assert.False(t, form.Validate())

	form.SetFieldValue("pin", "1234")
	assert.True(t, form.Validate())
}
