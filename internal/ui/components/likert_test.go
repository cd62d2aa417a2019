package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestLikert_ArrowsAndEnter(t *testing.T) {
	l := NewLikert("Fatalism", "Free Will")
	if l.Selected != 5 {
		t.Fatalf("expected cursor at 5, got %d", l.Selected)
	}

	l, _ = l.Update(specialKey(tea.KeyRight))
	l, _ = l.Update(specialKey(tea.KeyRight))
	l, _ = l.Update(specialKey(tea.KeyLeft))
	if l.Selected != 6 {
		t.Errorf("expected cursor at 6, got %d", l.Selected)
	}
	if _, ok := l.Take(); ok {
		t.Error("nothing should be submitted before Enter")
	}

	l, _ = l.Update(specialKey(tea.KeyEnter))
	v, ok := l.Take()
	if !ok || v != 6 {
		t.Errorf("Take() = %d, %v; want 6, true", v, ok)
	}
	if _, ok := l.Take(); ok {
		t.Error("Take should clear the submission")
	}
}

func TestLikert_Bounds(t *testing.T) {
	l := NewLikert("a", "b")
	for i := 0; i < 20; i++ {
		l, _ = l.Update(specialKey(tea.KeyLeft))
	}
	if l.Selected != LikertMin {
		t.Errorf("expected %d, got %d", LikertMin, l.Selected)
	}
	for i := 0; i < 20; i++ {
		l, _ = l.Update(keyPress('l'))
	}
	if l.Selected != LikertMax {
		t.Errorf("expected %d, got %d", LikertMax, l.Selected)
	}
}

func TestLikert_Digits(t *testing.T) {
	tests := []struct {
		key  rune
		want int
	}{
		{'1', 1},
		{'7', 7},
		{'9', 9},
		{'0', 10},
	}
	for _, tt := range tests {
		l := NewLikert("a", "b")
		l, _ = l.Update(keyPress(tt.key))
		v, ok := l.Take()
		if !ok || v != tt.want {
			t.Errorf("key %q: Take() = %d, %v; want %d", tt.key, v, ok, tt.want)
		}
	}
}

func TestLikert_DisabledIgnoresKeys(t *testing.T) {
	l := NewLikert("a", "b")
	l.Disabled = true
	l, _ = l.Update(keyPress('3'))
	if _, ok := l.Take(); ok {
		t.Error("disabled selector should not accept input")
	}
	if l.Selected != 5 {
		t.Errorf("cursor moved while disabled: %d", l.Selected)
	}
}

func TestLikert_ResetAndView(t *testing.T) {
	l := NewLikert("Acceptance", "Resistance")
	l, _ = l.Update(keyPress('2'))
	l.Reset()
	if l.Selected != 5 || l.Chosen != 0 {
		t.Errorf("Reset left %+v", l)
	}

	view := l.View()
	for _, want := range []string{"Acceptance", "Resistance", "10"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestStepProgress(t *testing.T) {
	p := NewStepProgress("Question", 3, 12, 40)
	if p.Label != "Question 3 / 12" {
		t.Errorf("unexpected label %q", p.Label)
	}
	if p.Percent != 0.25 {
		t.Errorf("unexpected percent %v", p.Percent)
	}
	if !strings.Contains(p.View(), "Question 3 / 12") {
		t.Error("view should contain the label")
	}
	if NewStepProgress("Question", 0, 0, 40).Percent != 0 {
		t.Error("zero total should give zero percent")
	}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	pressed := ""
	m := NewMenu([]MenuItem{
		{Label: "Begin", Disabled: true},
		{Label: "Dimensions", Action: func() tea.Cmd { pressed = "dimensions"; return nil }},
		{Label: "Quit", Action: func() tea.Cmd { pressed = "quit"; return nil }},
	})
	if m.Selected != 1 {
		t.Fatalf("expected first enabled item selected, got %d", m.Selected)
	}

	m, _ = m.Update(specialKey(tea.KeyUp))
	if m.Selected != 1 {
		t.Errorf("cursor should not land on disabled item, got %d", m.Selected)
	}
	m, _ = m.Update(specialKey(tea.KeyDown))
	m.Update(specialKey(tea.KeyEnter))
	if pressed != "quit" {
		t.Errorf("expected quit action, got %q", pressed)
	}
}
