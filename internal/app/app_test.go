package app

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/glamour/styles"

	"github.com/abhisek/shiseikan/internal/content"
	"github.com/abhisek/shiseikan/internal/router"
	"github.com/abhisek/shiseikan/internal/session"
)

func testModel(skipSplash bool) AppModel {
	m := newAppModel(Options{
		Provider:      content.NewDemoProvider(),
		Session:       session.Config{AdvanceDelay: time.Millisecond, CallTimeout: time.Second},
		MarkdownStyle: styles.NoTTYStyle,
		SkipSplash:    skipSplash,
	})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(AppModel)
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	m := testModel(true)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
}

func TestAppModel_TooSmall(t *testing.T) {
	m := testModel(true)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(updated.(AppModel).render(), "Terminal too small") {
		t.Error("expected min-size message")
	}
}

func TestAppModel_SplashThenQuiz(t *testing.T) {
	m := testModel(false)
	if m.router.Active().Title() != "" {
		t.Fatalf("expected splash first, got %q", m.router.Active().Title())
	}

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	if cmd == nil {
		t.Fatal("expected replace command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	m.Update(msg)
	if m.router.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", m.router.Depth())
	}
	if !strings.Contains(m.render(), "Shiseikan") {
		t.Error("header should show the app name")
	}
}

func TestAppModel_EscPopsOnlyPushedScreens(t *testing.T) {
	m := testModel(true)
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("esc on the root screen should do nothing")
	}
}
