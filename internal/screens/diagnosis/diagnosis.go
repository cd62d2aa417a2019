package diagnosis

import (
	"context"
	"fmt"
	"time"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/shiseikan/internal/content"
	"github.com/abhisek/shiseikan/internal/router"
	"github.com/abhisek/shiseikan/internal/screen"
	"github.com/abhisek/shiseikan/internal/session"
	"github.com/abhisek/shiseikan/internal/trait"
	"github.com/abhisek/shiseikan/internal/ui/components"
	"github.com/abhisek/shiseikan/internal/ui/layout"
	"github.com/abhisek/shiseikan/internal/ui/theme"
)

// loadingInterval is how long each loading message stays on screen.
const loadingInterval = 2500 * time.Millisecond

var loadingMessages = []string{
	"Reading the philosophy in your answers...",
	"Exploring how you weigh life and death...",
	"Listening to what lies beneath...",
	"Shaping a worldview that is yours alone...",
	"Your answer is almost here...",
}

// Options configures a DiagnosisScreen.
type Options struct {
	Provider content.Provider
	Session  session.Config
	Logger   *zap.Logger

	// Traits builds the reference screen pushed with "?". Optional.
	Traits func() screen.Screen

	// MarkdownStyle is the glamour style for result text. Default dark.
	MarkdownStyle string
}

// DiagnosisScreen runs the quiz: start, questions, loading and result.
type DiagnosisScreen struct {
	ctrl     *session.Controller
	provider content.Provider
	logger   *zap.Logger
	traits   func() screen.Screen
	mdStyle  string

	spinner  spinner.Model
	likert   components.Likert
	menu     components.Menu
	viewport viewport.Model

	width, height int

	// rendered caches the glamour output for the shown result.
	rendered      string
	renderedWidth int

	loadingIdx int
	loadingGen int
	answerErr  string
}

var _ screen.Screen = (*DiagnosisScreen)(nil)
var _ screen.KeyHintProvider = (*DiagnosisScreen)(nil)
var _ screen.StatusProvider = (*DiagnosisScreen)(nil)

// New creates a DiagnosisScreen. Questions are requested on Init.
func New(opts Options) *DiagnosisScreen {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	style := opts.MarkdownStyle
	if style == "" {
		style = DefaultMarkdownStyle
	}

	s := &DiagnosisScreen{
		ctrl:     session.New(opts.Session, logger),
		provider: opts.Provider,
		logger:   logger,
		traits:   opts.Traits,
		mdStyle:  style,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary)),
		),
		viewport: viewport.New(),
	}
	s.menu = s.buildMenu()
	return s
}

func (s *DiagnosisScreen) Init() tea.Cmd {
	return s.run(s.ctrl.Init())
}

func (s *DiagnosisScreen) Title() string {
	switch s.ctrl.Phase() {
	case session.PhaseQuiz:
		return "Questions"
	case session.PhaseLoading:
		return "Reflecting"
	case session.PhaseResult:
		return "Your Worldview"
	case session.PhaseError:
		return "Something Went Wrong"
	}
	return "Explore Your View of Life and Death"
}

func (s *DiagnosisScreen) Status() string {
	switch st := s.ctrl.State().(type) {
	case session.Quiz:
		_, total := s.ctrl.Progress()
		return fmt.Sprintf("%d / %d", st.Index+1, total)
	case session.Result:
		return string(st.Result.Type)
	}
	return ""
}

func (s *DiagnosisScreen) KeyHints() []layout.KeyHint {
	switch st := s.ctrl.State().(type) {
	case session.Start:
		if st.Fetching {
			return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
		}
		if st.Err != "" {
			return []layout.KeyHint{
				{Key: "R", Description: "Retry"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "?", Description: "Dimensions"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case session.Quiz:
		return []layout.KeyHint{
			{Key: "←→", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "1-9, 0", Description: "Answer directly"},
		}
	case session.Result:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "R", Description: "Take it again"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case session.Failed:
		return []layout.KeyHint{
			{Key: "R", Description: "Start over"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
}

func (s *DiagnosisScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsLoadedMsg:
		cmd := s.run(s.ctrl.QuestionsLoaded(msg.Questions, msg.Err))
		s.menu = s.buildMenu()
		return s, cmd

	case resultLoadedMsg:
		cmd := s.run(s.ctrl.ResultLoaded(msg.Result, msg.Err))
		s.rendered = ""
		s.syncViewport()
		return s, cmd

	case beginMsg:
		return s, s.begin()

	case advanceMsg:
		return s, s.advance()

	case loadingTickMsg:
		if msg.Gen != s.loadingGen || s.ctrl.Phase() != session.PhaseLoading {
			return s, nil
		}
		s.loadingIdx = (s.loadingIdx + 1) % len(loadingMessages)
		return s, s.loadingTick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		return s, s.handleKey(msg)
	}

	return s, nil
}

func (s *DiagnosisScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch st := s.ctrl.State().(type) {
	case session.Start:
		if st.Fetching {
			return nil
		}
		if st.Err != "" {
			if msg.String() == "r" || msg.String() == "enter" {
				return s.restart()
			}
			return nil
		}
		if msg.String() == "?" {
			return s.pushTraits()
		}
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return cmd

	case session.Quiz:
		var cmd tea.Cmd
		s.likert, cmd = s.likert.Update(msg)
		if v, ok := s.likert.Take(); ok {
			return tea.Batch(cmd, s.answer(v))
		}
		return cmd

	case session.Result:
		if msg.String() == "r" || msg.String() == "enter" {
			return s.restart()
		}
		var cmd tea.Cmd
		s.viewport, cmd = s.viewport.Update(msg)
		return cmd

	case session.Failed:
		if msg.String() == "r" || msg.String() == "enter" {
			return s.restart()
		}
	}
	return nil
}

func (s *DiagnosisScreen) begin() tea.Cmd {
	cmd := s.run(s.ctrl.Begin())
	if s.ctrl.Phase() == session.PhaseQuiz {
		s.answerErr = ""
		s.resetLikert()
	}
	return cmd
}

func (s *DiagnosisScreen) answer(v int) tea.Cmd {
	effects, err := s.ctrl.Answer(v)
	if err != nil {
		s.answerErr = err.Error()
		return nil
	}
	s.answerErr = ""
	if s.ctrl.Advancing() {
		s.likert.Disabled = true
	}
	return s.run(effects)
}

func (s *DiagnosisScreen) advance() tea.Cmd {
	if !s.ctrl.Advancing() {
		return nil
	}
	cmd := s.run(s.ctrl.Advance())
	switch s.ctrl.Phase() {
	case session.PhaseQuiz:
		s.resetLikert()
		return cmd
	case session.PhaseLoading:
		s.loadingIdx = 0
		s.loadingGen++
		return tea.Batch(cmd, s.loadingTick())
	}
	return cmd
}

func (s *DiagnosisScreen) restart() tea.Cmd {
	cmd := s.run(s.ctrl.Restart())
	s.rendered = ""
	s.menu = s.buildMenu()
	return cmd
}

func (s *DiagnosisScreen) pushTraits() tea.Cmd {
	if s.traits == nil {
		return nil
	}
	next := s.traits()
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

// resetLikert prepares the selector for the current question.
func (s *DiagnosisScreen) resetLikert() {
	q, ok := s.ctrl.Current()
	if !ok {
		return
	}
	s.likert = components.NewLikert(q.Pair.Low().Label(), q.Pair.High().Label())
}

// run turns controller effects into commands. Provider calls run in the
// command goroutine; their contexts are derived here, on the update loop.
// Each fetch restarts the spinner, since ticks are lost while another
// screen is on top.
func (s *DiagnosisScreen) run(effects []session.Effect) tea.Cmd {
	var cmds []tea.Cmd
	for _, eff := range effects {
		switch eff.(type) {
		case session.FetchQuestions, session.FetchResult:
			cmds = append(cmds, s.spinner.Tick)
		}

		switch e := eff.(type) {
		case session.FetchQuestions:
			ctx, cancel := s.ctrl.CallContext(context.Background())
			cmds = append(cmds, func() tea.Msg {
				defer cancel()
				qs, err := s.provider.FetchQuestions(ctx)
				return questionsLoadedMsg{Questions: qs, Err: err}
			})

		case session.FetchResult:
			ctx, cancel := s.ctrl.CallContext(context.Background())
			code := e.Type
			cmds = append(cmds, func() tea.Msg {
				defer cancel()
				res, err := s.provider.FetchResult(ctx, code)
				return resultLoadedMsg{Result: res, Err: err}
			})

		case session.Advance:
			cmds = append(cmds, tea.Tick(e.Delay, func(time.Time) tea.Msg {
				return advanceMsg{}
			}))

		default:
			s.logger.Error("unhandled effect", zap.String("type", fmt.Sprintf("%T", eff)))
		}
	}
	return tea.Batch(cmds...)
}

func (s *DiagnosisScreen) loadingTick() tea.Cmd {
	gen := s.loadingGen
	return tea.Tick(loadingInterval, func(time.Time) tea.Msg {
		return loadingTickMsg{Gen: gen}
	})
}

func (s *DiagnosisScreen) buildMenu() components.Menu {
	return components.NewMenu([]components.MenuItem{
		{
			Label:    "Begin",
			Disabled: !s.ctrl.CanBegin(),
			Action: func() tea.Cmd {
				return func() tea.Msg { return beginMsg{} }
			},
		},
		{
			Label:    "About the four dimensions",
			Disabled: s.traits == nil,
			Action:   s.pushTraits,
		},
		{
			Label:  "Quit",
			Action: func() tea.Cmd { return tea.Quit },
		},
	})
}

// resize records the content area given to View and refits the viewport.
func (s *DiagnosisScreen) resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.syncViewport()
}

// syncViewport sizes the result viewport and renders the description for
// the current width.
func (s *DiagnosisScreen) syncViewport() {
	res, ok := s.ctrl.State().(session.Result)
	if !ok || s.width == 0 {
		return
	}

	cw := components.ContentWidth(s.width)
	if s.rendered == "" || s.renderedWidth != cw {
		s.rendered = renderDescription(res.Result.Description, s.mdStyle, cw)
		s.renderedWidth = cw
		s.viewport.SetContent(s.rendered)
		s.viewport.GotoTop()
	}

	s.viewport.SetWidth(cw)
	s.viewport.SetHeight(max(3, s.height-resultChromeHeight))
}

// questionLabel returns "<Low> ↔ <High>" for a pair.
func questionLabel(p trait.Pair) string {
	return p.Low().Label() + " ↔ " + p.High().Label()
}
