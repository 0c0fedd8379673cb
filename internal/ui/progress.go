package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/modu-ai/liftoff/internal/i18n"
)

// StageProgress reports generation stages to the console.
type StageProgress interface {
	// StageStarted reports stage index (1-based) of total.
	StageStarted(name string, index, total int)
	// Completed marks every stage done and releases the console.
	Completed()
	// Stop releases the console without marking completion. It is safe to
	// call after Completed.
	Stop()
}

// NewStageProgress creates a StageProgress writing to w. Headless or
// colorless consoles get one plain line per stage; terminals get an
// animated bar.
func NewStageProgress(theme *Theme, hm *HeadlessManager, loc *i18n.Localizer, w io.Writer) StageProgress {
	if hm.IsHeadless() || theme.NoColor {
		return &headlessProgress{loc: loc, writer: w}
	}
	return newInteractiveProgress(loc, tea.NewProgram(newProgressModel(theme), programOptions(w)...))
}

// programOptions keep the bar off the keyboard and out of signal handling,
// so an interrupt reaches the caller's context instead of only closing the bar.
func programOptions(w io.Writer) []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithOutput(w),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	}
}

func stageTitle(loc *i18n.Localizer, name string) string {
	return loc.Text("stage." + name)
}

// --- interactiveProgress ---

// stageMsg moves the bar to a new stage.
type stageMsg struct {
	title        string
	index, total int
}

// progressDoneMsg fills the bar and quits.
type progressDoneMsg struct{}

// progressStopMsg quits without filling the bar.
type progressStopMsg struct{}

// progressModel is the bubbletea Model for the stage bar.
type progressModel struct {
	bar   progress.Model
	title string
	index int
	total int
	done  bool
}

func newProgressModel(theme *Theme) progressModel {
	bar := progress.New(
		progress.WithGradient(theme.Colors.Primary, theme.Colors.Secondary),
		progress.WithWidth(40),
	)
	if theme.NoColor {
		bar = progress.New(progress.WithDefaultGradient(), progress.WithWidth(40))
	}
	return progressModel{bar: bar}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stageMsg:
		m.title = msg.title
		m.index = msg.index
		m.total = msg.total
		return m, nil
	case progressDoneMsg:
		m.index = m.total
		m.done = true
		return m, tea.Quit
	case progressStopMsg:
		m.done = true
		return m, tea.Quit
	case progress.FrameMsg:
		pm, cmd := m.bar.Update(msg)
		m.bar = pm.(progress.Model)
		return m, cmd
	}
	return m, nil
}

// percent is the share of finished stages; the running stage counts as
// not yet finished.
func (m progressModel) percent() float64 {
	if m.total <= 0 {
		return 0
	}
	finished := m.index - 1
	if m.done {
		finished = m.index
	}
	if finished < 0 {
		finished = 0
	}
	return float64(finished) / float64(m.total)
}

func (m progressModel) View() string {
	if m.done {
		return ""
	}
	return m.bar.ViewAs(m.percent()) + " " + fmt.Sprintf("[%d/%d] %s\n", m.index, m.total, m.title)
}

// interactiveProgress drives a progressModel on its own goroutine.
type interactiveProgress struct {
	loc     *i18n.Localizer
	program *tea.Program
	once    sync.Once
}

func newInteractiveProgress(loc *i18n.Localizer, p *tea.Program) *interactiveProgress {
	ip := &interactiveProgress{loc: loc, program: p}
	go func() {
		_, _ = p.Run()
	}()
	return ip
}

func (p *interactiveProgress) StageStarted(name string, index, total int) {
	p.program.Send(stageMsg{title: stageTitle(p.loc, name), index: index, total: total})
}

func (p *interactiveProgress) Completed() {
	p.finish(progressDoneMsg{})
}

func (p *interactiveProgress) Stop() {
	p.finish(progressStopMsg{})
}

func (p *interactiveProgress) finish(msg tea.Msg) {
	p.once.Do(func() {
		p.program.Send(msg)
		p.program.Wait()
	})
}

// --- headlessProgress ---

// headlessProgress writes one log line per stage.
type headlessProgress struct {
	loc    *i18n.Localizer
	writer io.Writer
}

func (p *headlessProgress) StageStarted(name string, index, total int) {
	_, _ = fmt.Fprintf(p.writer, "[%d/%d] %s\n", index, total, stageTitle(p.loc, name))
}

func (p *headlessProgress) Completed() {}

func (p *headlessProgress) Stop() {}
