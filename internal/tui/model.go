package tui

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"cloudeng.io/logging/ctxlog"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"datefield/internal/dateinput"
	"datefield/internal/dateparts"
	"datefield/internal/model"
	"datefield/internal/segment"
)

// fieldRow is the view row holding the segments; mouse hit-testing depends on it.
const fieldRow = 1

// Options configure one interactive field.
type Options struct {
	Config dateinput.Config
	Value  model.Value
	Env    dateinput.Env
	// Label is shown above the field.
	Label     string
	AltScreen bool
}

// Result is what the field held when the program ended.
type Result struct {
	Value model.Value
	// Invalid is set when the segments were left incomplete; Value then holds
	// the last valid value.
	Invalid  bool
	Canceled bool
}

type inputModel struct {
	ctx  context.Context
	keys keyMap
	help help.Model

	state      dateinput.State
	inputs     []textinput.Model
	native     textinput.Model
	nativeMode bool
	cal        calendar
	monthNames []string
	// typeahead accumulates runes typed into a month-name segment.
	typeahead    string
	typeaheadIdx int

	label  string
	width  int
	now    func() time.Time
	result Result
}

func newInputModel(ctx context.Context, opts Options) (inputModel, error) {
	if opts.Env.Now == nil {
		opts.Env.Now = time.Now
	}
	st, err := dateinput.New(opts.Config, opts.Value, opts.Env)
	if err != nil {
		return inputModel{}, err
	}
	m := inputModel{
		ctx:    ctx,
		keys:   defaultKeyMap(),
		help:   help.New(),
		state:  st,
		label:  opts.Label,
		width:  40,
		now:    opts.Env.Now,
		result: Result{Value: opts.Value},
	}
	if opts.Env.Catalog != nil {
		m.monthNames = opts.Env.Catalog.MonthNames(opts.Config.Locale, false)
	}
	for range st.Segments() {
		in := textinput.New()
		in.Prompt = ""
		m.inputs = append(m.inputs, in)
	}
	m.native = textinput.New()
	m.native.Prompt = ""
	m.native.Placeholder = "YYYY-MM-DD"
	m.native.CharLimit = 16
	m.native.Width = 16
	return m.syncInputs(), nil
}

func (m inputModel) logger() *slog.Logger { return ctxlog.Logger(m.ctx) }

func (m inputModel) Init() tea.Cmd { return textinput.Blink }

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.MouseMsg:
		return m.updateMouse(msg), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m inputModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.state.OverlayOpen():
		return m.updateCalendar(msg)
	case m.nativeMode:
		return m.updateNative(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.result.Canceled = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Done):
		m.logger().Debug("done", "value", describe(m.result.Value), "invalid", m.result.Invalid)
		return m, tea.Quit
	case key.Matches(msg, m.keys.Today):
		lim := m.state.Config().Limits
		today := dateparts.Clamp(dateparts.Floor(m.now(), model.Day), lim.Lower(), lim.Upper())
		return m.apply(dateinput.Pick{Value: model.Single(today), Close: true}), nil
	case key.Matches(msg, m.keys.Clear):
		for i := range m.state.Segments() {
			m = m.apply(dateinput.Input{Index: i, Text: ""})
		}
		return m, nil
	case key.Matches(msg, m.keys.Overlay):
		return m.openCalendar(), nil
	case key.Matches(msg, m.keys.Native):
		m.nativeMode = true
		m.native.SetValue(m.state.Native().Text())
		m = m.syncInputs()
		return m, m.native.Focus()
	case key.Matches(msg, m.keys.Next):
		return m.apply(dateinput.FocusSegment{Index: m.state.Focus() + 1}), nil
	case key.Matches(msg, m.keys.Prev):
		return m.apply(dateinput.FocusSegment{Index: m.state.Focus() - 1}), nil
	case key.Matches(msg, m.keys.Up):
		return m.step(+1), nil
	case key.Matches(msg, m.keys.Down):
		return m.step(-1), nil
	}
	return m.typeKey(msg)
}

// typeKey feeds one keystroke through the engine as press, edit, release.
func (m inputModel) typeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state.Focus() < 0 {
		m = m.apply(dateinput.ClickContainer{})
	}
	idx := m.state.Focus()
	if idx < 0 {
		return m, nil
	}
	k := msg.String()
	m = m.apply(dateinput.KeyDown{Index: idx, Key: k})
	if m.state.IsNavigationKey(k) {
		return m.apply(dateinput.KeyUp{Index: idx, Key: k}), nil
	}

	var cmd tea.Cmd
	if m.state.Segment(idx).Kind() == segment.KindMonthName {
		m = m.typeMonthName(idx, msg)
	} else {
		before := m.inputs[idx].Value()
		m.inputs[idx], cmd = m.inputs[idx].Update(msg)
		if after := m.inputs[idx].Value(); after != before {
			m = m.apply(dateinput.Input{Index: idx, Text: after})
		}
	}
	return m.apply(dateinput.KeyUp{Index: idx, Key: k}), cmd
}

// typeMonthName matches the runes typed so far against the month names.
// When the longer text matches nothing the buffer restarts with the new runes.
func (m inputModel) typeMonthName(idx int, msg tea.KeyMsg) inputModel {
	if idx != m.typeaheadIdx {
		m.typeahead, m.typeaheadIdx = "", idx
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete:
		m.typeahead = ""
		return m.apply(dateinput.Input{Index: idx, Text: ""})
	case tea.KeyRunes:
		seg := m.state.Segment(idx)
		typed := string(msg.Runes)
		if buf := m.typeahead + typed; seg.Accept(buf) != "" {
			m.typeahead = buf
		} else {
			m.typeahead = typed
		}
		return m.apply(dateinput.Input{Index: idx, Text: m.typeahead})
	}
	return m
}

func (m inputModel) step(delta int) inputModel {
	idx := m.state.Focus()
	if idx < 0 {
		return m
	}
	return m.apply(dateinput.Step{Index: idx, Delta: delta})
}

func (m inputModel) updateNative(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Native):
		m.nativeMode = false
		m.native.Blur()
		return m.syncInputs(), nil
	case key.Matches(msg, m.keys.Done):
		m.nativeMode = false
		m.native.Blur()
		return m.apply(dateinput.NativeInput{Text: m.native.Value()}), nil
	}
	var cmd tea.Cmd
	m.native, cmd = m.native.Update(msg)
	return m, cmd
}

func (m inputModel) openCalendar() inputModel {
	cfg := m.state.Config()
	m.cal = newCalendar(cfg.MaxDetail, cfg.Limits, m.state.Canonical(), m.now())
	return m.apply(dateinput.SetOverlayOpen{Open: true})
}

func (m inputModel) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		m.cal = m.cal.move(-1, false)
	case "right", "l":
		m.cal = m.cal.move(+1, false)
	case "up", "k":
		m.cal = m.cal.move(-1, true)
	case "down", "j":
		m.cal = m.cal.move(+1, true)
	case "enter", " ":
		return m.apply(dateinput.Pick{Value: m.cal.pick(), Close: true}), nil
	case "esc", "ctrl+o", "ctrl+c":
		return m.apply(dateinput.SetOverlayOpen{Open: false}), nil
	}
	return m, nil
}

func (m inputModel) updateMouse(msg tea.MouseMsg) inputModel {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft || msg.Y != fieldRow {
		return m
	}
	if m.nativeMode || m.state.OverlayOpen() {
		return m
	}
	if i, ok := m.hitSegment(msg.X); ok {
		return m.apply(dateinput.FocusSegment{Index: i})
	}
	return m.apply(dateinput.ClickContainer{})
}

// apply runs one engine event and acts on its outputs.
func (m inputModel) apply(ev dateinput.Event) inputModel {
	next, outs := dateinput.Update(m.state, ev)
	m.state = next
	log := m.logger()
	for _, o := range outs {
		switch o := o.(type) {
		case dateinput.Change:
			m.result.Value = o.Value
			m.result.Invalid = false
			log.Debug("change", "value", describe(o.Value), "close", o.CloseHint)
			if o.CloseHint && m.state.OverlayOpen() {
				m.state, _ = dateinput.Update(m.state, dateinput.SetOverlayOpen{Open: false})
			}
		case dateinput.Invalid:
			m.result.Invalid = true
			log.Debug("invalid", "parts", m.state.Parts())
		case dateinput.FocusMoved:
			m.typeahead = ""
			log.Debug("focus", "segment", o.Index)
		}
	}
	return m.syncInputs()
}

// syncInputs mirrors segment texts and focus into the text inputs.
func (m inputModel) syncInputs() inputModel {
	focus := m.state.Focus()
	for i, seg := range m.state.Segments() {
		if m.inputs[i].Value() != seg.Text() {
			m.inputs[i].SetValue(seg.Text())
		}
		if i == focus && !m.nativeMode && !m.state.OverlayOpen() {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m
}

func (m inputModel) View() string {
	var b strings.Builder
	title := lipgloss.NewStyle().Bold(true).Render("Date")
	if m.label != "" {
		title = lipgloss.NewStyle().Bold(true).Render(m.label)
	}
	b.WriteString(title + styleMuted().Render("  "+m.state.Placeholder()))
	b.WriteString("\n")
	b.WriteString(m.renderLine())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	if m.nativeMode {
		n := m.state.Native()
		b.WriteString("\n")
		b.WriteString(styleMuted().Render("iso ("+n.InputType()+") ") + m.native.View())
		b.WriteString(styleMuted().Render("  " + n.Min() + " … " + n.Max()))
	}
	if m.state.OverlayOpen() {
		b.WriteString("\n\n")
		b.WriteString(m.cal.view(m.monthNames))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m inputModel) renderStatus() string {
	switch {
	case m.result.Invalid:
		return styleStatusInvalid().Render("incomplete or out of range")
	case m.result.Value.IsZero():
		return styleMuted().Render("no date")
	default:
		return styleStatusOK().Render(describe(m.result.Value))
	}
}

// describe renders a value as ISO dates, "a..b" for ranges.
func describe(v model.Value) string {
	if v.From == nil {
		return ""
	}
	s := dateparts.NativeText(v.From, model.Month)
	if v.To != nil {
		s += ".." + dateparts.NativeText(v.To, model.Month)
	}
	return s
}
