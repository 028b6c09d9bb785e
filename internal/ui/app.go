package ui

import (
	"context"
	"image"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/plantview/internal/backdrop"
	"github.com/five82/plantview/internal/preview"
	"github.com/five82/plantview/internal/render"
	"github.com/five82/plantview/internal/renderer"
	"github.com/five82/plantview/internal/session"
	"github.com/five82/plantview/internal/theme"
)

// Capabilities gates optional features. A missing capability hides the
// feature instead of failing.
type Capabilities struct {
	Clipboard bool
	Downloads bool
	Backdrop  bool
	Mouse     bool
}

// DetectCapabilities probes the host once at startup.
func DetectCapabilities(downloadDir string, animation bool) Capabilities {
	return Capabilities{
		Clipboard: !clipboard.Unsupported,
		Downloads: downloadDir != "",
		Backdrop:  animation,
		Mouse:     true,
	}
}

// Options configures the UI.
type Options struct {
	Context      context.Context
	Session      *session.State
	Fetcher      renderer.Fetcher
	Backdrop     *backdrop.Rain
	Capabilities Capabilities
	DownloadDir  string
	FrameEvery   time.Duration
	Logger       *slog.Logger

	// InputTTY reads keys from the terminal device when stdin carried the
	// diagram source.
	InputTTY bool
}

// Model is the root application state for Bubble Tea. Diagram state lives
// in the session; the model holds terminal concerns only.
type Model struct {
	// Configuration
	ctx         context.Context
	sess        *session.State
	fetcher     renderer.Fetcher
	rain        *backdrop.Rain
	caps        Capabilities
	inputTTY    bool
	downloadDir string
	frameEvery  time.Duration
	logger      *slog.Logger

	// UI state
	keys    keyMap
	help    help.Model
	palette theme.Palette
	styles  theme.Styles
	width   int
	height  int
	ready   bool

	// Editor
	editor       textarea.Model
	editorOffset int

	// Preview
	preview     loadedImage
	pending     string
	cache       *renderCache
	overlayView viewport.Model

	// Footer status
	status    string
	statusErr bool

	showHelp bool
}

// loadedImage is the preview for one identifier. A fetch failure leaves img
// nil with err set.
type loadedImage struct {
	id  string
	img image.Image
	err error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	frameEvery := opts.FrameEvery
	if frameEvery <= 0 {
		frameEvery = DefaultFrameInterval
	}

	sess := opts.Session
	if sess == nil {
		sess = session.New(render.New(nil, render.Links{}), nil, logger)
	}

	rain := opts.Backdrop
	if !opts.Capabilities.Backdrop {
		rain = nil
	}

	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Placeholder = "@startuml\nAlice -> Bob: hello\n@enduml"
	ta.SetValue(sess.Source)

	m := Model{
		ctx:         ctx,
		sess:        sess,
		fetcher:     opts.Fetcher,
		rain:        rain,
		caps:        opts.Capabilities,
		inputTTY:    opts.InputTTY,
		downloadDir: opts.DownloadDir,
		frameEvery:  frameEvery,
		logger:      logger,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		editor:      ta,
		cache:       &renderCache{},
		overlayView: viewport.New(0, 0),
	}
	m.restyle()
	return m
}

// Session returns the session the model drives.
func (m Model) Session() *session.State { return m.sess }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink}
	if m.rain != nil {
		cmds = append(cmds, frameCmd(m.frameEvery))
	}
	if m.sess.Result.Succeeded() && m.fetcher != nil {
		cmds = append(cmds, fetchPreviewCmd(m.ctx, m.fetcher, m.sess.Result.Identifier))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case frameMsg:
		if m.rain == nil {
			return m, nil
		}
		if m.sess.Result.Kind == render.KindEmpty {
			m.rain.Step()
		}
		return m, frameCmd(m.frameEvery)

	case previewMsg:
		m.handlePreview(msg)
		return m, nil

	case overlaySettleMsg:
		return m, m.dispatch(session.OverlaySettled{})

	case overlayTransitionMsg:
		return m, m.dispatch(session.OverlayTransitionEnded{Fade: msg.fade})

	case downloadMsg:
		if msg.err != nil {
			m.logger.Warn("download failed", "format", msg.format, "error", msg.err)
			m.setStatus("Download failed: "+msg.err.Error(), true)
			return m, nil
		}
		m.logger.Info("diagram saved", "path", msg.path)
		m.setStatus("Saved "+msg.path, false)
		return m, nil

	case copyMsg:
		if msg.err != nil {
			m.logger.Warn("clipboard write failed", "error", msg.err)
			m.setStatus("Copy failed: "+msg.err.Error(), true)
			return m, nil
		}
		m.setStatus("Copied "+msg.url, false)
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.sess.Overlay.Shown() {
		return m.renderOverlay()
	}
	if m.sess.ThemeMenu.IsOpen() {
		return m.renderThemePanel()
	}
	return m.renderMain()
}

// dispatch forwards ev to the session and turns the resulting effects into
// commands.
func (m *Model) dispatch(ev session.Event) tea.Cmd {
	fx := m.sess.Dispatch(ev)

	var cmds []tea.Cmd
	if fx.ThemeChanged {
		m.restyle()
	}
	if fx.Settle {
		cmds = append(cmds, settleCmd())
	}
	if fx.AwaitTransition {
		cmds = append(cmds, transitionCmd(m.sess.Overlay.Fade()))
	}
	if cmd := m.loadImage(fx.LoadImage); cmd != nil {
		cmds = append(cmds, cmd)
	}
	m.resize()
	return tea.Batch(cmds...)
}

// loadImage schedules a preview fetch unless id is loaded or in flight.
func (m *Model) loadImage(id string) tea.Cmd {
	if id == "" || m.fetcher == nil {
		return nil
	}
	if m.preview.id == id && (m.preview.img != nil || m.preview.err != nil) {
		return nil
	}
	if m.pending == id {
		return nil
	}
	m.pending = id
	return fetchPreviewCmd(m.ctx, m.fetcher, id)
}

// handlePreview stores a fetched preview. Results for an identifier that is
// no longer current are dropped.
func (m *Model) handlePreview(msg previewMsg) {
	if m.pending == msg.id {
		m.pending = ""
	}
	if msg.id != m.sess.Result.Identifier {
		m.logger.Debug("discarding stale preview", "identifier", msg.id)
		return
	}
	if msg.err != nil {
		m.logger.Warn("preview unavailable", "identifier", msg.id, "error", msg.err)
	}
	m.preview = loadedImage{id: msg.id, img: msg.img, err: msg.err}
	m.refreshOverlay()
}

// resize pushes the current layout into the sized components.
func (m *Model) resize() {
	if !m.ready {
		return
	}
	l := m.layout()
	m.editor.SetWidth(max(l.editor.w-2-l.gutterW-1, 1))
	m.editor.SetHeight(max(l.editor.h-2, 1))
	if m.rain != nil {
		m.rain.Resize(max(l.output.w-2, 0), max(l.output.h-2, 0))
	}
	m.help.Width = m.width
	m.syncScroll()
	m.refreshOverlay()
}

// syncScroll follows the textarea's cursor-driven scrolling so the gutter
// stays aligned with the visible rows.
func (m *Model) syncScroll() {
	h := m.editor.Height()
	row := m.editor.Line()
	off := m.editorOffset
	if row < off {
		off = row
	}
	if h > 0 && row >= off+h {
		off = row - h + 1
	}
	m.editorOffset = off
	if m.sess.Gutter.Offset() != off {
		m.sess.Dispatch(session.Scrolled{Offset: off})
	}
}

// restyle applies the active preset to every styled component.
func (m *Model) restyle() {
	m.palette = m.sess.Theme.Active().Palette
	m.styles = m.palette.Styles()

	st := textarea.Style{
		Base:             m.styles.Text,
		CursorLine:       m.styles.Text,
		CursorLineNumber: m.styles.FaintText,
		EndOfBuffer:      m.styles.FaintText,
		LineNumber:       m.styles.FaintText,
		Placeholder:      m.styles.FaintText,
		Prompt:           m.styles.FaintText,
		Text:             m.styles.Text,
	}
	m.editor.FocusedStyle = st
	m.editor.BlurredStyle = st
	m.editor.Focus()

	m.help.Styles.ShortKey = m.styles.AccentText
	m.help.Styles.ShortDesc = m.styles.MutedText
	m.help.Styles.ShortSeparator = m.styles.FaintText
	m.help.Styles.FullKey = m.styles.AccentText
	m.help.Styles.FullDesc = m.styles.MutedText
	m.help.Styles.FullSeparator = m.styles.FaintText

	m.cache.reset()
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// Messages

type frameMsg time.Time

type previewMsg struct {
	id  string
	img image.Image
	err error
}

type overlaySettleMsg struct{}

type overlayTransitionMsg struct{ fade uint64 }

type downloadMsg struct {
	format render.Format
	path   string
	err    error
}

type copyMsg struct {
	url string
	err error
}

// Commands

func frameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func settleCmd() tea.Cmd {
	return tea.Tick(settleDelay, func(time.Time) tea.Msg {
		return overlaySettleMsg{}
	})
}

func transitionCmd(fade uint64) tea.Cmd {
	return tea.Tick(fadeDuration, func(time.Time) tea.Msg {
		return overlayTransitionMsg{fade: fade}
	})
}

func fetchPreviewCmd(ctx context.Context, f renderer.Fetcher, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, previewTimeout)
		defer cancel()
		payload, err := f.Fetch(ctx, render.FormatPNG, id)
		if err != nil {
			return previewMsg{id: id, err: err}
		}
		img, err := preview.Decode(payload.Body)
		return previewMsg{id: id, img: img, err: err}
	}
}

func downloadCmd(ctx context.Context, f renderer.Fetcher, format render.Format, id, dir string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, downloadTimeout)
		defer cancel()
		path, err := renderer.Save(ctx, f, format, id, dir)
		return downloadMsg{format: format, path: path, err: err}
	}
}

func copyCmd(url string) tea.Cmd {
	return func() tea.Msg {
		return copyMsg{url: url, err: clipboard.WriteAll(url)}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(m.ctx)}
	if m.caps.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	if m.inputTTY {
		progOpts = append(progOpts, tea.WithInputTTY())
	}
	_, err := tea.NewProgram(m, progOpts...).Run()
	return err
}
