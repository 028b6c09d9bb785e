package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/plantview/internal/session"
)

// handleKey routes a key press to whatever currently has input: help,
// overlay, theme panel, open download menu, then the editor.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case m.sess.Overlay.Shown():
		return m.handleOverlayKey(msg)
	case m.sess.ThemeMenu.IsOpen():
		return m.handleThemeKey(msg)
	case m.sess.Downloads.IsOpen():
		if cmd, ok := m.handleDownloadKey(msg); ok {
			return m, cmd
		}
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		return m, m.dispatch(session.Cancel{})
	case key.Matches(msg, m.keys.Downloads):
		return m, m.dispatch(session.ToggleDownloads{})
	case key.Matches(msg, m.keys.Expand):
		return m, m.dispatch(session.OpenOverlay{})
	case key.Matches(msg, m.keys.ThemeMenu):
		return m, m.dispatch(session.ToggleThemeMenu{})
	case key.Matches(msg, m.keys.CycleTheme):
		return m, m.dispatch(session.CycleTheme{})
	}

	return m.updateEditor(msg)
}

// updateEditor feeds msg to the textarea and re-renders on any change.
func (m Model) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	cmds = append(cmds, cmd)

	if v := m.editor.Value(); v != m.sess.Source {
		m.setStatus("", false)
		cmds = append(cmds, m.dispatch(session.SourceChanged{Text: v}))
	}
	m.syncScroll()
	return m, tea.Batch(cmds...)
}

func (m Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ZoomIn):
		return m, m.dispatch(session.ZoomIn{})
	case key.Matches(msg, m.keys.ZoomOut):
		return m, m.dispatch(session.ZoomOut{})
	case key.Matches(msg, m.keys.ZoomReset):
		return m, m.dispatch(session.ZoomReset{})
	case key.Matches(msg, m.keys.Close):
		return m, m.dispatch(session.CloseOverlay{})
	case key.Matches(msg, m.keys.Cancel):
		return m, m.dispatch(session.Cancel{})
	case key.Matches(msg, m.keys.Expand):
		// Reopens during the fade-out
		if m.sess.Overlay.Phase() == session.OverlayClosing {
			return m, m.dispatch(session.OpenOverlay{})
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.overlayView, cmd = m.overlayView.Update(msg)
	return m, cmd
}

func (m Model) handleThemeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		return m, m.dispatch(session.ThemeCursor{Delta: -1})
	case key.Matches(msg, m.keys.Down):
		return m, m.dispatch(session.ThemeCursor{Delta: 1})
	case key.Matches(msg, m.keys.Confirm):
		cmd := m.dispatch(session.SelectTheme{})
		return m, tea.Batch(cmd, m.dispatch(session.ToggleThemeMenu{}))
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.ThemeMenu):
		return m, m.dispatch(session.Cancel{})
	case key.Matches(msg, m.keys.CycleTheme):
		return m, m.dispatch(session.CycleTheme{})
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	}
	return m, nil
}

// handleDownloadKey handles menu navigation. Keys the menu does not use
// fall through to the editor.
func (m *Model) handleDownloadKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Up):
		return m.dispatch(session.DownloadCursor{Delta: -1}), true
	case key.Matches(msg, m.keys.Down):
		return m.dispatch(session.DownloadCursor{Delta: 1}), true
	case key.Matches(msg, m.keys.Confirm):
		return m.saveSelected(), true
	case key.Matches(msg, m.keys.Copy):
		return m.copySelected(), true
	}
	return nil, false
}

// saveSelected downloads the payload for the menu's cursor entry.
func (m *Model) saveSelected() tea.Cmd {
	link, ok := m.sess.Downloads.Selected()
	if !ok {
		return nil
	}
	if !m.caps.Downloads || m.fetcher == nil {
		m.setStatus("Downloads unavailable; link: "+link.URL, true)
		return nil
	}
	m.setStatus("Downloading "+string(link.Format)+"...", false)
	return downloadCmd(m.ctx, m.fetcher, link.Format, m.sess.Result.Identifier, m.downloadDir)
}

// copySelected puts the cursor entry's link on the clipboard.
func (m *Model) copySelected() tea.Cmd {
	link, ok := m.sess.Downloads.Selected()
	if !ok {
		return nil
	}
	if !m.caps.Clipboard {
		m.setStatus("Clipboard unavailable", true)
		return nil
	}
	return copyCmd(link.URL)
}

// handleMouse maps a left press to a session region, then performs the
// control's own action.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.caps.Mouse {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		if m.sess.Overlay.Shown() {
			var cmd tea.Cmd
			m.overlayView, cmd = m.overlayView.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	l := m.layout()
	region, idx := l.hit(m.sess, msg.X, msg.Y)
	cmds := []tea.Cmd{m.dispatch(session.PointerPress{Target: region})}

	switch region {
	case session.RegionDownloadTrigger:
		cmds = append(cmds, m.dispatch(session.ToggleDownloads{}))
	case session.RegionDownloadMenu:
		if delta := idx - m.sess.Downloads.Cursor(); delta != 0 {
			cmds = append(cmds, m.dispatch(session.DownloadCursor{Delta: delta}))
		}
		cmds = append(cmds, m.saveSelected())
	case session.RegionThemeToggle:
		cmds = append(cmds, m.dispatch(session.ToggleThemeMenu{}))
	case session.RegionThemePanel:
		if idx >= 0 {
			opts := m.sess.Theme.Options()
			cmds = append(cmds,
				m.dispatch(session.SelectTheme{Key: opts[idx].Key}),
				m.dispatch(session.ToggleThemeMenu{}))
		}
	case session.RegionOverlayContent:
		if l.overlayClose.contains(msg.X, msg.Y) {
			cmds = append(cmds, m.dispatch(session.CloseOverlay{}))
		}
	case session.RegionOther:
		if l.expand.contains(msg.X, msg.Y) {
			cmds = append(cmds, m.dispatch(session.OpenOverlay{}))
		}
	}
	return m, tea.Batch(cmds...)
}
