package gui

import (
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
	"github.com/rs/zerolog"

	"codeberg.org/snonux/flipdeck/internal"
	"codeberg.org/snonux/flipdeck/internal/anki"
	"codeberg.org/snonux/flipdeck/internal/session"
)

// Application represents the main GUI application
type Application struct {
	// Fyne components
	app    fyne.App
	window fyne.Window

	// UI elements
	cardText    *widget.Label
	statusLabel *widget.Label

	// Navigation buttons
	prevBtn *ttwidget.Button
	flipBtn *ttwidget.Button
	nextBtn *ttwidget.Button

	// Toolbar buttons
	manageBtn *ttwidget.Button
	exportBtn *ttwidget.Button
	helpBtn   *ttwidget.Button

	session     *session.Session
	unsubscribe func()
	manager     *ManagerWindow

	config    *Config
	log       zerolog.Logger
	logViewer *LogViewer
}

// Config holds GUI application configuration
type Config struct {
	DeckName  string
	ExportDir string
}

// DefaultConfig returns default GUI configuration
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	return &Config{
		DeckName:  anki.DefaultDeckName,
		ExportDir: filepath.Join(homeDir, "Downloads"),
	}
}

// New creates a new GUI application showing sess
func New(config *Config, sess *session.Session, log zerolog.Logger, logViewer *LogViewer) *Application {
	return newApplication(app.NewWithID("org.codeberg.snonux.flipdeck"), config, sess, log, logViewer)
}

func newApplication(fyneApp fyne.App, config *Config, sess *session.Session, log zerolog.Logger, logViewer *LogViewer) *Application {
	if config == nil {
		config = DefaultConfig()
	} else {
		// Fill in missing fields with defaults
		defaults := DefaultConfig()
		if config.DeckName == "" {
			config.DeckName = defaults.DeckName
		}
		if config.ExportDir == "" {
			config.ExportDir = defaults.ExportDir
		}
	}
	if logViewer == nil {
		logViewer = NewLogViewer()
	}

	a := &Application{
		app:       fyneApp,
		window:    fyneApp.NewWindow(fmt.Sprintf("flipdeck v%s", internal.Version)),
		session:   sess,
		config:    config,
		log:       log.With().Str("component", "gui").Logger(),
		logViewer: logViewer,
	}

	a.setupUI()
	a.unsubscribe = sess.Subscribe(func(session.Event) { a.render() })
	a.render()

	return a
}

// setupUI creates the study window
func (a *Application) setupUI() {
	a.window.SetMaster()
	a.window.Resize(fyne.NewSize(640, 400))

	a.cardText = widget.NewLabel("")
	a.cardText.Alignment = fyne.TextAlignCenter
	a.cardText.Wrapping = fyne.TextWrapWord
	a.cardText.TextStyle = fyne.TextStyle{Bold: true}

	a.prevBtn = ttwidget.NewButtonWithIcon("Previous", theme.NavigateBackIcon(), a.onPrevious)
	a.flipBtn = ttwidget.NewButton(session.LabelShowAnswer, a.onFlip)
	a.flipBtn.Importance = widget.HighImportance
	a.nextBtn = ttwidget.NewButtonWithIcon("Next", theme.NavigateNextIcon(), a.onNext)

	a.manageBtn = ttwidget.NewButtonWithIcon("Manage Cards", theme.DocumentCreateIcon(), a.onManage)
	a.exportBtn = ttwidget.NewButtonWithIcon("", theme.UploadIcon(), a.onExport)
	a.helpBtn = ttwidget.NewButtonWithIcon("", theme.HelpIcon(), a.onShowHotkeys)

	toolbar := container.NewHBox(
		a.manageBtn,
		layout.NewSpacer(),
		a.exportBtn,
		a.helpBtn,
	)

	navigation := container.NewHBox(
		layout.NewSpacer(),
		a.prevBtn,
		a.flipBtn,
		a.nextBtn,
		layout.NewSpacer(),
	)

	a.statusLabel = widget.NewLabel("")
	a.statusLabel.TextStyle = fyne.TextStyle{Italic: true}

	content := container.NewBorder(
		container.NewVBox(toolbar, widget.NewSeparator()),
		container.NewVBox(navigation, widget.NewSeparator(), a.statusLabel),
		nil, nil,
		container.NewPadded(container.NewVBox(layout.NewSpacer(), a.cardText, layout.NewSpacer())),
	)

	// Add the tooltip layer to enable tooltips
	a.window.SetContent(fynetooltip.AddWindowToolTipLayer(content, a.window.Canvas()))

	// Tooltips can only be set once the layer exists
	a.setupTooltips()

	a.window.SetOnClosed(func() {
		if a.manager != nil {
			a.manager.window.Close()
		}
		a.unsubscribe()
	})

	a.setupKeyboardShortcuts()
}

// setupTooltips sets up all tooltips after the tooltip layer has been created
func (a *Application) setupTooltips() {
	a.prevBtn.SetToolTip("Previous card (←)")
	a.flipBtn.SetToolTip("Flip card (space)")
	a.nextBtn.SetToolTip("Next card (→)")
	a.manageBtn.SetToolTip("Manage cards (m)")
	a.exportBtn.SetToolTip("Export to Anki (x)")
	a.helpBtn.SetToolTip("Show hotkeys (h)")
}

// Run starts the GUI application
func (a *Application) Run() {
	a.log.Info().Int("cards", a.session.Len()).Msg("starting GUI")
	a.window.ShowAndRun()
}

// render redraws the study window from the session view
func (a *Application) render() {
	view := a.session.View()

	a.cardText.SetText(view.Text)
	a.flipBtn.SetText(view.FlipLabel)

	if view.Empty {
		a.statusLabel.SetText("No cards")
		a.prevBtn.Disable()
		a.flipBtn.Disable()
		a.nextBtn.Disable()
		return
	}

	a.statusLabel.SetText(statusText(view))
	a.prevBtn.Enable()
	a.flipBtn.Enable()
	a.nextBtn.Enable()
}

func statusText(view session.View) string {
	return fmt.Sprintf("Card %d of %d", view.Index+1, view.Total)
}

// setupKeyboardShortcuts configures study window shortcuts
func (a *Application) setupKeyboardShortcuts() {
	a.window.Canvas().SetOnTypedRune(func(r rune) {
		switch r {
		case 'm', 'M':
			a.onManage()
		case 'x', 'X':
			a.onExport()
		case 'h', 'H', '?':
			a.onShowHotkeys()
		case 'q', 'Q':
			a.app.Quit()
		}
	})

	a.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyLeft:
			a.onPrevious()
		case fyne.KeyRight:
			a.onNext()
		case fyne.KeySpace:
			a.onFlip()
		}
	})
}

// onShowHotkeys displays a dialog with all available keyboard shortcuts
func (a *Application) onShowHotkeys() {
	hotkeys := `## Study
**←** Previous card  
**→** Next card  
**Space** Flip card  

## Cards
**m** Manage cards  
**x** Export to Anki  

## Manager
**Esc** Clear fields and selection  

## Help
**h** Show hotkeys  
**c** Close dialog  
**q** Quit application  

---
Press **c** to close this dialog`

	content := widget.NewRichTextFromMarkdown(hotkeys)
	content.Wrapping = fyne.TextWrapWord

	scroll := container.NewScroll(container.NewPadded(content))
	scroll.SetMinSize(fyne.NewSize(360, 360))

	d := dialog.NewCustom("Keyboard Shortcuts", "Close", scroll, a.window)

	// Temporary handler for 'c' to close the dialog
	a.window.Canvas().SetOnTypedRune(func(r rune) {
		if r == 'c' || r == 'C' {
			d.Hide()
		}
	})
	a.window.Canvas().SetOnTypedKey(nil)

	d.SetOnClosed(func() {
		a.setupKeyboardShortcuts()
	})
	d.Show()
}
