package gui

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"codeberg.org/snonux/flipdeck/internal/deck"
	"codeberg.org/snonux/flipdeck/internal/session"
)

// summaryLength is how many characters of a question the list shows.
const summaryLength = 40

// ManagerWindow lists all cards and edits them through the shared session.
type ManagerWindow struct {
	app    *Application
	window fyne.Window

	list          *widget.List
	questionEntry *FieldEntry
	answerEntry   *FieldEntry

	addBtn    *ttwidget.Button
	updateBtn *ttwidget.Button
	clearBtn  *ttwidget.Button
	deleteBtn *ttwidget.Button
	exportBtn *ttwidget.Button

	selected    int
	unsubscribe func()
}

// ListLabel is the list entry for the card at index i.
func ListLabel(i int, card deck.Card) string {
	return fmt.Sprintf("%d. %s...", i+1, card.Summary(summaryLength))
}

func newManagerWindow(a *Application) *ManagerWindow {
	m := &ManagerWindow{
		app:      a,
		window:   a.app.NewWindow("Manage Cards"),
		selected: session.NoSelection,
	}
	m.setupUI()
	m.unsubscribe = a.session.Subscribe(m.onSessionEvent)
	return m
}

func (m *ManagerWindow) setupUI() {
	m.window.Resize(fyne.NewSize(720, 520))

	m.list = widget.NewList(
		func() int { return m.app.session.Len() },
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			card, ok := m.app.session.Card(id)
			if !ok {
				return
			}
			obj.(*widget.Label).SetText(ListLabel(id, card))
		},
	)
	m.list.OnSelected = m.onSelected
	m.list.OnUnselected = func(widget.ListItemID) {
		m.selected = session.NoSelection
	}

	// Escape in either field resets fields and selection together
	m.questionEntry = NewFieldEntry("Question", false)
	m.questionEntry.OnEscape = m.onClear

	m.answerEntry = NewFieldEntry("Answer", true)
	m.answerEntry.SetMinRowsVisible(3)
	m.answerEntry.OnEscape = m.onClear

	m.addBtn = ttwidget.NewButtonWithIcon("Add", theme.ContentAddIcon(), m.onAdd)
	m.updateBtn = ttwidget.NewButtonWithIcon("Update", theme.DocumentSaveIcon(), m.onUpdate)
	m.clearBtn = ttwidget.NewButtonWithIcon("Clear Fields", theme.ContentClearIcon(), m.onClear)
	m.deleteBtn = ttwidget.NewButtonWithIcon("Delete", theme.DeleteIcon(), m.onDelete)
	m.deleteBtn.Importance = widget.DangerImportance
	m.exportBtn = ttwidget.NewButtonWithIcon("Export", theme.UploadIcon(), m.app.onExport)

	form := container.NewVBox(
		widget.NewLabel("Question:"),
		m.questionEntry,
		widget.NewLabel("Answer:"),
		m.answerEntry,
		container.NewHBox(m.addBtn, m.updateBtn, m.clearBtn, m.deleteBtn, m.exportBtn),
	)

	cards := container.NewBorder(nil, form, nil, nil, m.list)

	tabs := container.NewAppTabs(
		container.NewTabItemWithIcon("Cards", theme.ListIcon(), cards),
		container.NewTabItemWithIcon("Log", theme.InfoIcon(), m.app.logViewer.Panel()),
	)

	m.window.SetContent(fynetooltip.AddWindowToolTipLayer(tabs, m.window.Canvas()))

	m.addBtn.SetToolTip("Add a new card from the fields")
	m.updateBtn.SetToolTip("Overwrite the selected card")
	m.clearBtn.SetToolTip("Clear fields and selection")
	m.deleteBtn.SetToolTip("Delete the selected card")
	m.exportBtn.SetToolTip("Export all cards to Anki")
}

func (m *ManagerWindow) onSessionEvent(ev session.Event) {
	if ev == session.DeckChanged {
		m.list.Refresh()
	}
}

func (m *ManagerWindow) onSelected(id widget.ListItemID) {
	card, ok := m.app.session.Card(id)
	if !ok {
		m.selected = session.NoSelection
		return
	}
	m.selected = id
	m.questionEntry.SetText(card.Question)
	m.answerEntry.SetText(card.Answer)
}

func (m *ManagerWindow) onAdd() {
	err := m.app.session.Add(m.questionEntry.Text, m.answerEntry.Text)
	if err == nil || errors.Is(err, deck.ErrSave) {
		m.clearFields()
	}
	m.report(err, "Card added.")
}

func (m *ManagerWindow) onUpdate() {
	err := m.app.session.Update(m.selected, m.questionEntry.Text, m.answerEntry.Text)
	m.report(err, "Card updated.")
}

func (m *ManagerWindow) onClear() {
	m.clearFields()
	m.list.UnselectAll()
	m.selected = session.NoSelection
}

func (m *ManagerWindow) onDelete() {
	card, ok := m.app.session.Card(m.selected)
	if !ok {
		m.report(m.app.session.Delete(m.selected, false), "")
		return
	}

	dialog.ShowConfirm("Delete Card",
		fmt.Sprintf("Delete the card '%s'?", card.Summary(summaryLength)),
		m.deleteSelected, m.window)
}

// deleteSelected finishes a delete once the confirmation dialog closed.
func (m *ManagerWindow) deleteSelected(confirmed bool) {
	if !confirmed {
		return
	}

	err := m.app.session.Delete(m.selected, true)
	if err == nil || errors.Is(err, deck.ErrSave) {
		m.onClear()
	}
	m.report(err, "Card deleted.")
}

func (m *ManagerWindow) clearFields() {
	m.questionEntry.SetText("")
	m.answerEntry.SetText("")
}

// report acknowledges the outcome of a CRUD action with a blocking dialog.
func (m *ManagerWindow) report(err error, success string) {
	switch {
	case err == nil:
		dialog.ShowInformation("Success", success, m.window)
	case errors.Is(err, deck.ErrSave):
		m.app.log.Error().Err(err).Msg("deck not saved")
		dialog.ShowError(fmt.Errorf("changes may not be saved: %w", err), m.window)
	default:
		dialog.ShowError(err, m.window)
	}
}

// close drops the session subscription.
func (m *ManagerWindow) close() {
	m.unsubscribe()
}
