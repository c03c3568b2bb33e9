package gui

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"codeberg.org/snonux/flipdeck/internal"
	"codeberg.org/snonux/flipdeck/internal/anki"
)

var formatOptions = []string{"APKG (Recommended)", "CSV"}

// exportPath builds the output file for a deck name inside dir.
func exportPath(dir, deckName string, format anki.Format) string {
	name := internal.SanitizeFilename(deckName)
	if name == "" {
		name = internal.SanitizeFilename(anki.DefaultDeckName)
	}
	return filepath.Join(dir, name+format.Extension())
}

// onExport exports all cards of the session to Anki with format selection
func (a *Application) onExport() {
	if a.session.Len() == 0 {
		dialog.ShowInformation("No Cards", "No cards to export. Add some cards first!", a.window)
		return
	}

	formatSelect := widget.NewSelect(formatOptions, nil)
	formatSelect.SetSelected(formatOptions[0])

	deckNameEntry := widget.NewEntry()
	deckNameEntry.SetPlaceHolder(anki.DefaultDeckName)
	deckNameEntry.SetText(a.config.DeckName)

	selectedDir := a.config.ExportDir
	dirLabel := widget.NewLabel(selectedDir)

	dirButton := widget.NewButton("Browse...", func() {
		folderDialog := dialog.NewFolderOpen(func(dir fyne.ListableURI, err error) {
			if err != nil || dir == nil {
				return
			}
			selectedDir = dir.Path()
			dirLabel.SetText(selectedDir)
		}, a.window)

		// Try to set initial directory
		if uri, err := storage.ParseURI("file://" + selectedDir); err == nil {
			if listableURI, ok := uri.(fyne.ListableURI); ok {
				folderDialog.SetLocation(listableURI)
			}
		}

		folderDialog.Show()
	})

	content := container.NewVBox(
		widget.NewLabel("Export Format:"),
		formatSelect,
		widget.NewSeparator(),
		widget.NewLabel("Deck Name:"),
		deckNameEntry,
		widget.NewSeparator(),
		widget.NewLabel("Export Directory:"),
		container.NewBorder(nil, nil, nil, dirButton, dirLabel),
		widget.NewLabel(""),
		widget.NewRichTextFromMarkdown("**APKG**: ready to import Anki package\n**CSV**: plain Front/Back text"),
	)

	d := dialog.NewCustomConfirm("Export to Anki", "Export", "Cancel", content, func(export bool) {
		if !export {
			return
		}

		format := anki.FormatAPKG
		if formatSelect.Selected == formatOptions[1] {
			format = anki.FormatCSV
		}
		deckName := deckNameEntry.Text
		if deckName == "" {
			deckName = anki.DefaultDeckName
		}

		cards := a.session.Cards()
		outputPath := exportPath(selectedDir, deckName, format)
		if err := anki.Export(cards, format, outputPath, deckName); err != nil {
			a.log.Error().Err(err).Str("path", outputPath).Msg("export failed")
			dialog.ShowError(fmt.Errorf("failed to export %s: %w", format, err), a.window)
			return
		}

		a.log.Info().Int("cards", len(cards)).Str("path", outputPath).Msg("exported deck")
		dialog.ShowInformation("Export Complete",
			fmt.Sprintf("Exported %d cards to %s", len(cards), outputPath), a.window)
	}, a.window)

	d.Resize(fyne.NewSize(420, 320))
	d.Show()
}
