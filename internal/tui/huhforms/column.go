// Package huhforms builds the huh forms used by the board for column
// management and the note backlog picker.
package huhforms

import (
	"github.com/charmbracelet/huh"

	"tablero/internal/models"
)

// ColumnNameForm creates a huh form for adding or renaming a column.
// The form contains a single input field for the column name.
// No confirmation field is used - the form saves on completion.
func ColumnNameForm(name *string, isEdit bool) *huh.Form {
	title := "New Column Name"
	if isEdit {
		title = "Rename Column"
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title(title).
			Placeholder("Enter column name...").
			CharLimit(50).
			Value(name),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}

// BacklogPickerForm creates a huh select over the off-board notes. Picking
// one puts it on the board; the selected note id lands in noteID.
func BacklogPickerForm(notes []*models.Card, noteID *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(notes))
	for _, note := range notes {
		options = append(options, huh.NewOption(note.Title, note.ID))
	}

	fields := []huh.Field{
		huh.NewSelect[string]().
			Key("note").
			Title("Add note to board").
			Options(options...).
			Value(noteID),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}
