// Package tui provides the terminal user interface for taskdeck.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal  Mode = iota // Default navigation mode
	ModeSearch              // Search input mode
	ModeForm                // Task form mode (create or edit)
	ModeConfirm             // Confirmation dialog mode
	ModeHelp                // Help overlay mode
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeSearch:
		return "search"
	case ModeForm:
		return "form"
	case ModeConfirm:
		return "confirm"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeSearch, ModeForm:
		return true
	case ModeNormal, ModeConfirm, ModeHelp:
		return false
	}
	return false
}

// ConfirmAction represents the type of action requiring confirmation.
type ConfirmAction int

const (
	ConfirmNone   ConfirmAction = iota
	ConfirmDelete               // Delete task
)

// String returns a human-readable description of the action.
func (a ConfirmAction) String() string {
	switch a {
	case ConfirmNone:
		return ""
	case ConfirmDelete:
		return "delete"
	}
	return ""
}

// FormField identifies the focused field in the task form.
type FormField int

const (
	FieldTitle FormField = iota
	FieldDescription
	FieldPriority
	FieldStatus
	FieldDueDate
	FieldTags

	formFieldCount
)

// Next returns the following field, wrapping to the first.
func (f FormField) Next() FormField {
	return (f + 1) % formFieldCount
}

// Prev returns the preceding field, wrapping to the last.
func (f FormField) Prev() FormField {
	return (f - 1 + formFieldCount) % formFieldCount
}

// IsTextField reports whether the field is backed by a text input.
func (f FormField) IsTextField() bool {
	switch f {
	case FieldTitle, FieldDescription, FieldDueDate, FieldTags:
		return true
	case FieldPriority, FieldStatus:
		return false
	}
	return false
}

// Label returns the form label for the field.
func (f FormField) Label() string {
	switch f {
	case FieldTitle:
		return "Title"
	case FieldDescription:
		return "Description"
	case FieldPriority:
		return "Priority"
	case FieldStatus:
		return "Status"
	case FieldDueDate:
		return "Due date"
	case FieldTags:
		return "Tags"
	}
	return ""
}
