package model

// Confirmer asks the user to confirm a destructive action.
type Confirmer interface {
	Confirm(message string) bool
}

// Prompter collects free text from the user. ok is false when the user gave no answer.
type Prompter interface {
	PromptText(message string) (answer string, ok bool)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(message string) bool

// Confirm calls f(message).
func (f ConfirmFunc) Confirm(message string) bool {
	return f(message)
}

// PromptFunc adapts a function to Prompter.
type PromptFunc func(message string) (string, bool)

// PromptText calls f(message).
func (f PromptFunc) PromptText(message string) (string, bool) {
	return f(message)
}
