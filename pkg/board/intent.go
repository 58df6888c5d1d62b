package board

import "context"

// Intent is a user action fed to Board.Dispatch.
type Intent interface {
	intent()
}

// Load is the initial fetch when the page is opened.
type Load struct{}

// Refresh is an explicit reload from the refresh action.
type Refresh struct{}

// Submit carries the form values exactly as entered.
type Submit struct {
	Title       string
	Description string
}

type Cancel struct{}

type Edit struct {
	ID uint
}

// Delete asks Confirm, or the board's Confirmer when Confirm is nil,
// before issuing the request.
type Delete struct {
	ID      uint
	Confirm Confirmer
}

type Search struct {
	Term string
}

type ClearSearch struct{}

func (Load) intent()        {}
func (Refresh) intent()     {}
func (Submit) intent()      {}
func (Cancel) intent()      {}
func (Edit) intent()        {}
func (Delete) intent()      {}
func (Search) intent()      {}
func (ClearSearch) intent() {}

// Confirmer is the yes/no gate in front of destructive actions.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

type ConfirmFunc func(ctx context.Context, prompt string) bool

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) bool {
	return f(ctx, prompt)
}

// Answer is a Confirmer whose answer is already known, such as one
// submitted with a confirmation form.
type Answer bool

func (a Answer) Confirm(ctx context.Context, prompt string) bool {
	return bool(a)
}
