package board

import "time"

// ToastDuration is how long a notification stays on screen.
const ToastDuration = 3 * time.Second

type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
)

type Toast struct {
	Message string
	Kind    ToastKind
	ShownAt time.Time
}

func (t Toast) Icon() string {
	if t.Kind == ToastSuccess {
		return "✓"
	}
	return "✕"
}

func (t Toast) Visible(now time.Time) bool {
	return now.Before(t.ShownAt.Add(ToastDuration))
}

// Clock is the board's source of time, swapped out in tests.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}
