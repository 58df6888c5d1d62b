// Package board keeps the notice list, the search filter and the
// create/edit form consistent with the REST resource. A Board is the single
// state object behind one open page: intents are dispatched into it, and
// every mutation is followed by a full re-fetch of the list.
package board

import (
	"context"
	"sync"
	"time"

	"github.com/iyouport-org/noticeboard/pkg/webapi"
	log "github.com/sirupsen/logrus"
)

// API is the REST resource the board synchronizes with.
type API interface {
	List(ctx context.Context) ([]webapi.Notice, error)
	Get(ctx context.Context, id uint) (webapi.Notice, error)
	Create(ctx context.Context, req webapi.NoticeRequest) (webapi.Notice, error)
	Update(ctx context.Context, id uint, req webapi.NoticeRequest) (webapi.Notice, error)
	Delete(ctx context.Context, id uint) error
}

type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

type Form struct {
	Title       string
	Description string
}

// State is a snapshot of a board. Notices is the filtered view of the
// store; Total is the size of the unfiltered snapshot.
type State struct {
	Mode       Mode
	EditingID  uint
	Form       Form
	Search     string
	Notices    []webapi.Notice
	Total      int
	Refreshing bool
	Toast      *Toast
}

// Count is the number shown in the stats header.
func (s State) Count() int {
	return len(s.Notices)
}

func (s State) Filtering() bool {
	return NormalizeTerm(s.Search) != ""
}

// Board serializes intents on mu. Readers never take mu: they get the
// state last published under view, so a slow request does not block them.
type Board struct {
	mu         sync.Mutex
	view       sync.RWMutex
	published  State
	api        API
	clock      Clock
	confirm    Confirmer
	logger     *log.Entry
	store      *Store
	mode       Mode
	editingID  uint
	form       Form
	search     string
	refreshing bool
	toast      *Toast
}

type Option func(*Board)

func WithClock(clock Clock) Option {
	return func(b *Board) {
		b.clock = clock
	}
}

// WithConfirmer sets the gate used by Delete intents that carry none.
func WithConfirmer(confirm Confirmer) Option {
	return func(b *Board) {
		b.confirm = confirm
	}
}

func WithLogger(logger *log.Entry) Option {
	return func(b *Board) {
		b.logger = logger
	}
}

// New returns an empty board in create mode. Without WithConfirmer every
// delete is declined.
func New(api API, opts ...Option) *Board {
	b := &Board{
		api:     api,
		clock:   realClock{},
		confirm: Answer(false),
		logger:  log.NewEntry(log.StandardLogger()),
		store:   NewStore(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.published = b.snapshot()
	return b
}

// Dispatch applies intent and returns the resulting state. Intents on one
// board are handled one at a time.
func (b *Board) Dispatch(ctx context.Context, intent Intent) State {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch i := intent.(type) {
	case Load:
		b.list(ctx)
	case Refresh:
		b.refresh(ctx)
	case Submit:
		b.submit(ctx, i)
	case Cancel:
		b.resetForm()
	case Edit:
		b.edit(ctx, i.ID)
	case Delete:
		b.remove(ctx, i)
	case Search:
		b.search = i.Term
	case ClearSearch:
		b.search = ""
	default:
		b.logger.WithField("intent", intent).Warn("unknown intent")
	}
	b.publish()
	return b.State()
}

// State returns the last published state. It does not wait for an intent
// in flight.
func (b *Board) State() State {
	b.view.RLock()
	defer b.view.RUnlock()
	s := b.published
	s.Notices = append([]webapi.Notice(nil), s.Notices...)
	if s.Toast != nil {
		toast := *s.Toast
		s.Toast = &toast
	}
	return s
}

// publish makes the working state visible to State. Callers hold mu.
func (b *Board) publish() {
	s := b.snapshot()
	b.view.Lock()
	b.published = s
	b.view.Unlock()
}

// Now is the board clock's current time.
func (b *Board) Now() time.Time {
	return b.clock.Now()
}

func (b *Board) snapshot() State {
	s := State{
		Mode:       b.mode,
		EditingID:  b.editingID,
		Form:       b.form,
		Search:     b.search,
		Notices:    b.store.Filtered(b.search),
		Total:      b.store.Len(),
		Refreshing: b.refreshing,
	}
	if b.toast != nil {
		toast := *b.toast
		s.Toast = &toast
	}
	return s
}

func (b *Board) resetForm() {
	b.mode = ModeCreate
	b.editingID = 0
	b.form = Form{}
}

func (b *Board) notify(kind ToastKind, message string) {
	b.toast = &Toast{
		Message: message,
		Kind:    kind,
		ShownAt: b.clock.Now(),
	}
}
