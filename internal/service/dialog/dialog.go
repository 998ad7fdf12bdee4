// Package dialog implements the mutation dialogs: small forms that submit one
// create or update call and hand the result back to the owning view.
package dialog

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/farmdash/internal/domain"
)

// ErrBusy is returned by Submit while a previous submission is in flight.
var ErrBusy = errors.New("dialog: submission in progress")

// Config configures a Dialog.
type Config[F, R any] struct {
	// Name identifies the dialog kind, e.g. "create-farm".
	Name string
	// Fallback is shown when a failure carries no message.
	Fallback string
	// CloseOnSuccess makes the dialog close itself after a successful submit.
	CloseOnSuccess bool
	// Blank returns the empty form. Nil means the zero F.
	Blank func() F
	// Seed, when set, fills the form each time the dialog opens.
	Seed func() F
	// Submit validates the form and performs the call.
	Submit func(ctx context.Context, form F) (R, error)
}

// Dialog is the state machine idle → submitting → idle, with either the
// success callback fired or an error message kept.
type Dialog[F, R any] struct {
	id  string
	cfg Config[F, R]

	mu        sync.Mutex
	open      bool
	loading   bool
	err       string
	form      F
	onSuccess func(R)
}

// New creates a closed, idle dialog with a blank form.
func New[F, R any](cfg Config[F, R]) *Dialog[F, R] {
	d := &Dialog[F, R]{id: uuid.NewString(), cfg: cfg}
	d.form = d.blank()
	return d
}

func (d *Dialog[F, R]) blank() F {
	if d.cfg.Blank != nil {
		return d.cfg.Blank()
	}
	var zero F
	return zero
}

// ID is a client-generated identifier, stable for the dialog's lifetime.
func (d *Dialog[F, R]) ID() string { return d.id }

// Name returns the dialog kind.
func (d *Dialog[F, R]) Name() string { return d.cfg.Name }

// OnSuccess registers the single success callback, replacing any previous one.
func (d *Dialog[F, R]) OnSuccess(fn func(R)) {
	d.mu.Lock()
	d.onSuccess = fn
	d.mu.Unlock()
}

// Open shows the dialog, seeding the form when the dialog has a seed.
func (d *Dialog[F, R]) Open() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.open = true
	if d.cfg.Seed != nil && !d.loading {
		d.form = d.cfg.Seed()
	}
}

// Close hides the dialog. Form contents and the last error are kept.
func (d *Dialog[F, R]) Close() {
	d.mu.Lock()
	d.open = false
	d.mu.Unlock()
}

// IsOpen reports whether the dialog is shown.
func (d *Dialog[F, R]) IsOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.open
}

// Loading reports whether a submission is in flight. Inputs are disabled
// while it is true.
func (d *Dialog[F, R]) Loading() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loading
}

// Error returns the message of the last failed submission, or "".
func (d *Dialog[F, R]) Error() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.err
}

// Form returns a copy of the current form.
func (d *Dialog[F, R]) Form() F {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.form
}

// SetForm replaces the form. It is ignored, returning false, while loading.
func (d *Dialog[F, R]) SetForm(f F) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.loading {
		return false
	}
	d.form = f
	return true
}

// Submit sends the current form. On success the form is reset, the dialog
// closes if it is an edit dialog, and the callback receives the result.
// On failure the error message is kept for display and the form is left as
// typed.
func (d *Dialog[F, R]) Submit(ctx context.Context) (R, error) {
	var zero R

	d.mu.Lock()
	if d.loading {
		d.mu.Unlock()
		return zero, ErrBusy
	}
	d.loading = true
	d.err = ""
	form := d.form
	d.mu.Unlock()

	res, err := d.cfg.Submit(ctx, form)

	d.mu.Lock()
	d.loading = false
	if err != nil {
		d.err = domain.UserMessage(err, d.cfg.Fallback)
		d.mu.Unlock()
		return zero, err
	}
	d.form = d.blank()
	if d.cfg.CloseOnSuccess {
		d.open = false
	}
	cb := d.onSuccess
	d.mu.Unlock()

	if cb != nil {
		cb(res)
	}
	return res, nil
}

// SubmitForm is SetForm followed by Submit, for surfaces that post the
// whole form at once.
func (d *Dialog[F, R]) SubmitForm(ctx context.Context, f F) (R, error) {
	if !d.SetForm(f) {
		var zero R
		return zero, ErrBusy
	}
	return d.Submit(ctx)
}
