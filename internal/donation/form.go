// Package donation implements the donation entry flow: amount selection,
// validation and submission to the store.
package donation

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"

	"fundraiser/internal/domain"
)

// PresetAmounts are the one-click donation amounts offered to supporters.
var PresetAmounts = []float64{25, 50, 100, 250, 500, 1000}

// Validation messages shown before any submission is attempted.
const (
	MsgNameRequired   = "Please enter your name"
	MsgAmountRequired = "Please select or enter a donation amount"
	MsgAmountTooLarge = "Please enter an amount of $1,000,000,000 or less"
	// MsgSubmitFailed is shown when a failed submission carries no description.
	MsgSubmitFailed = "Failed to process donation"
)

// MaxAmount is the largest single donation accepted. It fits the remote
// schema's numeric(14,2) columns with room for the running totals.
const MaxAmount = 1e9

// ValidationError carries the message of the first failed rule and matches
// domain.ErrInvalidDonation under errors.Is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return domain.ErrInvalidDonation }

// Status is a step of the submission flow.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusValidating Status = "validating"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusFailed     Status = "failed"
)

// Creator records a donation.
type Creator interface {
	Create(ctx context.Context, input domain.DonationInput) (*domain.Donation, error)
}

// Validate checks the donor name and amount in that order and returns the
// message for the first rule that fails, or "".
func Validate(donorName string, amount float64) string {
	if strings.TrimSpace(donorName) == "" {
		return MsgNameRequired
	}
	if !(amount > 0) {
		return MsgAmountRequired
	}
	if amount > MaxAmount {
		return MsgAmountTooLarge
	}
	return ""
}

// Check is Validate as an error: nil when the entries pass, otherwise a
// *ValidationError.
func Check(donorName string, amount float64) error {
	if msg := Validate(donorName, amount); msg != "" {
		return &ValidationError{Message: msg}
	}
	return nil
}

// IsValidationError reports whether err is a rejected entry rather than a
// store failure.
func IsValidationError(err error) bool {
	return errors.Is(err, domain.ErrInvalidDonation)
}

// Snapshot is the observable state of a Form.
type Snapshot struct {
	Status         Status   `json:"status"`
	Amount         float64  `json:"amount"`
	DonorName      string   `json:"donor_name"`
	IsRecurring    bool     `json:"is_recurring"`
	SelectedPreset *float64 `json:"selected_preset"`
	CustomAmount   string   `json:"custom_amount"`
	Error          string   `json:"error,omitempty"`
}

// Form holds the entries of one donation form for a single project. A preset
// and a custom amount are mutually exclusive: choosing one clears the other.
type Form struct {
	projectID string
	creator   Creator
	onSuccess func(domain.Donation)

	mu     sync.Mutex
	status Status
	amount float64
	name   string
	recur  bool
	preset *float64
	custom string
	err    string
}

// NewForm creates an idle form for projectID. onSuccess may be nil.
func NewForm(projectID string, creator Creator, onSuccess func(domain.Donation)) *Form {
	return &Form{
		projectID: projectID,
		creator:   creator,
		onSuccess: onSuccess,
		status:    StatusIdle,
	}
}

// SelectPreset picks a preset amount and clears any custom entry.
func (f *Form) SelectPreset(amount float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v := amount
	f.preset = &v
	f.custom = ""
	f.amount = amount
}

// SetCustomAmount records free-form input and clears the preset. Only a
// positive number replaces the current amount.
func (f *Form) SetCustomAmount(value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.custom = value
	f.preset = nil
	if n, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil && n > 0 {
		f.amount = n
	}
}

// SetDonorName records the name exactly as typed.
func (f *Form) SetDonorName(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.name = name
}

// SetRecurring toggles the monthly donation flag.
func (f *Form) SetRecurring(recurring bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recur = recurring
}

// Snapshot returns the current state.
func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := Snapshot{
		Status:       f.status,
		Amount:       f.amount,
		DonorName:    f.name,
		IsRecurring:  f.recur,
		CustomAmount: f.custom,
		Error:        f.err,
	}
	if f.preset != nil {
		v := *f.preset
		s.SelectedPreset = &v
	}
	return s
}

// Submit validates the entries and, when they pass, creates the donation. On
// success the form resets and returns to idle; on failure the entries are
// kept and the status stays failed until the next attempt. A submission
// already in flight makes Submit return the current state untouched.
func (f *Form) Submit(ctx context.Context) Snapshot {
	f.mu.Lock()
	if f.status == StatusSubmitting {
		f.mu.Unlock()
		return f.Snapshot()
	}
	f.status = StatusValidating
	f.err = ""
	if msg := Validate(f.name, f.amount); msg != "" {
		f.status = StatusFailed
		f.err = msg
		f.mu.Unlock()
		return f.Snapshot()
	}
	input := domain.DonationInput{
		Amount:      f.amount,
		DonorName:   f.name,
		ProjectID:   f.projectID,
		CampaignID:  nil,
		IsRecurring: f.recur,
	}
	f.status = StatusSubmitting
	f.mu.Unlock()

	created, err := f.creator.Create(ctx, input)

	f.mu.Lock()
	if err != nil {
		f.status = StatusFailed
		f.err = MsgSubmitFailed
		if msg := err.Error(); msg != "" {
			f.err = msg
		}
		f.mu.Unlock()
		return f.Snapshot()
	}
	f.status = StatusSuccess
	f.reset()
	f.mu.Unlock()

	if f.onSuccess != nil && created != nil {
		f.onSuccess(*created)
	}

	f.mu.Lock()
	if f.status == StatusSuccess {
		f.status = StatusIdle
	}
	f.mu.Unlock()
	return f.Snapshot()
}

// reset must be called with mu held.
func (f *Form) reset() {
	f.amount = 0
	f.name = ""
	f.recur = false
	f.preset = nil
	f.custom = ""
	f.err = ""
}
