package donation

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"fundraiser/internal/adapter/memory"
	"fundraiser/internal/domain"
)

type recordingCreator struct {
	inputs []domain.DonationInput
	err    error
}

func (c *recordingCreator) Create(_ context.Context, input domain.DonationInput) (*domain.Donation, error) {
	c.inputs = append(c.inputs, input)
	if c.err != nil {
		return nil, c.err
	}
	return &domain.Donation{ID: "d-1", Amount: input.Amount, DonorName: input.DonorName, ProjectID: input.ProjectID}, nil
}

type blankError struct{}

func (blankError) Error() string { return "" }

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		donor  string
		amount float64
		want   string
	}{
		{name: "valid", donor: "Ada", amount: 25, want: ""},
		{name: "empty name", donor: "", amount: 25, want: MsgNameRequired},
		{name: "whitespace name", donor: "  \t", amount: 25, want: MsgNameRequired},
		{name: "name checked before amount", donor: "", amount: 0, want: MsgNameRequired},
		{name: "zero amount", donor: "Ada", amount: 0, want: MsgAmountRequired},
		{name: "negative amount", donor: "Ada", amount: -5, want: MsgAmountRequired},
		{name: "at maximum", donor: "Ada", amount: MaxAmount, want: ""},
		{name: "above maximum", donor: "Ada", amount: MaxAmount + 1, want: MsgAmountTooLarge},
		{name: "infinite", donor: "Ada", amount: math.Inf(1), want: MsgAmountTooLarge},
		{name: "not a number", donor: "Ada", amount: math.NaN(), want: MsgAmountRequired},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Validate(tc.donor, tc.amount); got != tc.want {
				t.Fatalf("Validate(%q, %v) = %q, want %q", tc.donor, tc.amount, got, tc.want)
			}
		})
	}
}

func TestCheckWrapsInvalidDonation(t *testing.T) {
	if err := Check("Ada", 50); err != nil {
		t.Fatalf("Check() = %v, want nil", err)
	}
	err := Check("Ada", 2e12)
	if !errors.Is(err, domain.ErrInvalidDonation) || !IsValidationError(err) {
		t.Fatalf("Check() = %v, want ErrInvalidDonation", err)
	}
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Message != MsgAmountTooLarge || err.Error() != MsgAmountTooLarge {
		t.Fatalf("unexpected validation error: %#v", err)
	}
	if IsValidationError(errors.New("insert donation: timeout")) {
		t.Fatalf("store failures are not validation errors")
	}
}

func TestSubmitRejectsAmountAboveMaximum(t *testing.T) {
	creator := &recordingCreator{}
	form := NewForm("1", creator, nil)
	form.SetDonorName("Ada")
	form.SetCustomAmount("1e19")

	snap := form.Submit(context.Background())
	if snap.Status != StatusFailed || snap.Error != MsgAmountTooLarge {
		t.Fatalf("unexpected snapshot: %#v", snap)
	}
	if len(creator.inputs) != 0 {
		t.Fatalf("create must not be called, got %d calls", len(creator.inputs))
	}
}

func TestSubmitWithoutNameDoesNotCreate(t *testing.T) {
	creator := &recordingCreator{}
	form := NewForm("1", creator, nil)
	form.SelectPreset(50)

	snap := form.Submit(context.Background())
	if snap.Status != StatusFailed || snap.Error != "Please enter your name" {
		t.Fatalf("unexpected snapshot: %#v", snap)
	}
	if len(creator.inputs) != 0 {
		t.Fatalf("create called despite validation failure")
	}
}

func TestSubmitWithoutAmountDoesNotCreate(t *testing.T) {
	creator := &recordingCreator{}
	form := NewForm("1", creator, nil)
	form.SetDonorName("Ada Lovelace")

	snap := form.Submit(context.Background())
	if snap.Status != StatusFailed || snap.Error != "Please select or enter a donation amount" {
		t.Fatalf("unexpected snapshot: %#v", snap)
	}
	if len(creator.inputs) != 0 {
		t.Fatalf("create called despite validation failure")
	}
}

func TestPresetAndCustomAreExclusive(t *testing.T) {
	form := NewForm("1", &recordingCreator{}, nil)

	form.SelectPreset(100)
	form.SetCustomAmount("42.5")
	snap := form.Snapshot()
	if snap.SelectedPreset != nil || snap.CustomAmount != "42.5" || snap.Amount != 42.5 {
		t.Fatalf("custom amount did not clear preset: %#v", snap)
	}

	form.SelectPreset(250)
	snap = form.Snapshot()
	if snap.SelectedPreset == nil || *snap.SelectedPreset != 250 || snap.CustomAmount != "" || snap.Amount != 250 {
		t.Fatalf("preset did not clear custom amount: %#v", snap)
	}
}

func TestCustomAmountIgnoresInvalidInput(t *testing.T) {
	form := NewForm("1", &recordingCreator{}, nil)
	form.SetCustomAmount("75")
	form.SetCustomAmount("abc")
	if snap := form.Snapshot(); snap.Amount != 75 || snap.CustomAmount != "abc" {
		t.Fatalf("unexpected snapshot: %#v", snap)
	}
	form.SetCustomAmount("-3")
	if snap := form.Snapshot(); snap.Amount != 75 {
		t.Fatalf("negative input changed amount: %#v", snap)
	}
}

func TestSubmitSuccessResetsForm(t *testing.T) {
	creator := &recordingCreator{}
	var got *domain.Donation
	form := NewForm("2", creator, func(d domain.Donation) { got = &d })
	form.SelectPreset(500)
	form.SetDonorName(" Grace ")
	form.SetRecurring(true)

	snap := form.Submit(context.Background())
	if snap.Status != StatusIdle || snap.Error != "" {
		t.Fatalf("unexpected status after success: %#v", snap)
	}
	if snap.Amount != 0 || snap.DonorName != "" || snap.IsRecurring || snap.SelectedPreset != nil || snap.CustomAmount != "" {
		t.Fatalf("form not reset: %#v", snap)
	}
	if len(creator.inputs) != 1 {
		t.Fatalf("expected one create call, got %d", len(creator.inputs))
	}
	want := domain.DonationInput{Amount: 500, DonorName: " Grace ", ProjectID: "2", IsRecurring: true}
	if creator.inputs[0] != want {
		t.Fatalf("input = %#v, want %#v", creator.inputs[0], want)
	}
	if got == nil || got.ID != "d-1" {
		t.Fatalf("success callback not invoked: %#v", got)
	}
}

func TestSubmitFailureKeepsEntries(t *testing.T) {
	creator := &recordingCreator{err: errors.New("network unreachable")}
	called := false
	form := NewForm("1", creator, func(domain.Donation) { called = true })
	form.SetCustomAmount("30")
	form.SetDonorName("Ada")

	snap := form.Submit(context.Background())
	if snap.Status != StatusFailed || snap.Error != "network unreachable" {
		t.Fatalf("unexpected snapshot: %#v", snap)
	}
	if snap.Amount != 30 || snap.DonorName != "Ada" || snap.CustomAmount != "30" {
		t.Fatalf("entries not preserved: %#v", snap)
	}
	if called {
		t.Fatalf("success callback invoked on failure")
	}

	creator.err = blankError{}
	if snap := form.Submit(context.Background()); snap.Error != MsgSubmitFailed {
		t.Fatalf("Error = %q, want %q", snap.Error, MsgSubmitFailed)
	}

	creator.err = nil
	if snap := form.Submit(context.Background()); snap.Status != StatusIdle || snap.Error != "" {
		t.Fatalf("retry did not succeed: %#v", snap)
	}
	if len(creator.inputs) != 3 {
		t.Fatalf("expected 3 create calls, got %d", len(creator.inputs))
	}
}

func TestEndToEndPresetDonation(t *testing.T) {
	store := memory.New(
		memory.WithLatency(memory.Latency{}),
		memory.WithClock(func() time.Time { return time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC) }),
	)
	ctx := context.Background()

	form := NewForm("1", store, nil)
	form.SelectPreset(250)
	form.SetDonorName("Ada Lovelace")
	if snap := form.Submit(ctx); snap.Status != StatusIdle || snap.Error != "" {
		t.Fatalf("submit failed: %#v", snap)
	}

	donations, err := store.ListByProject(ctx, "1")
	if err != nil {
		t.Fatalf("ListByProject error: %v", err)
	}
	var matches []domain.Donation
	for _, d := range donations {
		if d.DonorName == "Ada Lovelace" {
			matches = append(matches, d)
		}
	}
	if len(matches) != 1 {
		t.Fatalf("expected exactly one new donation, got %d", len(matches))
	}
	if d := matches[0]; d.Amount != 250 || d.IsRecurring || d.CampaignID != nil {
		t.Fatalf("unexpected donation: %#v", d)
	}

	project, err := store.GetByID(ctx, "1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if project.RaisedAmount != 32750 {
		t.Fatalf("RaisedAmount = %v, want 32750", project.RaisedAmount)
	}
}
