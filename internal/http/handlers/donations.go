package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"fundraiser/internal/domain"
	"fundraiser/internal/donation"
	"fundraiser/internal/loader"
	"fundraiser/internal/middleware"
)

type donationRequest struct {
	Amount      float64 `json:"amount"`
	DonorName   string  `json:"donor_name"`
	IsRecurring bool    `json:"is_recurring"`
}

func (a *App) DonationsList(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	state := loader.NewDonations(a.Store, *a.log(r)).Load(r.Context(), id)
	if state.Error != "" {
		a.error(w, http.StatusInternalServerError, "internal", state.Error)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": state.Data})
}

// DonationsCreate drives a donation form with the posted values. Entries
// failing donation.Check are 400s carrying its message; amounts above
// donation.MaxAmount are rejected the same way on every backend.
func (a *App) DonationsCreate(w http.ResponseWriter, r *http.Request) {
	var req donationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	projectID := chi.URLParam(r, "id")
	logger := a.log(r)

	if err := donation.Check(req.DonorName, req.Amount); errors.Is(err, domain.ErrInvalidDonation) {
		a.error(w, http.StatusBadRequest, "invalid_donation", err.Error())
		return
	}

	var created *domain.Donation
	form := donation.NewForm(projectID, a.Store, func(d domain.Donation) { created = &d })
	if isPreset(req.Amount) {
		form.SelectPreset(req.Amount)
	} else if req.Amount > 0 {
		form.SetCustomAmount(strconv.FormatFloat(req.Amount, 'f', -1, 64))
	}
	form.SetDonorName(req.DonorName)
	form.SetRecurring(req.IsRecurring)

	snap := form.Submit(r.Context())
	if snap.Status == donation.StatusFailed {
		logger.Error().Str("project_id", projectID).Str("reason", snap.Error).Msg("donation failed")
		a.error(w, http.StatusInternalServerError, "internal", snap.Error)
		return
	}
	if created == nil {
		a.error(w, http.StatusInternalServerError, "internal", donation.MsgSubmitFailed)
		return
	}
	logger.Info().
		Str("donation_id", created.ID).
		Str("project_id", created.ProjectID).
		Float64("amount", created.Amount).
		Bool("recurring", created.IsRecurring).
		Str("country", middleware.CountryFromContext(r.Context())).
		Str("locale", middleware.LocaleFromContext(r.Context())).
		Msg("donation received")
	a.json(w, http.StatusCreated, created)
}

func isPreset(amount float64) bool {
	for _, p := range donation.PresetAmounts {
		if p == amount {
			return true
		}
	}
	return false
}
