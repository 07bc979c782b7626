package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"fundraiser/internal/domain"
	"fundraiser/internal/infra"
	"fundraiser/internal/sqlinline"
)

// DonationRepositoryPG implements DonationRepository using PostgreSQL.
type DonationRepositoryPG struct {
	sql    infra.TxRunner
	nextID func() string
}

// NewDonationRepository creates a new donation repo.
func NewDonationRepository(sql infra.TxRunner) *DonationRepositoryPG {
	return &DonationRepositoryPG{sql: sql, nextID: uuid.NewString}
}

// Create inserts the donation and credits the project in one transaction.
// When no project matches, the donation is still committed.
func (r *DonationRepositoryPG) Create(ctx context.Context, input domain.DonationInput) (*domain.Donation, error) {
	donation := domain.Donation{
		ID:          r.nextID(),
		Amount:      input.Amount,
		DonorName:   input.DonorName,
		CampaignID:  input.CampaignID,
		ProjectID:   input.ProjectID,
		IsRecurring: input.IsRecurring,
	}
	campaignID := ""
	if input.CampaignID != nil {
		campaignID = *input.CampaignID
	}

	err := r.sql.WithTx(ctx, func(tx infra.SQLExecutor) error {
		row := tx.QueryRow(ctx, sqlinline.QInsertDonation,
			donation.ID, donation.Amount, donation.DonorName, campaignID, donation.ProjectID, donation.IsRecurring)
		if err := row.Scan(&donation.CreatedAt); err != nil {
			return fmt.Errorf("insert donation: %w", err)
		}
		if _, err := tx.Exec(ctx, sqlinline.QCreditProject, donation.ProjectID, donation.Amount); err != nil {
			return fmt.Errorf("credit project %s: %w", donation.ProjectID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &donation, nil
}

// ListByProject returns the project's donations, most recent first.
func (r *DonationRepositoryPG) ListByProject(ctx context.Context, projectID string) ([]domain.Donation, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListDonationsByProject, projectID)
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Donation, 0)
	for rows.Next() {
		var d domain.Donation
		if err := rows.Scan(&d.ID, &d.Amount, &d.DonorName, &d.CampaignID, &d.ProjectID, &d.IsRecurring, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan donation: %w", err)
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	return items, nil
}
