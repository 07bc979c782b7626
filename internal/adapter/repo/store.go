// Package repo implements the domain repositories on PostgreSQL.
package repo

import (
	"fundraiser/internal/domain"
	"fundraiser/internal/infra"
)

// Store bundles the PostgreSQL repositories behind domain.Store.
type Store struct {
	*ProjectRepositoryPG
	*DonationRepositoryPG
	*MetricsRepositoryPG
}

var _ domain.Store = (*Store)(nil)

// NewStore wires every repository onto the same runner.
func NewStore(sql infra.TxRunner) *Store {
	return &Store{
		ProjectRepositoryPG:  NewProjectRepository(sql),
		DonationRepositoryPG: NewDonationRepository(sql),
		MetricsRepositoryPG:  NewMetricsRepository(sql),
	}
}
