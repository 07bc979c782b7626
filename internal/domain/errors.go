package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidDonation = errors.New("invalid donation")
)
