package domain

import (
	"context"
	"errors"
)

// Sentinel errors for partner directory lookups.
var (
	ErrDirectoryUnavailable = errors.New("partner directory unavailable")
	ErrNoPartners           = errors.New("no partners exist")
)

// PartnerRecord is a single partner's availability as reported by the directory.
// AvailableDates are calendar dates formatted as YYYY-MM-DD.
// swagger:model PartnerRecord
type PartnerRecord struct {
	Email          string   `json:"email"`
	Country        string   `json:"country"`
	AvailableDates []string `json:"availableDates"`
}

// PartnerDirectory fetches the full partner roster from a remote source.
// Implementations return ErrDirectoryUnavailable when the source cannot be reached
// and ErrNoPartners when it answers with an empty roster.
type PartnerDirectory interface {
	Fetch(ctx context.Context) ([]PartnerRecord, error)
}
