package service

import (
	"errors"

	"github.com/stpnv0/ParkSpot/internal/domain"
)

// ledgerOutcome labels a ledger call for metrics.
func ledgerOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrCapacityNotConfigured):
		return "not_configured"
	case errors.Is(err, domain.ErrCapacityExceeded):
		return "full"
	case errors.Is(err, domain.ErrCapacityBelowOccupancy):
		return "below_occupancy"
	case errors.Is(err, domain.ErrSpotNotFound):
		return "not_found"
	default:
		return "error"
	}
}
