package queries

import (
	"github.com/google/uuid"

	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

// authorizeOrderRead allows admins and the owning user to read an order.
// Guest orders have no owner and are readable by staff only.
func authorizeOrderRead(actor ports.Actor, ownerID *uuid.UUID) error {
	if actor.IsAdmin {
		return nil
	}
	if !actor.IsAnonymous() && ownerID != nil && actor.ID.Bytes() == *ownerID {
		return nil
	}
	return errs.NewPermissionDeniedError("read order")
}
