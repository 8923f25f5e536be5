package commands

import (
	"context"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ChooseCourierCommandHandler records a courier choice for a line item.
// The courier must come from the line's quoted candidate list, which only
// exists once a supplier was chosen.
type ChooseCourierCommandHandler struct {
	sessions ports.SessionRepository
}

// NewChooseCourierCommandHandler creates a handler for courier selection
// operations.
func NewChooseCourierCommandHandler(sessions ports.SessionRepository) ChooseCourierCommandHandler {
	return ChooseCourierCommandHandler{
		sessions: sessions,
	}
}

// Handle processes the courier selection command.
func (h ChooseCourierCommandHandler) Handle(ctx context.Context, cmd ChooseCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	s, err := h.sessions.Get(ctx, cmd.SessionID())
	if err != nil {
		return err
	}

	li, err := s.Order().LineItem(cmd.LineItemID())
	if err != nil {
		return err
	}

	if _, ok := li.CourierByID(cmd.CourierID()); !ok {
		return errs.NewObjectNotFoundError("courierId", cmd.CourierID())
	}

	if err = li.ChooseCourier(cmd.CourierID()); err != nil {
		return err
	}

	return h.sessions.Update(ctx, s)
}
