package commands

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/domain/model/manifest"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

var (
	// ErrNoCompleteSelection is returned when pending line items exist but
	// none has both a supplier and a courier chosen. Callers are expected to
	// block the operation before invoking the handler; this is the backstop.
	ErrNoCompleteSelection = errors.New("no line item has both supplier and courier selected")

	// ErrFulfillmentInProgress is returned when a fulfillment pass is already
	// running for the session's order. At most one pass may be in flight per
	// order at a time.
	ErrFulfillmentInProgress = errors.New("fulfillment is already in progress for this order")
)

// GenerateManifestsCommandHandler orchestrates one fulfillment pass.
//
// Groups are processed strictly sequentially, each with two sequential remote
// calls (manifest, then label). Stopping at the first failing call keeps the
// failure boundary auditable: no label is ever generated for a manifest that
// never succeeded, and vice versa. The handler does not retry internally;
// retry policy is a caller concern.
//
// On a failure, groups processed earlier have already caused side effects in
// the external system and are not rolled back. Nothing is marked terminal on
// failure, so the next pass regroups exactly the unfinished lines.
//
// Example:
//
//	cmd, _ := NewGenerateManifestsCommand(sessionID)
//	err := handler.Handle(ctx, cmd)
//	var fe *FulfillmentError
//	switch {
//	case errors.Is(err, ErrNoCompleteSelection):
//	    // ask the user to select supplier and courier first
//	case errors.As(err, &fe):
//	    log.Printf("aborted at %s for group %s", fe.Stage, fe.GroupKey)
//	case err != nil:
//	    // session lookup or store failure
//	}
type GenerateManifestsCommandHandler struct {
	sessions  ports.SessionRepository
	manifests ports.ManifestGenerator
	labels    ports.LabelGenerator
	grouper   services.ManifestGrouper
	logger    *slog.Logger
}

// NewGenerateManifestsCommandHandler creates a handler for fulfillment
// passes.
func NewGenerateManifestsCommandHandler(
	sessions ports.SessionRepository,
	manifests ports.ManifestGenerator,
	labels ports.LabelGenerator,
	logger *slog.Logger,
) GenerateManifestsCommandHandler {
	return GenerateManifestsCommandHandler{
		sessions:  sessions,
		manifests: manifests,
		labels:    labels,
		grouper:   services.NewManifestGrouper(),
		logger:    logger.With("component", "generate_manifests_handler"),
	}
}

// Handle processes one fulfillment pass for the session's order.
//
// An order whose line items are all terminal is already fully fulfilled: the
// handler reports success without any remote call, distinguishable from
// "succeeded after work" only in the logs.
func (h GenerateManifestsCommandHandler) Handle(ctx context.Context, cmd GenerateManifestsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	started, err := h.sessions.BeginFulfillment(ctx, cmd.SessionID())
	if err != nil {
		return err
	}
	if !started {
		return ErrFulfillmentInProgress
	}

	defer func() {
		_ = h.sessions.EndFulfillment(ctx, cmd.SessionID())
	}()

	s, err := h.sessions.Get(ctx, cmd.SessionID())
	if err != nil {
		return err
	}

	ord := s.Order()
	pending := pendingItems(ord.LineItems())
	if len(pending) == 0 {
		h.logger.InfoContext(ctx, "all manifests already generated, nothing to do", "orderId", ord.ID())
		return nil
	}

	groups := h.grouper.Group(pending)
	if len(groups) == 0 {
		return ErrNoCompleteSelection
	}

	if err = h.generateGroups(ctx, groups, ord); err != nil {
		return err
	}

	for _, group := range groups {
		for _, li := range group.Items {
			if err = li.MarkManifestGenerated(); err != nil {
				return err
			}
		}
	}

	if err = h.sessions.Update(ctx, s); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "manifests and labels generated",
		"orderId", ord.ID(), "groups", len(groups))
	return nil
}

// generateGroups walks the groups in first-seen order and invokes the
// manifest and label collaborators for each. The first non-success response
// aborts the whole batch.
func (h GenerateManifestsCommandHandler) generateGroups(
	ctx context.Context,
	groups []manifest.Group,
	ord *order.Order,
) error {
	for _, group := range groups {
		req := manifest.NewRequest(group, ord.Customer())

		if err := h.manifests.GenerateManifest(ctx, req); err != nil {
			return NewFulfillmentError(StageManifest, group.Key, err)
		}

		if err := h.labels.GenerateLabel(ctx, req); err != nil {
			return NewFulfillmentError(StageLabel, group.Key, err)
		}
	}

	return nil
}

func pendingItems(items []*order.LineItem) []*order.LineItem {
	var pending []*order.LineItem
	for _, li := range items {
		if !li.Status().IsTerminal() {
			pending = append(pending, li)
		}
	}
	return pending
}
