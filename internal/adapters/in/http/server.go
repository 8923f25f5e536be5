// Package http exposes the fulfillment use cases over HTTP.
package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	loadOrderHandler         commands.LoadOrderCommandHandler
	chooseSupplierHandler    commands.ChooseSupplierCommandHandler
	chooseCourierHandler     commands.ChooseCourierCommandHandler
	prefetchCouriersHandler  commands.PrefetchCouriersCommandHandler
	generateManifestsHandler commands.GenerateManifestsCommandHandler

	// Query handlers
	fulfillmentStatusHandler queries.GetFulfillmentStatusQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	loadOrderHandler commands.LoadOrderCommandHandler,
	chooseSupplierHandler commands.ChooseSupplierCommandHandler,
	chooseCourierHandler commands.ChooseCourierCommandHandler,
	prefetchCouriersHandler commands.PrefetchCouriersCommandHandler,
	generateManifestsHandler commands.GenerateManifestsCommandHandler,
	fulfillmentStatusHandler queries.GetFulfillmentStatusQueryHandler,
) *Server {
	return &Server{
		loadOrderHandler:         loadOrderHandler,
		chooseSupplierHandler:    chooseSupplierHandler,
		chooseCourierHandler:     chooseCourierHandler,
		prefetchCouriersHandler:  prefetchCouriersHandler,
		generateManifestsHandler: generateManifestsHandler,
		fulfillmentStatusHandler: fulfillmentStatusHandler,
	}
}

// RegisterRoutes wires the fulfillment routes into the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/sessions", s.LoadOrder)
	api.GET("/sessions/:sessionId", s.GetFulfillmentStatus)
	api.PUT("/sessions/:sessionId/lines/:lineItemId/supplier", s.ChooseSupplier)
	api.PUT("/sessions/:sessionId/lines/:lineItemId/courier", s.ChooseCourier)
	api.POST("/sessions/:sessionId/couriers/prefetch", s.PrefetchCouriers)
	api.POST("/sessions/:sessionId/manifests", s.GenerateManifests)
}

// LoadOrder handles POST /api/v1/sessions - loads an order and opens a
// viewing session for it.
func (s *Server) LoadOrder(ctx echo.Context) error {
	var body LoadOrderRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewLoadOrderCommand(body.OrderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	sessionID, err := s.loadOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err, "Failed to load order")
	}

	return ctx.JSON(http.StatusCreated, LoadOrderResponse{SessionID: sessionID.String()})
}

// GetFulfillmentStatus handles GET /api/v1/sessions/:sessionId - returns the
// fulfillment read model for the session's order.
func (s *Server) GetFulfillmentStatus(ctx echo.Context) error {
	sessionID, ok, err := sessionIDParam(ctx)
	if !ok {
		return err
	}

	query, err := queries.NewGetFulfillmentStatusQuery(sessionID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid session id: " + err.Error(),
		})
	}

	status, err := s.fulfillmentStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve fulfillment status")
	}

	return ctx.JSON(http.StatusOK, fulfillmentStatusResponse(status))
}

// ChooseSupplier handles PUT /api/v1/sessions/:sessionId/lines/:lineItemId/supplier -
// records a supplier choice and refreshes the line's courier quotes.
func (s *Server) ChooseSupplier(ctx echo.Context) error {
	sessionID, ok, err := sessionIDParam(ctx)
	if !ok {
		return err
	}

	var body ChooseSupplierRequest
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewChooseSupplierCommand(sessionID, ctx.Param("lineItemId"), body.SupplierID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid supplier choice: " + err.Error(),
		})
	}

	if err = s.chooseSupplierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err, "Failed to choose supplier")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChooseCourier handles PUT /api/v1/sessions/:sessionId/lines/:lineItemId/courier -
// records a courier choice for a line item.
func (s *Server) ChooseCourier(ctx echo.Context) error {
	sessionID, ok, err := sessionIDParam(ctx)
	if !ok {
		return err
	}

	var body ChooseCourierRequest
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewChooseCourierCommand(sessionID, ctx.Param("lineItemId"), body.CourierID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid courier choice: " + err.Error(),
		})
	}

	if err = s.chooseCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err, "Failed to choose courier")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PrefetchCouriers handles POST /api/v1/sessions/:sessionId/couriers/prefetch -
// fetches courier quotes for every line with a chosen supplier and no quotes
// yet.
func (s *Server) PrefetchCouriers(ctx echo.Context) error {
	sessionID, ok, err := sessionIDParam(ctx)
	if !ok {
		return err
	}

	cmd, err := commands.NewPrefetchCouriersCommand(sessionID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid session id: " + err.Error(),
		})
	}

	if err = s.prefetchCouriersHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err, "Failed to prefetch couriers")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GenerateManifests handles POST /api/v1/sessions/:sessionId/manifests - runs
// one fulfillment pass over the session's order.
func (s *Server) GenerateManifests(ctx echo.Context) error {
	sessionID, ok, err := sessionIDParam(ctx)
	if !ok {
		return err
	}

	cmd, err := commands.NewGenerateManifestsCommand(sessionID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid session id: " + err.Error(),
		})
	}

	if err = s.generateManifestsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err, "Failed to generate manifests")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// sessionIDParam parses the session id path parameter. On a malformed id the
// helper writes the 400 response itself and reports ok=false so the caller
// stops without writing a second body; the error carries only a failure of
// the write itself.
func sessionIDParam(ctx echo.Context) (uuid.UUID, bool, error) {
	sessionID, err := uuid.Parse(ctx.Param("sessionId"))
	if err != nil {
		return uuid.Nil, false, ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid session id",
		})
	}
	return sessionID, true, nil
}

// writeError maps use case failures onto HTTP statuses. Not-found lookups map
// to 404, contention and missing selections to 409, collaborator failures
// during a fulfillment pass to 502, everything else to 500.
func writeError(ctx echo.Context, err error, fallback string) error {
	var fe *commands.FulfillmentError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, commands.ErrFulfillmentInProgress),
		errors.Is(err, commands.ErrNoCompleteSelection):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.As(err, &fe):
		return ctx.JSON(http.StatusBadGateway, Error{
			Code:    http.StatusBadGateway,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: fallback,
		})
	}
}
