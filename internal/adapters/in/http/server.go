package http

import (
	"log/slog"
	"net/http"

	"checkout/internal/core/application/usecases/commands"
	"checkout/internal/core/application/usecases/queries"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Handlers groups the use cases the HTTP server dispatches to.
type Handlers struct {
	// Command handlers
	StartCheckout     commands.StartCheckoutCommandHandler
	UpdateDraftField  commands.UpdateDraftFieldCommandHandler
	AdvanceStep       commands.AdvanceStepCommandHandler
	RetreatStep       commands.RetreatStepCommandHandler
	SetPickupSelector commands.SetPickupSelectorCommandHandler
	SelectPickupPoint commands.SelectPickupPointCommandHandler
	FinalizeCheckout  commands.FinalizeCheckoutCommandHandler

	// Query handlers
	GetCheckout     queries.GetCheckoutQueryHandler
	GetPickupPoints queries.GetPickupPointsQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases. Every
// command that changes a session answers with the session as rendered after
// the change.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      handlers,
		logger: logger.With("component", "http_server"),
	}
}

// StartCheckout handles POST /api/v1/checkouts - creates a session on the billing step.
func (s *Server) StartCheckout(ctx echo.Context) error {
	checkoutID := kernel.NewUUID()

	cmd, err := commands.NewStartCheckoutCommand(checkoutID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.h.StartCheckout.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.render(ctx, http.StatusCreated, checkoutID)
}

// GetCheckout handles GET /api/v1/checkouts/{checkoutId}.
func (s *Server) GetCheckout(ctx echo.Context, checkoutID servers.CheckoutId) error {
	id, err := kernel.UUIDFromGoogle(checkoutID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return s.render(ctx, http.StatusOK, id)
}

// UpdateDraftField handles PATCH /api/v1/checkouts/{checkoutId}/draft - one field change event.
func (s *Server) UpdateDraftField(ctx echo.Context, checkoutID servers.CheckoutId) error {
	var body servers.UpdateDraftFieldJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	id, err := kernel.UUIDFromGoogle(checkoutID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateDraftFieldCommand(id, string(body.Field), body.Value)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.h.UpdateDraftField.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.render(ctx, http.StatusOK, id)
}

// AdvanceStep handles POST /api/v1/checkouts/{checkoutId}/next.
func (s *Server) AdvanceStep(ctx echo.Context, checkoutID servers.CheckoutId) error {
	id, err := kernel.UUIDFromGoogle(checkoutID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewAdvanceStepCommand(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if _, err = s.h.AdvanceStep.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeErrorWithCheckout(ctx, id, err)
	}

	return s.render(ctx, http.StatusOK, id)
}

// RetreatStep handles POST /api/v1/checkouts/{checkoutId}/back.
func (s *Server) RetreatStep(ctx echo.Context, checkoutID servers.CheckoutId) error {
	id, err := kernel.UUIDFromGoogle(checkoutID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewRetreatStepCommand(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if _, err = s.h.RetreatStep.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.render(ctx, http.StatusOK, id)
}

// OpenPickupSelector handles POST /api/v1/checkouts/{checkoutId}/pickup-selector/open.
func (s *Server) OpenPickupSelector(ctx echo.Context, checkoutID servers.CheckoutId) error {
	return s.setPickupSelector(ctx, checkoutID, true)
}

// ClosePickupSelector handles POST /api/v1/checkouts/{checkoutId}/pickup-selector/close.
func (s *Server) ClosePickupSelector(ctx echo.Context, checkoutID servers.CheckoutId) error {
	return s.setPickupSelector(ctx, checkoutID, false)
}

func (s *Server) setPickupSelector(ctx echo.Context, checkoutID servers.CheckoutId, open bool) error {
	id, err := kernel.UUIDFromGoogle(checkoutID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewSetPickupSelectorCommand(id, open)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.h.SetPickupSelector.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.render(ctx, http.StatusOK, id)
}

// SelectPickupPoint handles POST /api/v1/checkouts/{checkoutId}/pickup-selector/select.
func (s *Server) SelectPickupPoint(ctx echo.Context, checkoutID servers.CheckoutId) error {
	var body servers.SelectPickupPointJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	id, err := kernel.UUIDFromGoogle(checkoutID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewSelectPickupPointCommand(id, body.Point)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.h.SelectPickupPoint.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.render(ctx, http.StatusOK, id)
}

// FinalizeCheckout handles POST /api/v1/checkouts/{checkoutId}/finalize.
// On success the session no longer exists; the acknowledgement is all the
// client gets back.
func (s *Server) FinalizeCheckout(ctx echo.Context, checkoutID servers.CheckoutId) error {
	id, err := kernel.UUIDFromGoogle(checkoutID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewFinalizeCheckoutCommand(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	order, err := s.h.FinalizeCheckout.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeErrorWithCheckout(ctx, id, err)
	}

	return ctx.JSON(http.StatusOK, servers.OrderAcknowledgement{
		OrderId:     order.ID.Bytes(),
		FinalizedAt: order.FinalizedAt,
		Summary:     toSummaryLines(order.Summary()),
	})
}

// GetPickupPoints handles GET /api/v1/pickup-points.
func (s *Server) GetPickupPoints(ctx echo.Context) error {
	query := queries.NewGetPickupPointsQuery()

	points, err := s.h.GetPickupPoints.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, points)
}

func (s *Server) render(ctx echo.Context, status int, id kernel.UUID) error {
	view, err := s.view(ctx, id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(status, view)
}

func (s *Server) view(ctx echo.Context, id kernel.UUID) (servers.Checkout, error) {
	query, err := queries.NewGetCheckoutQuery(id)
	if err != nil {
		return servers.Checkout{}, err
	}

	response, err := s.h.GetCheckout.Handle(ctx.Request().Context(), query)
	if err != nil {
		return servers.Checkout{}, err
	}

	return toCheckout(response), nil
}
