package http

import (
	"log/slog"
	"net/http"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP endpoints of the service.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerParcelHandler  commands.RegisterParcelCommandHandler
	recordDepartureHandler commands.RecordDepartureCommandHandler
	recordArrivalHandler   commands.RecordArrivalCommandHandler
	recordPickupHandler    commands.RecordPickupCommandHandler

	// Query handlers
	trackParcelHandler           queries.TrackParcelQueryHandler
	getParcelsAwaitingLegHandler queries.GetParcelsAwaitingLegQueryHandler
	planRouteHandler             queries.PlanRouteQueryHandler
	getNetworkHandler            queries.GetNetworkQueryHandler

	newParcelID func() kernel.ParcelID
	logger      *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerParcelHandler commands.RegisterParcelCommandHandler,
	recordDepartureHandler commands.RecordDepartureCommandHandler,
	recordArrivalHandler commands.RecordArrivalCommandHandler,
	recordPickupHandler commands.RecordPickupCommandHandler,
	trackParcelHandler queries.TrackParcelQueryHandler,
	getParcelsAwaitingLegHandler queries.GetParcelsAwaitingLegQueryHandler,
	planRouteHandler queries.PlanRouteQueryHandler,
	getNetworkHandler queries.GetNetworkQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		registerParcelHandler:        registerParcelHandler,
		recordDepartureHandler:       recordDepartureHandler,
		recordArrivalHandler:         recordArrivalHandler,
		recordPickupHandler:          recordPickupHandler,
		trackParcelHandler:           trackParcelHandler,
		getParcelsAwaitingLegHandler: getParcelsAwaitingLegHandler,
		planRouteHandler:             planRouteHandler,
		getNetworkHandler:            getNetworkHandler,
		newParcelID:                  kernel.NewParcelID,
		logger:                       logger.With("component", "http_server"),
	}
}

// RegisterParcel handles POST /register - quotes a route and registers the parcel.
func (s *Server) RegisterParcel(ctx echo.Context) error {
	var body ParcelCreationInfo
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items := make([]commands.ItemInput, 0, len(body.Items))
	for _, item := range body.Items {
		items = append(items, commands.ItemInput{Name: item.Name, Value: item.Value})
	}

	cmd, err := commands.NewRegisterParcelCommand(
		s.newParcelID(),
		body.From,
		body.To,
		body.Length,
		body.Width,
		body.Height,
		body.Weight,
		items,
	)
	if err != nil {
		return s.respondError(ctx, err, "Failed to register parcel")
	}

	result, err := s.registerParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "Failed to register parcel")
	}

	return ctx.JSON(http.StatusOK, DeliveryInfo{
		Cost:         result.Cost,
		Time:         result.Time,
		PickupIDHash: result.ParcelID,
	})
}

// PickupParcel handles POST /pickup - records the pickup at the destination.
func (s *Server) PickupParcel(ctx echo.Context) error {
	var body PickupInput
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRecordPickupCommand(body.PickupIDHash)
	if err != nil {
		return s.respondError(ctx, err, "Failed to record pickup")
	}

	if err = s.recordPickupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err, "Failed to record pickup")
	}

	return ctx.JSON(http.StatusOK, true)
}

// TrackParcel handles GET /track?pickupIdHash= - returns the timeline of a parcel.
func (s *Server) TrackParcel(ctx echo.Context) error {
	query, err := queries.NewTrackParcelQuery(ctx.QueryParam("pickupIdHash"))
	if err != nil {
		return s.respondError(ctx, err, "Failed to track parcel")
	}

	view, err := s.trackParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "Failed to track parcel")
	}

	response := ParcelStatusHistory{
		TotalStops: view.TotalStops,
		Status:     view.Status.String(),
		NextLegID:  view.NextLegID,
		History:    make([]HistoryEntry, len(view.History)),
	}
	for i, entry := range view.History {
		response.History[i] = HistoryEntry{
			Timestamp: entry.At.Unix(),
			Message:   entry.Message,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetParcelsForLeg handles GET /parcels/{legId} - lists parcels waiting for a leg.
func (s *Server) GetParcelsForLeg(ctx echo.Context) error {
	query, err := queries.NewGetParcelsAwaitingLegQuery(ctx.Param("legId"))
	if err != nil {
		return s.respondError(ctx, err, "Failed to retrieve parcels")
	}

	ids, err := s.getParcelsAwaitingLegHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "Failed to retrieve parcels")
	}

	return ctx.JSON(http.StatusOK, ParcelList{ParcelIDs: ids})
}

// TakeParcel handles POST /take/{parcelId} - records a departure on a leg.
func (s *Server) TakeParcel(ctx echo.Context) error {
	var body TakeParcelInput
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRecordDepartureCommand(ctx.Param("parcelId"), body.LegID)
	if err != nil {
		return s.respondError(ctx, err, "Failed to record departure")
	}

	if err = s.recordDepartureHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err, "Failed to record departure")
	}

	return ctx.JSON(http.StatusOK, true)
}

// PutParcel handles POST /put/{parcelId} - records an arrival at a location.
func (s *Server) PutParcel(ctx echo.Context) error {
	var body PutParcelInput
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRecordArrivalCommand(ctx.Param("parcelId"), body.Location)
	if err != nil {
		return s.respondError(ctx, err, "Failed to record arrival")
	}

	if err = s.recordArrivalHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err, "Failed to record arrival")
	}

	return ctx.JSON(http.StatusOK, true)
}

// RouteParcel handles POST /route - quotes a route without registering anything.
func (s *Server) RouteParcel(ctx echo.Context) error {
	var body ParcelDescription
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	query, err := queries.NewPlanRouteQuery(body.From, body.To, body.Weight, body.Value)
	if err != nil {
		return s.respondError(ctx, err, "Failed to plan route")
	}

	route, err := s.planRouteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "Failed to plan route")
	}

	return ctx.JSON(http.StatusOK, newLegList(route))
}

// DebugRoute handles POST /route/debug - shows the direct legs next to the
// planned route. An unreachable destination yields a null optimal route.
func (s *Server) DebugRoute(ctx echo.Context) error {
	var body ParcelDescription
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	query, err := queries.NewPlanRouteQuery(body.From, body.To, body.Weight, body.Value)
	if err != nil {
		return s.respondError(ctx, err, "Failed to explain route")
	}

	explained, err := s.planRouteHandler.Explain(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "Failed to explain route")
	}

	response := RouteDebug{
		Parcel:        body,
		DirectOptions: make([]DirectOption, len(explained.DirectOptions)),
	}
	for i, o := range explained.DirectOptions {
		response.DirectOptions[i] = DirectOption{Leg: newLeg(o.Leg), Cost: o.Cost, Time: o.Time}
	}
	if explained.OptimalRoute != nil {
		optimal := newLegList(*explained.OptimalRoute)
		response.OptimalRoute = &optimal
	}

	return ctx.JSON(http.StatusOK, response)
}

func newLegList(route queries.PlanRouteQueryResponse) LegList {
	list := LegList{
		Cost: route.Cost,
		Time: route.Time,
		Legs: make([]LegID, len(route.Legs)),
	}
	for i, l := range route.Legs {
		list.Legs[i] = LegID{ID: l.ID}
	}
	return list
}

// GetLegs handles GET /legs - lists the legs of the network.
func (s *Server) GetLegs(ctx echo.Context) error {
	network, err := s.getNetworkHandler.Handle(ctx.Request().Context(), queries.NewGetNetworkQuery())
	if err != nil {
		return s.respondError(ctx, err, "Failed to retrieve legs")
	}

	response := Legs{
		Legs:  make([]Leg, len(network.Legs)),
		Count: len(network.Legs),
	}
	for i, l := range network.Legs {
		response.Legs[i] = newLeg(l)
	}

	return ctx.JSON(http.StatusOK, response)
}

func newLeg(l queries.LegResponse) Leg {
	return Leg{
		ID:           l.ID,
		Operator:     l.Operator,
		From:         l.From,
		To:           l.To,
		MaxWeight:    l.MaxWeight,
		Time:         l.TransitTime,
		BaseCost:     l.BaseCost,
		WeightFactor: l.WeightFactor,
		ValueFactor:  l.ValueFactor,
	}
}

// GetLocations handles GET /locations - lists the locations of the network.
func (s *Server) GetLocations(ctx echo.Context) error {
	network, err := s.getNetworkHandler.Handle(ctx.Request().Context(), queries.NewGetNetworkQuery())
	if err != nil {
		return s.respondError(ctx, err, "Failed to retrieve locations")
	}

	return ctx.JSON(http.StatusOK, Locations{
		Locations: network.Locations,
		Count:     len(network.Locations),
	})
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	network, err := s.getNetworkHandler.Handle(ctx.Request().Context(), queries.NewGetNetworkQuery())
	if err != nil {
		return s.respondError(ctx, err, "Failed to read network")
	}

	return ctx.JSON(http.StatusOK, Health{
		Status:    "healthy",
		Legs:      len(network.Legs),
		Locations: len(network.Locations),
	})
}
