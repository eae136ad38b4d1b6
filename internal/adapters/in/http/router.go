// Package http exposes the parcel service over HTTP with echo. Requests are
// validated against the embedded OpenAPI contract before they reach a handler,
// and the contract is served by the docs UI under /swagger/.
package http

import (
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewEcho builds the echo instance serving s. doc is the contract returned by
// LoadContract.
func NewEcho(s *Server, doc *openapi3.T) (*echo.Echo, error) {
	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}
	if err = registerDocs(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(validator)

	e.POST("/register", s.RegisterParcel)
	e.POST("/pickup", s.PickupParcel)
	e.GET("/track", s.TrackParcel)
	e.GET("/parcels/:legId", s.GetParcelsForLeg)
	e.POST("/take/:parcelId", s.TakeParcel)
	e.POST("/put/:parcelId", s.PutParcel)
	e.POST("/route", s.RouteParcel)
	e.POST("/route/debug", s.DebugRoute)
	e.GET("/legs", s.GetLegs)
	e.GET("/locations", s.GetLocations)
	e.GET("/health", s.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}
