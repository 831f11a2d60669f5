// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"innkeeper/config"
	"innkeeper/internal/delivery/http/middleware"
	"innkeeper/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	Config            *config.Config
	AuthHandler       *handler.AuthHandler
	HotelHandler      *handler.HotelHandler
	BookingHandler    *handler.BookingHandler
	ContactHandler    *handler.ContactHandler
	NewsletterHandler *handler.NewsletterHandler
	SeedHandler       *handler.SeedHandler
	SystemHandler     *handler.SystemHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg               *config.Config
	authHandler       *handler.AuthHandler
	hotelHandler      *handler.HotelHandler
	bookingHandler    *handler.BookingHandler
	contactHandler    *handler.ContactHandler
	newsletterHandler *handler.NewsletterHandler
	seedHandler       *handler.SeedHandler
	systemHandler     *handler.SystemHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:               params.Config,
		authHandler:       params.AuthHandler,
		hotelHandler:      params.HotelHandler,
		bookingHandler:    params.BookingHandler,
		contactHandler:    params.ContactHandler,
		newsletterHandler: params.NewsletterHandler,
		seedHandler:       params.SeedHandler,
		systemHandler:     params.SystemHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", r.systemHandler.Root)

	api := e.Group("/api")

	api.GET("/health", r.systemHandler.Health)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Reads are public; writes require an owner.
	hotelGroup := api.Group("/hotels")
	{
		hotelGroup.GET("", r.hotelHandler.ListHotels)
		hotelGroup.GET("/:id", r.hotelHandler.GetHotel)
		hotelGroup.POST("", r.hotelHandler.CreateHotel, r.authMiddleware.Authenticate)
		hotelGroup.PUT("/:id", r.hotelHandler.UpdateHotel, r.authMiddleware.Authenticate)
		hotelGroup.DELETE("/:id", r.hotelHandler.DeleteHotel, r.authMiddleware.Authenticate)
	}

	bookingGroup := api.Group("/bookings")
	bookingGroup.Use(r.authMiddleware.Authenticate)
	{
		bookingGroup.POST("", r.bookingHandler.CreateBooking)
		bookingGroup.GET("", r.bookingHandler.ListBookings)
		bookingGroup.GET("/:id", r.bookingHandler.GetBooking)
		bookingGroup.DELETE("/:id", r.bookingHandler.CancelBooking)
		bookingGroup.GET("/:id/qrcode", r.bookingHandler.BookingQRCode)
	}

	api.POST("/contact", r.contactHandler.SubmitContact)

	newsletterGroup := api.Group("/newsletter")
	{
		newsletterGroup.POST("/subscribe", r.newsletterHandler.Subscribe)
		newsletterGroup.POST("/unsubscribe", r.newsletterHandler.Unsubscribe)
	}

	// Destructive sample-data routes stay off production deployments.
	if r.cfg.Seed != nil && r.cfg.Seed.Enabled {
		seedGroup := api.Group("/seed")
		{
			seedGroup.POST("/hotels", r.seedHandler.SeedHotels)
			seedGroup.DELETE("/hotels", r.seedHandler.ClearHotels)
		}
	}
}
