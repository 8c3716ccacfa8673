// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"leyenda/internal/delivery/http/middleware"
	"leyenda/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	RegionHandler     *handler.RegionHandler
	PlaceHandler      *handler.PlaceHandler
	StoryHandler      *handler.StoryHandler
	ReviewHandler     *handler.ReviewHandler
	EventPlaceHandler *handler.EventPlaceHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	regionHandler     *handler.RegionHandler
	placeHandler      *handler.PlaceHandler
	storyHandler      *handler.StoryHandler
	reviewHandler     *handler.ReviewHandler
	eventPlaceHandler *handler.EventPlaceHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		regionHandler:     params.RegionHandler,
		placeHandler:      params.PlaceHandler,
		storyHandler:      params.StoryHandler,
		reviewHandler:     params.ReviewHandler,
		eventPlaceHandler: params.EventPlaceHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticate := r.authMiddleware.Authenticate
	requireAdmin := r.authMiddleware.RequireAdmin

	e.GET("/health", handler.HealthCheck)

	// Account and token lifecycle. Register, login and reset-password are
	// public; refresh, logout, change-password and request-reset-token
	// require a valid access token.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)

		authGroup.POST("/refresh", r.authHandler.Refresh, authenticate)
		authGroup.POST("/logout", r.authHandler.Logout, authenticate)
		authGroup.POST("/change-password", r.authHandler.ChangePassword, authenticate)
		authGroup.POST("/request-reset-token", r.authHandler.RequestResetToken, authenticate)
	}

	// Regions: reads are public, writes are admin-only.
	regionGroup := e.Group("/regions")
	{
		regionGroup.GET("", r.regionHandler.List)
		regionGroup.GET("/nearby", r.regionHandler.Nearby)
		regionGroup.GET("/:id", r.regionHandler.Get)
		regionGroup.GET("/:id/myth-stories", r.regionHandler.MythStories)
		regionGroup.GET("/:id/event-places", r.eventPlaceHandler.ByRegion)

		regionGroup.POST("", r.regionHandler.Create, authenticate, requireAdmin)
		regionGroup.PUT("/:id", r.regionHandler.Update, authenticate, requireAdmin)
		regionGroup.DELETE("/:id", r.regionHandler.Delete, authenticate, requireAdmin)
	}

	// Hotels: reads are public, writes are admin-only.
	hotelGroup := e.Group("/hotels")
	{
		hotelGroup.GET("", r.placeHandler.ListHotels)
		hotelGroup.GET("/nearby", r.placeHandler.NearbyHotels)
		hotelGroup.GET("/:id", r.placeHandler.GetHotel)
		hotelGroup.GET("/:id/reviews", r.reviewHandler.ForHotel)

		hotelGroup.POST("", r.placeHandler.CreateHotel, authenticate, requireAdmin)
		hotelGroup.PUT("/:id", r.placeHandler.UpdateHotel, authenticate, requireAdmin)
		hotelGroup.DELETE("/:id", r.placeHandler.DeleteHotel, authenticate, requireAdmin)
	}

	// Restaurants: reads are public, writes are admin-only.
	restaurantGroup := e.Group("/restaurants")
	{
		restaurantGroup.GET("", r.placeHandler.ListRestaurants)
		restaurantGroup.GET("/nearby", r.placeHandler.NearbyRestaurants)
		restaurantGroup.GET("/:id", r.placeHandler.GetRestaurant)
		restaurantGroup.GET("/:id/reviews", r.reviewHandler.ForRestaurant)

		restaurantGroup.POST("", r.placeHandler.CreateRestaurant, authenticate, requireAdmin)
		restaurantGroup.PUT("/:id", r.placeHandler.UpdateRestaurant, authenticate, requireAdmin)
		restaurantGroup.DELETE("/:id", r.placeHandler.DeleteRestaurant, authenticate, requireAdmin)
	}

	// Legends: admin-curated content, reads public.
	legendGroup := e.Group("/legends")
	{
		legendGroup.GET("", r.storyHandler.ListLegends)
		legendGroup.GET("/:id", r.storyHandler.GetLegend)
		legendGroup.GET("/:id/regions", r.storyHandler.LegendRegions)

		legendGroup.POST("", r.storyHandler.CreateLegend, authenticate, requireAdmin)
		legendGroup.PUT("/:id", r.storyHandler.UpdateLegend, authenticate, requireAdmin)
		legendGroup.DELETE("/:id", r.storyHandler.DeleteLegend, authenticate, requireAdmin)
	}

	// Event places: cultural events and attractions; reads public, writes
	// admin-only.
	eventPlaceGroup := e.Group("/event-places")
	{
		eventPlaceGroup.GET("", r.eventPlaceHandler.List)
		eventPlaceGroup.GET("/nearby", r.eventPlaceHandler.Nearby)
		eventPlaceGroup.GET("/:id", r.eventPlaceHandler.Get)

		eventPlaceGroup.POST("", r.eventPlaceHandler.Create, authenticate, requireAdmin)
		eventPlaceGroup.PUT("/:id", r.eventPlaceHandler.Update, authenticate, requireAdmin)
		eventPlaceGroup.DELETE("/:id", r.eventPlaceHandler.Delete, authenticate, requireAdmin)
	}

	// Myth stories: contributed by any authenticated user; edits and
	// deletions are restricted to the author or an admin in the usecase.
	storyGroup := e.Group("/myth-stories")
	{
		storyGroup.GET("", r.storyHandler.ListMythStories)
		storyGroup.GET("/:id", r.storyHandler.GetMythStory)

		storyGroup.POST("", r.storyHandler.CreateMythStory, authenticate)
		storyGroup.PUT("/:id", r.storyHandler.UpdateMythStory, authenticate)
		storyGroup.DELETE("/:id", r.storyHandler.DeleteMythStory, authenticate)
	}

	// Reviews: submission and deletion require authentication; per-target
	// listings live under /hotels and /restaurants.
	reviewGroup := e.Group("/reviews")
	{
		reviewGroup.POST("", r.reviewHandler.Create, authenticate)
		reviewGroup.DELETE("/:id", r.reviewHandler.Delete, authenticate)
	}

	// The caller's own contributions.
	meGroup := e.Group("/me", authenticate)
	{
		meGroup.GET("/myth-stories", r.storyHandler.MyMythStories)
		meGroup.GET("/reviews", r.reviewHandler.Mine)
	}
}
