package handler

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-booking-core/internal/handler/api"
	"hotel-booking-core/internal/handler/middleware"
	"hotel-booking-core/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Health  *api.HealthHandler
	Quote   *api.QuoteHandler
	Booking *api.BookingHandler
	Room    *api.RoomHandler
}

func NewHandlers(health *api.HealthHandler, quote *api.QuoteHandler, booking *api.BookingHandler, room *api.RoomHandler) Handlers {
	return Handlers{Health: health, Quote: quote, Booking: booking, Room: room}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// outermost, so panics in other middleware are caught too
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", h.Health.Health)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	limit := []gin.HandlerFunc{middleware.BodyLimit(middleware.DefaultBodyLimit)}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/quotes", Handler: h.Quote.Quote, Mw: limit},
		})

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create, Mw: limit},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Booking.ChangeStatus, Mw: limit},
				{Method: http.MethodGet, Path: "/:id/tax", Handler: h.Booking.Tax},
			})
		}

		rooms := apiGroup.Group("/rooms")
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Room.Availability},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Room.ChangeStatus, Mw: limit},
			})
		}
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(slices.Clone(r.Mw), r.Handler)...)
		}
		g.Handle(r.Method, r.Path, h)
	}
}

// chainHandlers runs per-route middleware inline and stops at the first abort.
func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
