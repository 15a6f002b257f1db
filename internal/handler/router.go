package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"railbook/internal/handler/api"
	"railbook/internal/handler/middleware"
	"railbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	quoteHandler *api.QuoteHandler,
	bookingHandler *api.BookingHandler,
	pnrHandler *api.PNRHandler,
	trainHandler *api.TrainHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, quoteHandler, bookingHandler, pnrHandler, trainHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	quoteHandler *api.QuoteHandler,
	bookingHandler *api.BookingHandler,
	pnrHandler *api.PNRHandler,
	trainHandler *api.TrainHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// Public timetable and availability lookups
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/trains", Handler: trainHandler.ListTrains},
			{Method: http.MethodGet, Path: "/trains/:number", Handler: trainHandler.GetTrain},
			{Method: http.MethodGet, Path: "/stations", Handler: trainHandler.SearchStations},
			{Method: http.MethodGet, Path: "/inventory/:train/:date/:class/:quota", Handler: trainHandler.GetAvailability},
		})

		authRequired := apiGroup.Group("")
		authRequired.Use(authMiddleware.RequireAuth())
		{
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/quotes", Handler: quoteHandler.CreateQuote},
				{Method: http.MethodPost, Path: "/bookings", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "/bookings", Handler: bookingHandler.GetUserBookings},
				{Method: http.MethodPost, Path: "/bookings/:pnr/cancel", Handler: bookingHandler.CancelBooking},
				{Method: http.MethodGet, Path: "/pnr/:pnr", Handler: pnrHandler.GetStatus},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

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
