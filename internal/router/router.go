package router

import (
	"log"
	"net/http"

	"github.com/easyrokra/gateway/internal/audit"
	"github.com/easyrokra/gateway/internal/config"
	"github.com/easyrokra/gateway/internal/handler"
	"github.com/easyrokra/gateway/internal/service"
	"github.com/easyrokra/gateway/internal/sheet"
	"github.com/easyrokra/gateway/internal/writeback"
	"github.com/easyrokra/gateway/internal/ws"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// New creates a Chi router with all application routes wired up.
func New(cfg *config.Config, recorder audit.Recorder, hub *ws.Hub) chi.Router {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// The API is consumed by checkout pages hosted anywhere, so CORS is
	// wide open and carries no credentials.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300, // 5 minutes
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","version":"1.0.0"}`))
	})

	source := sheet.NewGoogleSource(cfg.SpreadsheetID, cfg.OrdersGID, cfg.ProductsGID)
	orderService := service.NewOrderService(source, cfg.FallbackImageURL)

	orderHandler := handler.NewOrderHandler(orderService)
	orderHandler.RegisterRoutes(r)

	paymentHandler := handler.NewPaymentHandler(
		source,
		&service.SimulatedAuthorizer{Delay: cfg.AuthorizeDelay},
		writeback.NewClient(cfg.WritebackURL, cfg.WritebackSecret, cfg.SpreadsheetID, cfg.OrdersSheetName),
		recorder,
		hub,
	)
	paymentHandler.RegisterRoutes(r)

	pageHandler := handler.NewPageHandler(orderService, orderService)
	pageHandler.RegisterRoutes(r)

	// WebSocket route for live status updates
	r.Get("/ws/orders/{orderNo}", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWS(hub, w, r)
	})

	log.Println("Router initialized with all handlers")
	return r
}
