package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"github.com/zazianopizza/zaziano/docs"
	"github.com/zazianopizza/zaziano/internal/auth"
	"github.com/zazianopizza/zaziano/internal/liefersoft"
	"github.com/zazianopizza/zaziano/internal/mail"
	"github.com/zazianopizza/zaziano/internal/payment"
	"github.com/zazianopizza/zaziano/internal/queue"
	"github.com/zazianopizza/zaziano/internal/ratelimiter"
	"github.com/zazianopizza/zaziano/internal/repo"
	"github.com/zazianopizza/zaziano/internal/service"
	"github.com/zazianopizza/zaziano/internal/store/mongo"
	"github.com/zazianopizza/zaziano/internal/worker"
	"go.uber.org/zap"
)

type application struct {
	config            config
	logger            *zap.SugaredLogger
	rateLimiter       ratelimiter.Limiter
	storage           *mongo.Storage
	broker            queue.Broker
	authenticator     *auth.Authenticator
	catalogService    *service.CatalogService
	orderService      *service.OrderService
	importService     *service.ImportService
	openingHoursRepo  repo.OpeningHoursRepository
	settingsRepo      repo.SettingsRepository
	payments          payment.Provider
	mailer            mail.Sender
	liefersoft        *liefersoft.Client
	orderEventsWorker *worker.OrderEventsWorker
	importWorker      *worker.CatalogImportWorker
}

type config struct {
	addr          string
	env           string
	apiURL        string
	publicBaseURL string
	uploadDir     string
	publicDir     string
	googleMapsKey string
	rateLimiter   ratelimiter.Config
	mongo         mongoConfig
	rabbitMQ      rabbitMQConfig
	googleCreds   string
}

type mongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type rabbitMQConfig struct {
	URL           string
	MaxRetries    int
	RetryDelay    time.Duration
	PrefetchCount int
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.RateLimiterMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)

		r.Post("/admin/login", app.adminLoginHandler)

		r.Get("/products", app.getProductsHandler)

		r.Post("/orders", app.createOrderHandler)

		r.Post("/create-checkout-session", app.createCheckoutSessionHandler)
		r.Get("/checkout-session", app.getCheckoutSessionHandler)

		r.Post("/send-order-email", app.sendOrderEmailHandler)
		r.Post("/send-cancellation-email", app.sendCancellationEmailHandler)

		r.Post("/forward-to-liefersoft", app.forwardToLiefersoftHandler)

		r.Get("/opening-hours", app.getOpeningHoursHandler)
		r.Get("/settings", app.getSettingsHandler)
		r.Get("/google-maps-key", app.getGoogleMapsKeyHandler)

		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))

		// admin-only
		r.Group(func(r chi.Router) {
			r.Use(app.AdminTokenMiddleware)

			r.Post("/products", app.saveProductsHandler)
			r.Delete("/products/{section}/{product_id}", app.deleteProductHandler)

			r.Post("/products/import", app.createImportTaskHandler)
			r.Get("/products/import/{task_id}", app.getImportTaskHandler)

			r.Get("/orders", app.listOrdersHandler)
			r.Put("/orders/{order_id}", app.updateOrderStatusHandler)
			r.Delete("/orders/{order_id}", app.deleteOrderHandler)
			r.Post("/refund-order-by-id", app.refundOrderHandler)

			r.Post("/upload-image", app.uploadImageHandler)

			r.Put("/opening-hours", app.updateOpeningHoursHandler)
			r.Post("/settings", app.updateSettingsHandler)
		})
	})

	// uploaded product images
	uploads := http.StripPrefix("/uploads/", http.FileServer(http.Dir(app.config.uploadDir)))
	r.Get("/uploads/*", uploads.ServeHTTP)

	// storefront SPA
	r.Get("/*", app.spaHandler)

	return r
}

func (app *application) run(mux http.Handler) error {
	// docs
	docs.SwaggerInfo.Title = "Zaziano Restaurant"
	docs.SwaggerInfo.Description = "Ordering API for Zaziano Restaurant"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/api"

	// workers
	if app.orderEventsWorker != nil {
		if err := app.orderEventsWorker.Start(); err != nil {
			return fmt.Errorf("failed to start order events worker: %w", err)
		}
	}
	if app.importWorker != nil {
		if err := app.importWorker.Start(); err != nil {
			return fmt.Errorf("failed to start catalog import worker: %w", err)
		}
	}

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		if app.orderEventsWorker != nil {
			app.orderEventsWorker.Stop()
		}
		if app.importWorker != nil {
			app.importWorker.Stop()
		}

		if app.storage != nil {
			if err := app.storage.Close(ctx); err != nil {
				app.logger.Errorw("error closing MongoDB", "error", err)
			} else {
				app.logger.Info("MongoDB connection closed gracefully")
			}
		}

		if app.broker != nil {
			if err := app.broker.Close(); err != nil {
				app.logger.Errorw("error closing RabbitMQ", "error", err)
			} else {
				app.logger.Info("RabbitMQ connection closed gracefully")
			}
		}

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server have started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
