package cmd

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"countries-api/core/loader"
	"countries-api/core/middleware/auth"
	"countries-api/core/middleware/cachecontrol"
	"countries-api/core/middleware/prettyjson"
	"countries-api/core/middleware/rayid"
	"countries-api/core/middleware/requestlog"
	"countries-api/core/server"
	"countries-api/feature/countries"
	"countries-api/feature/region"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "countries-api/docs/swagger"
)

// @title Countries API
// @version 1.0
// @description Country records with lookup by name or region, projection, sorting and localized errors.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the countries API server",
	Long:  `Loads the dataset, builds the lookup indices and serves the HTTP API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.log.Sync()
		zap.ReplaceGlobals(rt.log)

		app, err := newApp(rt)
		if err != nil {
			return err
		}

		go func() {
			rt.log.Info("Starting server", zap.String("port", rt.cfg.Server.Port))
			if err := app.Listen(rt.cfg.Server.Address()); err != nil {
				rt.log.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		rt.log.Info("Shutting down server...")
		return app.Shutdown()
	},
}

// newApp wires middleware, public routes and features around a built runtime.
func newApp(rt *runtime) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          server.NewErrorHandler(rt.resolver, rt.log),
	})

	// RayID first so every later log line carries it.
	app.Use(rayid.New())
	app.Use(requestlog.New(rt.log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: rt.cfg.Server.AllowOrigins,
		AllowMethods: strings.Join([]string{fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions}, ","),
	}))
	app.Use(prettyjson.New())

	// Public routes.
	app.Get("/", server.WelcomeHandler(rt.resolver))
	app.Get("/swagger/*", swagger.HandlerDefault)
	if rt.cfg.Metrics.Enabled {
		app.Get(rt.cfg.Metrics.Path, rt.metrics.Handler())
	}

	api := app.Group(rt.cfg.Server.Prefix,
		auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey}),
		cachecontrol.New(cachecontrol.Config{
			MaxAgeSeconds: rt.cfg.Server.CacheMaxAgeSeconds,
			Vary:          []string{fiber.HeaderAcceptLanguage},
		}),
	)

	mgr := loader.NewManager(rt.log)
	mgr.Register(countries.NewFeature(rt.catalog, rt.metrics, rt.log))
	mgr.Register(region.NewFeature(rt.catalog, rt.metrics, rt.log))
	if err := mgr.LoadAll(api); err != nil {
		return nil, err
	}

	return app, nil
}

func init() {
	RootCmd.AddCommand(startCmd)
}
