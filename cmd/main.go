package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/RoyceAzure/lab/megano/internal/api"
	"github.com/RoyceAzure/lab/megano/internal/api/handler"
	"github.com/RoyceAzure/lab/megano/internal/api/router"
	"github.com/RoyceAzure/lab/megano/internal/appcontext"
	"github.com/RoyceAzure/lab/megano/internal/config"
	"github.com/RoyceAzure/lab/megano/internal/constants"
	"github.com/RoyceAzure/lab/megano/internal/infra/repository/db"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

// @title megano
// @version 1.0
// @description 電商後端: 帳號, 商品目錄, 購物車, 訂單與付款

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	app := &cli.App{
		Name:  "megano",
		Usage: "megano e-commerce backend",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "migrate", Usage: "run db migration before serving"},
			&cli.BoolFlag{Name: "seed", Usage: "load the catalog seed file before serving"},
		},
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start the http server",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "migrate", Usage: "run db migration before serving"},
					&cli.BoolFlag{Name: "seed", Usage: "load the catalog seed file before serving"},
				},
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "apply db migrations",
				Action: migrate,
			},
			{
				Name:  "seed",
				Usage: "load catalog seed data",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Usage: "seed yaml path, defaults to SEED_FILE"},
				},
				Action: seed,
			},
			{
				Name:   "routes",
				Usage:  "print the route tree",
				Action: routes,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("megano exited")
	}
}

func newServer(app *appcontext.ApplicationContext) *api.Server {
	return api.NewServer(
		handler.NewAuthHandler(app.AuthService, app.SessionCookie, app.Logger),
		handler.NewProfileHandler(app.ProfileService, app.Logger),
		handler.NewCatalogHandler(app.CatalogService, app.Logger),
		handler.NewBasketHandler(app.CartService, app.Logger),
		handler.NewOrderHandler(app.OrderService, app.Logger),
		handler.NewPaymentHandler(app.PaymentService, app.Logger),
	)
}

func newRouter(app *appcontext.ApplicationContext) http.Handler {
	return router.SetupRouter(newServer(app), router.Deps{
		Sessions:      app.SessionService,
		Cookie:        app.SessionCookie,
		SignInLimiter: app.SignInLimiter,
		MediaRoot:     app.MediaStore.Root(),
		MediaURL:      app.Cf.MediaURL,
	}, app.Logger)
}

func serve(c *cli.Context) error {
	cf := config.GetConfig()

	if c.Bool("migrate") {
		if err := appcontext.Migrate(cf); err != nil {
			return fmt.Errorf("db migration: %w", err)
		}
	}

	app, err := appcontext.NewApplicationContext(cf)
	if err != nil {
		return err
	}

	if c.Bool("seed") {
		if err := appcontext.Seed(c.Context, app.DbConn, cf.SeedFile); err != nil {
			app.Shutdown(context.Background())
			return fmt.Errorf("db seed: %w", err)
		}
	}

	// 設定服務器參數
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cf.ServerPort),
		Handler: newRouter(app),
	}

	// 設置訊號監聽
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	shutdownCompleted := make(chan struct{}, 1)
	go func() {
		<-sigChan
		log.Info().Msg("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Server shutdown error")
		}
		if err := app.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Application shutdown error")
		}
		shutdownCompleted <- struct{}{}
	}()

	// 啟動服務
	log.Info().Str("addr", srv.Addr).Msg("Server starting")
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-shutdownCompleted
	log.Info().Msg("closed completed")
	return nil
}

func migrate(c *cli.Context) error {
	return appcontext.Migrate(config.GetConfig())
}

// seed 只需要 db 連線
func seed(c *cli.Context) error {
	cf := config.GetConfig()
	path := c.String("file")
	if path == "" {
		path = cf.SeedFile
	}

	conn, err := db.GetDbConn(cf.DbName, cf.DbHost, cf.DbPort, cf.DbUser, cf.DbPas)
	if err != nil {
		return err
	}
	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	return appcontext.Seed(c.Context, conn, path)
}

// routes 路由樹不依賴任何外部資源
func routes(c *cli.Context) error {
	r := router.SetupRouter(&api.Server{}, router.Deps{}, &log.Logger)
	return router.PrintRoutes(os.Stdout, r)
}
