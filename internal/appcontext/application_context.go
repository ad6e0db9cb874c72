package appcontext

import (
	"context"
	"fmt"

	m "github.com/RoyceAzure/lab/megano/internal/api/middleware"
	"github.com/RoyceAzure/lab/megano/internal/config"
	"github.com/RoyceAzure/lab/megano/internal/constants"
	"github.com/RoyceAzure/lab/megano/internal/infra/logger"
	"github.com/RoyceAzure/lab/megano/internal/infra/producer"
	"github.com/RoyceAzure/lab/megano/internal/infra/ratelimit"
	"github.com/RoyceAzure/lab/megano/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/megano/internal/infra/repository/redis_repo"
	"github.com/RoyceAzure/lab/megano/internal/infra/storage"
	"github.com/RoyceAzure/lab/megano/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type ApplicationContext struct {
	Cf     *config.Config
	Logger *zerolog.Logger

	DbConn      *gorm.DB
	DbDao       db.UnifiedDB
	RedisClient *redis.Client
	SessionRepo redis_repo.ISessionRepository
	CartRepo    redis_repo.ICartRepository
	MediaStore  *storage.LocalMediaStore

	logProducer    producer.Producer
	orderProducer  *producer.OrderEventProducer
	EventPublisher producer.EventPublisher
	SignInLimiter  ratelimit.Limiter
	SessionCookie  *m.SessionCookie

	SessionService service.ISessionService
	AuthService    service.IAuthService
	ProfileService service.IProfileService
	CatalogService service.ICatalogService
	CartService    service.ICartService
	OrderService   service.IOrderService
	PaymentService service.IPaymentService
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}
	log.Info().
		Str("env", cf.Env).
		Str("port", cf.ServerPort).
		Str("db_host", cf.DbHost).
		Str("redis_addr", cf.RedisAddr).
		Str("kafka_brokers", cf.KafkaBrokers).
		Msg("loaded config")

	if err := app.Init(); err != nil {
		// 已建立的連線要關掉
		app.Shutdown(context.Background())
		return nil, err
	}
	return &app, nil
}

func (app *ApplicationContext) Init() error {
	steps := []func() error{
		app.setUpLogger,
		app.setUpDbConn,
		app.setUpDbDao,
		app.setUpRedis,
		app.setUpMediaStore,
		app.setUpEventPublisher,
		app.setUpRateLimiter,
		app.setUpServices,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// setUpLogger 有設定 LOG_KAFKA_TOPIC 時 log 同時送到 kafka
func (app *ApplicationContext) setUpLogger() error {
	log.Info().Msg("Start setup logger")
	brokers := app.Cf.KafkaBrokerList()
	if app.Cf.LogKafkaTopic != "" && len(brokers) > 0 {
		p, err := producer.New(producer.DefaultConfig(brokers, app.Cf.LogKafkaTopic), nil)
		if err != nil {
			return fmt.Errorf("failed to create log producer: %w", err)
		}
		app.logProducer = p
		app.Logger = logger.NewLogger(app.Cf.ModulerName, app.Cf.IsDebug(), logger.NewKafkaWriter(p, app.Cf.ModulerName))
	} else {
		app.Logger = logger.NewLogger(app.Cf.ModulerName, app.Cf.IsDebug())
	}
	log.Info().Msg("Finish setup logger")
	return nil
}

func (app *ApplicationContext) setUpDbConn() error {
	log.Info().Msg("Start setup database connection")
	conn, err := db.GetDbConn(app.Cf.DbName, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbUser, app.Cf.DbPas)
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}
	app.DbConn = conn
	log.Info().Msg("Finish setup database connection")
	return nil
}

func (app *ApplicationContext) setUpDbDao() error {
	log.Info().Msg("Start setup database DAO")
	app.DbDao = db.NewUnifiedDB(app.DbConn)
	log.Info().Msg("Finish setup database DAO")
	return nil
}

func (app *ApplicationContext) setUpRedis() error {
	log.Info().Msg("Start setup redis")
	client, err := redis_repo.GetRedisClient(app.Cf.RedisAddr,
		redis_repo.WithPassword(app.Cf.RedisPassword),
		redis_repo.WithDB(app.Cf.RedisDB),
	)
	if err != nil {
		return fmt.Errorf("failed to connect redis: %w", err)
	}
	app.RedisClient = client
	app.SessionRepo = redis_repo.NewSessionRepo(client, app.Cf.SessionTTL)
	app.CartRepo = redis_repo.NewCartRepo(client, app.Cf.SessionTTL)
	app.SessionCookie = &m.SessionCookie{
		Name:   app.Cf.SessionCookieName,
		TTL:    app.Cf.SessionTTL,
		Secure: app.Cf.SessionCookieSecure,
	}
	log.Info().Msg("Finish setup redis")
	return nil
}

func (app *ApplicationContext) setUpMediaStore() error {
	log.Info().Msg("Start setup media store")
	store, err := storage.NewLocalMediaStore(app.Cf.MediaRoot, app.Cf.MediaURL)
	if err != nil {
		return err
	}
	app.MediaStore = store
	log.Info().Msg("Finish setup media store")
	return nil
}

// setUpEventPublisher 沒有 broker 時事件直接丟棄
func (app *ApplicationContext) setUpEventPublisher() error {
	log.Info().Msg("Start setup event publisher")
	brokers := app.Cf.KafkaBrokerList()
	if len(brokers) == 0 || app.Cf.KafkaOrderTopic == "" {
		app.EventPublisher = producer.NoopEventPublisher{}
		log.Warn().Msg("kafka brokers not set, order events are discarded")
		return nil
	}
	p, err := producer.New(producer.DefaultConfig(brokers, app.Cf.KafkaOrderTopic), app.Logger)
	if err != nil {
		return fmt.Errorf("failed to create order event producer: %w", err)
	}
	app.orderProducer = producer.NewOrderEventProducer(p)
	app.EventPublisher = app.orderProducer
	log.Info().Msg("Finish setup event publisher")
	return nil
}

func (app *ApplicationContext) setUpRateLimiter() error {
	log.Info().Msg("Start setup sign-in rate limiter")
	limiter, err := ratelimit.New(ratelimit.Kind(app.Cf.SignInRateLimiter), app.RedisClient, constants.SignInRateLimitPrefix, &ratelimit.LimiterConfig{
		Capacity: app.Cf.SignInRateCapacity,
		RatePS:   app.Cf.SignInRatePerSecond,
		Window:   app.Cf.SignInRateWindow,
	})
	if err != nil {
		return err
	}
	app.SignInLimiter = limiter
	log.Info().Str("kind", app.Cf.SignInRateLimiter).Msg("Finish setup sign-in rate limiter")
	return nil
}

func (app *ApplicationContext) setUpServices() error {
	log.Info().Msg("Start setup services")
	app.SessionService = service.NewSessionService(app.SessionRepo, app.CartRepo)
	app.AuthService = service.NewAuthService(app.DbDao, app.SessionService, app.Logger)
	app.ProfileService = service.NewProfileService(app.DbDao, app.DbDao, app.MediaStore, app.Logger)
	app.CatalogService = service.NewCatalogService(app.DbDao, app.DbDao, app.DbDao, app.DbDao, app.MediaStore, app.Logger)
	app.CartService = service.NewCartService(app.CartRepo, app.DbDao)
	app.OrderService = service.NewOrderService(app.DbDao, app.DbDao, app.CartService, app.EventPublisher, app.Logger)
	app.PaymentService = service.NewPaymentService(app.DbDao, app.DbDao, app.EventPublisher, app.Logger)
	log.Info().Msg("Finish setup services")
	return nil
}

// Shutdown 各資源平行關閉, 逾時就不再等待
func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	log.Info().Msg("Start application shutdown")

	done := make(chan error, 1)
	go func() {
		var g errgroup.Group

		if app.orderProducer != nil {
			g.Go(func() error {
				log.Info().Msg("Closing order event producer...")
				return app.orderProducer.Close()
			})
		}
		if app.RedisClient != nil {
			g.Go(func() error {
				log.Info().Msg("Closing redis client...")
				return app.RedisClient.Close()
			})
		}
		if app.DbConn != nil {
			g.Go(func() error {
				log.Info().Msg("Closing database connection...")
				sqlDB, err := app.DbConn.DB()
				if err != nil {
					return err
				}
				return sqlDB.Close()
			})
		}
		err := g.Wait()

		// logger 最後關, 前面的錯誤還要能送出去
		if app.logProducer != nil {
			if cerr := app.logProducer.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return err
		}
		log.Info().Msg("Application shutdown complete")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %w", ctx.Err())
	}
}

// Migrate 套用 schema migration
func Migrate(cf *config.Config) error {
	log.Info().Msg("Start db migration")
	err := db.RunDBMigration(cf.DbMigrationURL, db.PostgresURL(cf.DbName, cf.DbHost, cf.DbPort, cf.DbUser, cf.DbPas))
	if err != nil {
		return err
	}
	log.Info().Msg("Finish db migration")
	return nil
}

// Seed 依 seed 檔寫入目錄資料, 可重複執行
func Seed(ctx context.Context, conn *gorm.DB, path string) error {
	log.Info().Str("file", path).Msg("Start db seed")
	seed, err := config.LoadSeedConfig(path)
	if err != nil {
		return err
	}
	if err := db.SeedCatalog(ctx, conn, seed); err != nil {
		return err
	}
	log.Info().Msg("Finish db seed")
	return nil
}
