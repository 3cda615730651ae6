package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/busbooking/api"
	"github.com/Domenick1991/busbooking/config"
	"github.com/Domenick1991/busbooking/internal/bootstrap"
	"github.com/Domenick1991/busbooking/internal/cache"
	"github.com/Domenick1991/busbooking/internal/kafka"
	"github.com/Domenick1991/busbooking/internal/logger"
	"github.com/Domenick1991/busbooking/internal/repository"
	"github.com/Domenick1991/busbooking/internal/service/booking"
	"github.com/Domenick1991/busbooking/internal/service/drivers"
	"github.com/Domenick1991/busbooking/internal/service/schedules"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	lg, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	if !cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		lg.Fatal("parse redis url", zap.Error(err))
	}
	client := redis.NewClient(redisOpts)
	defer client.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	if err := client.Ping(pingCtx).Err(); err != nil {
		cancel()
		lg.Fatal("connect redis", zap.String("url", redisOpts.Addr), zap.Error(err))
	}
	cancel()
	lg.Info("connected to redis", zap.String("addr", redisOpts.Addr))

	boardCache := cache.NewRedisCache(client, time.Duration(cfg.Board.CacheTTLSeconds)*time.Second)

	driverRepo := repository.NewDriverRepository(client)
	statusRepo := repository.NewStatusRepository(client)
	scheduleRepo := repository.NewScheduleRepository(client)
	bookingRepo := repository.NewBookingRepository(client)

	driverOpts := []drivers.DriverServiceOption{
		drivers.WithBoardInvalidator(boardCache),
		drivers.WithLogger(lg.Named("drivers")),
	}
	scheduleOpts := []schedules.ScheduleServiceOption{
		schedules.WithCache(boardCache),
		schedules.WithSeed(cfg.Board.Seed),
		schedules.WithLogger(lg.Named("schedules")),
	}
	bookingOpts := []booking.BookingServiceOption{
		booking.WithLogger(lg.Named("bookings")),
	}

	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, lg.Named("kafka"))
		defer producer.Close()

		checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := producer.CheckConnection(checkCtx); err != nil {
			lg.Warn("kafka not reachable, events will fail until it is", zap.Error(err))
		}
		cancel()

		timeout := cfg.Kafka.PublishTimeout()
		driverOpts = append(driverOpts, drivers.WithProducer(producer, cfg.Kafka.EventsTopic), drivers.WithPublishTimeout(timeout))
		scheduleOpts = append(scheduleOpts, schedules.WithProducer(producer, cfg.Kafka.EventsTopic), schedules.WithPublishTimeout(timeout))
		bookingOpts = append(bookingOpts, booking.WithProducer(producer, cfg.Kafka.EventsTopic), booking.WithPublishTimeout(timeout))
	} else {
		lg.Info("kafka brokers not configured, events disabled")
	}

	driverService := drivers.NewDriverService(driverRepo, statusRepo, scheduleRepo, driverOpts...)
	scheduleService := schedules.NewScheduleService(scheduleRepo, driverRepo, statusRepo, scheduleOpts...)
	bookingService := booking.NewBookingService(bookingRepo, bookingOpts...)

	router := api.NewRouter(lg, cfg.HTTP.CORSAllowedOrigins,
		api.NewDriverHandler(driverService, lg),
		api.NewScheduleHandler(scheduleService, lg),
		api.NewBookingHandler(bookingService, lg),
	)

	if err := bootstrap.Run(ctx, cfg, router, lg); err != nil {
		lg.Fatal("server error", zap.Error(err))
	}
}
