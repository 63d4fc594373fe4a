package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/hr-service/internal/api/http"
	"github.com/spec-kit/hr-service/internal/api/http/handlers"
	"github.com/spec-kit/hr-service/internal/auth"
	"github.com/spec-kit/hr-service/internal/clock"
	"github.com/spec-kit/hr-service/internal/config"
	"github.com/spec-kit/hr-service/internal/events"
	"github.com/spec-kit/hr-service/internal/observability"
	"github.com/spec-kit/hr-service/internal/persistence"
	"github.com/spec-kit/hr-service/internal/repository"
	"github.com/spec-kit/hr-service/internal/scheduler"
	"github.com/spec-kit/hr-service/internal/service"
	"github.com/spec-kit/hr-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	departmentRepo := repository.NewDepartmentRepository(pool)
	employeeRepo := repository.NewEmployeeRepository(pool)
	leaveRepo := repository.NewLeaveRepository(pool)
	qrTokenRepo := repository.NewQRTokenRepository(pool)
	attendanceRepo := repository.NewAttendanceRepository(pool)

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	sysClock := clock.System{}

	authService := service.NewAuthService(*cfg, userRepo)
	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)

	departmentService := service.NewDepartmentService(departmentRepo)
	employeeService := service.NewEmployeeService(employeeRepo, departmentRepo, cfg.Auth.BcryptCost)
	leaveService := service.NewLeaveService(leaveRepo, dispatcher)

	attendanceService := service.NewAttendanceService(service.AttendanceDependencies{
		QRTokenRepo:    qrTokenRepo,
		AttendanceRepo: attendanceRepo,
		EmployeeRepo:   employeeRepo,
		Signer:         auth.NewCredentialSigner(cfg.QR.SigningSecret),
		Cache:          service.NewCredentialCache(redis.Client),
		Clock:          sysClock,
		Dispatcher:     dispatcher,
	})

	adminService := service.NewAdminService(service.AdminDependencies{
		UserRepo:       userRepo,
		EmployeeRepo:   employeeRepo,
		DepartmentRepo: departmentRepo,
		AttendanceRepo: attendanceRepo,
		LeaveRepo:      leaveRepo,
		Clock:          sysClock,
	})

	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	photoStorage, err := service.NewPhotoStorage(cfg.Storage)
	if err != nil {
		logger.Warn("object storage unavailable, photo uploads disabled", zap.Error(err))
	}

	var tokenScheduler *scheduler.DailyTokenScheduler
	if cfg.Scheduler.Enabled {
		tokenScheduler = scheduler.NewDailyTokenScheduler(
			scheduler.IssuerFunc(func(ctx context.Context) error {
				_, err := attendanceService.IssueTokenForToday(ctx)
				return err
			}),
			logger,
			sysClock,
			cfg.Scheduler.MidnightOffset(),
		)
		tokenScheduler.Start(ctx)
		defer tokenScheduler.Stop()
	}

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Department:     handlers.NewDepartmentHandler(departmentService),
		Employee:       handlers.NewEmployeeHandler(employeeService, photoStorage),
		Leave:          handlers.NewLeaveHandler(leaveService),
		Attendance:     handlers.NewAttendanceHandler(attendanceService),
		Admin:          handlers.NewAdminHandler(adminService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
