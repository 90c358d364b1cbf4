// Package main is the entry point for the Budget Tracker API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/budget-tracker/backend/config"
	"github.com/budget-tracker/backend/internal/application/adapter"
	authusecase "github.com/budget-tracker/backend/internal/application/usecase/auth"
	budgetusecase "github.com/budget-tracker/backend/internal/application/usecase/budget"
	categoryusecase "github.com/budget-tracker/backend/internal/application/usecase/category"
	familyusecase "github.com/budget-tracker/backend/internal/application/usecase/family"
	summaryusecase "github.com/budget-tracker/backend/internal/application/usecase/summary"
	tagusecase "github.com/budget-tracker/backend/internal/application/usecase/tag"
	transactionusecase "github.com/budget-tracker/backend/internal/application/usecase/transaction"
	"github.com/budget-tracker/backend/internal/infra/db"
	"github.com/budget-tracker/backend/internal/infra/server/router"
	"github.com/budget-tracker/backend/internal/integration/adapters"
	"github.com/budget-tracker/backend/internal/integration/cache"
	"github.com/budget-tracker/backend/internal/integration/email"
	"github.com/budget-tracker/backend/internal/integration/email/templates"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/budget-tracker/backend/internal/integration/persistence"
	"github.com/budget-tracker/backend/internal/integration/persistence/model"
	"github.com/budget-tracker/backend/internal/integration/preference"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting Budget Tracker API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Database connection and migrations
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.FamilyModel{},
		&model.FamilyMemberModel{},
		&model.FamilyInviteModel{},
		&model.CategoryModel{},
		&model.TagModel{},
		&model.TransactionModel{},
		&model.BudgetModel{},
		&model.EmailQueueModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Redis connection for preferences and the list cache
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Failed to close Redis connection", "error", err)
		}
	}()
	cacheHealthChecker := func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return redisClient.Ping(ctx).Err() == nil
	}

	// Repositories
	userRepo := persistence.NewUserRepository(database.DB())
	tokenRepo := persistence.NewTokenRepository(database.DB())
	familyRepo := persistence.NewFamilyRepository(database.DB())
	categoryRepo := persistence.NewCategoryRepository(database.DB())
	tagRepo := persistence.NewTagRepository(database.DB())
	transactionRepo := persistence.NewTransactionRepository(database.DB())
	budgetRepo := persistence.NewBudgetRepository(database.DB())
	emailQueueRepo := persistence.NewEmailQueueRepository(database.DB())

	// Adapters and services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
		tokenRepo,
	)
	preferenceStore := preference.NewRedisPreferenceStore(redisClient)
	emailService := email.NewService(emailQueueRepo)

	var listCache adapter.ListCache
	if cfg.Cache.Enabled {
		listCache = cache.NewRedisListCache(redisClient, cfg.Cache.TTL)
	} else {
		listCache = cache.NewNoopListCache()
	}

	// Auth use cases
	registerUseCase := authusecase.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := authusecase.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := authusecase.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := authusecase.NewLogoutUserUseCase(tokenService)
	getCurrentUserUseCase := authusecase.NewGetCurrentUserUseCase(userRepo)
	deleteAccountUseCase := authusecase.NewDeleteAccountUseCase(userRepo, passwordService, tokenService, preferenceStore)

	// Family use cases
	resolveContextUseCase := familyusecase.NewResolveContextUseCase(familyRepo, preferenceStore)
	createFamilyUseCase := familyusecase.NewCreateFamilyUseCase(familyRepo, userRepo)
	listFamiliesUseCase := familyusecase.NewListFamiliesUseCase(familyRepo)
	getFamilyUseCase := familyusecase.NewGetFamilyUseCase(familyRepo)
	updateFamilyUseCase := familyusecase.NewUpdateFamilyUseCase(familyRepo)
	deleteFamilyUseCase := familyusecase.NewDeleteFamilyUseCase(familyRepo, preferenceStore)
	inviteMemberUseCase := familyusecase.NewInviteMemberUseCase(familyRepo, userRepo, emailService)
	acceptInviteUseCase := familyusecase.NewAcceptInviteUseCase(familyRepo, userRepo)
	removeMemberUseCase := familyusecase.NewRemoveMemberUseCase(familyRepo)
	leaveFamilyUseCase := familyusecase.NewLeaveFamilyUseCase(familyRepo)
	selectFamilyUseCase := familyusecase.NewSelectFamilyUseCase(resolveContextUseCase, preferenceStore)

	// Ledger use cases
	listCategoriesUseCase := categoryusecase.NewListCategoriesUseCase(categoryRepo, listCache)
	createCategoryUseCase := categoryusecase.NewCreateCategoryUseCase(categoryRepo, listCache)
	updateCategoryUseCase := categoryusecase.NewUpdateCategoryUseCase(categoryRepo, listCache)
	deleteCategoryUseCase := categoryusecase.NewDeleteCategoryUseCase(categoryRepo, listCache)

	listTagsUseCase := tagusecase.NewListTagsUseCase(tagRepo, listCache)
	createTagUseCase := tagusecase.NewCreateTagUseCase(tagRepo, listCache)
	updateTagUseCase := tagusecase.NewUpdateTagUseCase(tagRepo, listCache)
	deleteTagUseCase := tagusecase.NewDeleteTagUseCase(tagRepo, listCache)

	listTransactionsUseCase := transactionusecase.NewListTransactionsUseCase(transactionRepo, listCache)
	createTransactionUseCase := transactionusecase.NewCreateTransactionUseCase(transactionRepo, categoryRepo, tagRepo, listCache)
	updateTransactionUseCase := transactionusecase.NewUpdateTransactionUseCase(transactionRepo, categoryRepo, tagRepo, listCache)
	deleteTransactionUseCase := transactionusecase.NewDeleteTransactionUseCase(transactionRepo, listCache)

	listBudgetsUseCase := budgetusecase.NewListBudgetsUseCase(budgetRepo, listCache)
	createBudgetUseCase := budgetusecase.NewCreateBudgetUseCase(budgetRepo, categoryRepo, listCache)
	updateBudgetUseCase := budgetusecase.NewUpdateBudgetUseCase(budgetRepo, listCache)
	deleteBudgetUseCase := budgetusecase.NewDeleteBudgetUseCase(budgetRepo, listCache)
	budgetProgressUseCase := budgetusecase.NewGetBudgetProgressUseCase(budgetRepo, transactionRepo)

	monthlySummaryUseCase := summaryusecase.NewMonthlySummaryUseCase(transactionRepo, categoryRepo)

	// Controllers and middleware
	healthController := controller.NewHealthController(database.HealthCheck, cacheHealthChecker)
	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		getCurrentUserUseCase,
		deleteAccountUseCase,
	)
	familyController := controller.NewFamilyController(
		createFamilyUseCase,
		listFamiliesUseCase,
		getFamilyUseCase,
		updateFamilyUseCase,
		deleteFamilyUseCase,
		inviteMemberUseCase,
		acceptInviteUseCase,
		removeMemberUseCase,
		leaveFamilyUseCase,
		resolveContextUseCase,
		selectFamilyUseCase,
		cfg.Email.AppBaseURL,
	)
	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)
	tagController := controller.NewTagController(
		listTagsUseCase,
		createTagUseCase,
		updateTagUseCase,
		deleteTagUseCase,
	)
	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)
	budgetController := controller.NewBudgetController(
		listBudgetsUseCase,
		createBudgetUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
		budgetProgressUseCase,
	)
	summaryController := controller.NewSummaryController(monthlySummaryUseCase)

	loginRateLimiter := middleware.NewRateLimiter()
	authMiddleware := middleware.NewAuthMiddleware(tokenService)
	familyContextMiddleware := middleware.NewFamilyContextMiddleware(resolveContextUseCase)

	// Email worker
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	if cfg.Email.WorkerEnabled && cfg.Email.ResendAPIKey != "" {
		renderer, err := templates.NewRenderer()
		if err != nil {
			slog.Error("Failed to initialize email templates", "error", err)
			os.Exit(1)
		}

		sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		worker := email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
			PollInterval: cfg.Email.PollInterval,
			BatchSize:    cfg.Email.BatchSize,
		})
		go worker.Start(workerCtx)
	} else {
		slog.Info("Email worker disabled")
	}

	// Router and HTTP server
	r := router.NewRouter(
		healthController,
		authController,
		familyController,
		categoryController,
		tagController,
		transactionController,
		budgetController,
		summaryController,
		loginRateLimiter,
		authMiddleware,
		familyContextMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
