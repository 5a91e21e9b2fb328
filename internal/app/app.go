package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sam_awards_backend/internal/config"
	"sam_awards_backend/internal/controller"
	"sam_awards_backend/internal/repository"
	"sam_awards_backend/internal/service"
	"sam_awards_backend/pkg/database"
	"sam_awards_backend/pkg/logger"
	"sam_awards_backend/pkg/monitoring"
	"sam_awards_backend/pkg/security"
	"sam_awards_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user        *repository.UserRepository
	nomination  *repository.NominationRepository
	eligibility *repository.EligibilityRepository
	draft       *repository.DraftRepository
}

type services struct {
	auth        *service.AuthService
	storage     *service.StorageService
	category    *service.CategoryService
	eligibility *service.EligibilityService
	submission  *service.SubmissionService
	review      *service.ReviewService
}

type controllers struct {
	auth        *controller.AuthController
	category    *controller.CategoryController
	eligibility *controller.EligibilityController
	nomination  *controller.NominationController
	review      *controller.ReviewController
	health      *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig swaps in a reloaded configuration and notifies
// registered callbacks. Only hot-reloadable settings take effect;
// listeners and connections keep their original values.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config.Award = cfg.Award
	a.Config.RateLimit = cfg.RateLimit
	a.Config.CORS = cfg.CORS

	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		nomination:  repository.NewNominationRepository(db),
		eligibility: repository.NewEligibilityRepository(db, rdb),
		draft:       repository.NewDraftRepository(rdb),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.category = service.NewCategoryService()
	s.eligibility = service.NewEligibilityService(repos.eligibility)
	s.submission = service.NewSubmissionService(repos.nomination, repos.draft, s.eligibility, s.storage, cfg)
	s.review = service.NewReviewService(repos.nomination)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth),
		category:    controller.NewCategoryController(s.category),
		eligibility: controller.NewEligibilityController(s.eligibility),
		nomination:  controller.NewNominationController(s.submission),
		review:      controller.NewReviewController(s.review),
		health:      controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if err := database.SeedAdmin(db, &cfg.Award); err != nil {
		logger.Log.Error("Failed to seed admin account", zap.Error(err))
	}

	if cfg.MigrateOnly {
		return &App{Config: cfg, DB: db}
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, rdb)
	services := app.initServices(repos, cfg)
	app.services = services
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		_, err := tracing.InitTracer("awards-portal", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
		router.Static("/api/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// stop pending questionnaire redirects
	if a.services != nil && a.services.eligibility != nil {
		a.services.eligibility.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
