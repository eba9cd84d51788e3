package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mindmate_backend/internal/assessment"
	"mindmate_backend/internal/config"
	"mindmate_backend/internal/controller"
	"mindmate_backend/internal/middleware"
	"mindmate_backend/internal/service"
	"mindmate_backend/internal/util"
	"mindmate_backend/pkg/configwatcher"
	"mindmate_backend/pkg/logger"
	"mindmate_backend/pkg/monitoring"
	"mindmate_backend/pkg/security"
	"mindmate_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	services        *services
	tracer          *sdktrace.TracerProvider
	stop            chan struct{}
	configCallbacks []func(*config.Config)
}

type services struct {
	assessment *service.AssessmentService
	catalog    *service.CatalogService
	dashboard  *service.DashboardService
	sessions   *service.SessionStore
}

type controllers struct {
	assessment *controller.AssessmentController
	catalog    *controller.CatalogController
	dashboard  *controller.DashboardController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initServices(cfg *config.Config) (*services, error) {
	s := &services{}

	recommender, err := assessment.NewRecommender(cfg.Assessment.Thresholds)
	if err != nil {
		return nil, err
	}

	s.sessions = service.NewSessionStore(time.Duration(cfg.Session.TTLMinutes) * time.Minute)
	s.assessment = service.NewAssessmentService(
		assessment.NewScorer(assessment.DefaultQuestions()),
		recommender,
		s.sessions,
	)
	s.catalog = service.NewCatalogService()
	s.dashboard = service.NewDashboardService()

	return s, nil
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		assessment: controller.NewAssessmentController(s.assessment),
		catalog:    controller.NewCatalogController(s.catalog),
		dashboard:  controller.NewDashboardController(s.dashboard),
		health:     controller.NewHealthController(s.sessions),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute, a.stop))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) startBackgroundTasks(s *services) {
	s.sessions.StartJanitor(time.Minute)

	// 阈值热加载
	a.RegisterConfigCallback(func(cfg *config.Config) {
		if err := s.assessment.UpdateThresholds(cfg.Assessment.Thresholds); err != nil {
			logger.Log.Error("failed to apply reloaded thresholds", zap.Error(err))
		}
	})

	if a.Config.Dir == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			<-a.stop
			cancel()
		}()
		err := configwatcher.WatchConfig(ctx, a.Config.Dir, func(cfg *config.Config) {
			for _, cb := range a.configCallbacks {
				cb(cfg)
			}
		})
		if err != nil {
			logger.Log.Warn("config watcher disabled", zap.Error(err))
		}
	}()
}

// New 构建应用但不启动后台任务，测试直接使用
func New(cfg *config.Config) (*App, error) {
	if cfg.Server.Mode == util.ModeRelease {
		gin.SetMode(gin.ReleaseMode)
	}

	app := &App{
		Config: cfg,
		stop:   make(chan struct{}),
	}

	services, err := app.initServices(cfg)
	if err != nil {
		return nil, err
	}
	app.services = services
	controllers := app.initControllers(services)

	// 监控初始化
	monitoring.Init()

	router := gin.New()
	router.Use(gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers)

	return app, nil
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	app, err := New(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize application", zap.Error(err))
	}

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	app.startBackgroundTasks(app.services)

	return app
}

// Close 停止后台协程并刷新追踪数据
func (a *App) Close() {
	select {
	case <-a.stop:
		return
	default:
		close(a.stop)
	}

	if a.services != nil {
		a.services.sessions.Stop()
	}

	if a.tracer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	a.Close()
	logger.Log.Info("Server exiting")
}
