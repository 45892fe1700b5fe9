package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	_ "github.com/sbilibin2017/gw-blog/docs"
	"github.com/sbilibin2017/gw-blog/internal/handlers"
	"github.com/sbilibin2017/gw-blog/internal/jwt"
	"github.com/sbilibin2017/gw-blog/internal/logger"
	"github.com/sbilibin2017/gw-blog/internal/middlewares"
	"github.com/sbilibin2017/gw-blog/internal/migrations"
	"github.com/sbilibin2017/gw-blog/internal/models"
	"github.com/sbilibin2017/gw-blog/internal/repositories"
	"github.com/sbilibin2017/gw-blog/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-blog API
// @version 1.0.0
// @description Blog backend with users, roles, posts and role-based access control
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath, initDB := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg, initDB); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path and
// whether the database should be recreated.
func parseFlags() (string, bool) {
	c := flag.String("c", "config.env", "Path to configuration file")
	initDB := flag.Bool("init-db", false, "Drop and recreate all tables, then exit")
	flag.Parse()
	return *c, *initDB
}

// run initializes the logger, database, Redis, Kafka and both servers.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config, initDB bool) error {
	if err := logger.Initialize(cfg.LogLevel, cfg.Env); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s (%s)", cfg.LogLevel, cfg.Env)

	// Connect to PostgreSQL
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if initDB {
		if err := migrations.Reset(ctx, db); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		if err := seed(ctx, db, cfg.SeedPath); err != nil {
			return err
		}
		logger.Log.Info("Initialized the database.")
		return nil
	}

	if err := migrations.Apply(ctx, db); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	if err := seed(ctx, db, cfg.SeedPath); err != nil {
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka publisher, disabled without brokers
	var publisher *services.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		writer := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           10 * time.Millisecond,
			AllowAutoTopicCreation: true,
		}
		defer writer.Close()
		publisher = services.NewEventPublisher(writer)
	} else {
		publisher = services.NewEventPublisher(nil)
	}

	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(cfg.JWTExp),
	)

	txGetter := repositories.TxGetter(middlewares.GetTxFromContext)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db, txGetter)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	roleReadRepo := repositories.NewRoleReadRepository(db, txGetter)
	roleWriteRepo := repositories.NewRoleWriteRepository(db, txGetter)
	postReadRepo := repositories.NewPostReadRepository(db, txGetter)
	postWriteRepo := repositories.NewPostWriteRepository(db, txGetter)
	roleCacheRepo := repositories.NewRoleCacheRepository(rdb, cfg.RoleCacheTTL)

	// Initialize services
	svc := appServices{
		auth:  services.NewAuthService(userReadRepo, tokens),
		users: services.NewUserService(userReadRepo, userWriteRepo, roleCacheRepo, publisher),
		roles: services.NewRoleService(roleReadRepo, roleWriteRepo, publisher),
		posts: services.NewPostService(postReadRepo, postWriteRepo, userReadRepo, publisher),
	}

	swaggerURL := fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)
	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: newRouter(db, tokens, svc, swaggerURL),
	}

	// gRPC health service
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%s", cfg.AppHost, cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen for gRPC: %w", err)
	}

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	go func() {
		logger.Log.Infof("gRPC health server listening on %s", lis.Addr())
		if err := grpcServer.Serve(lis); err != nil {
			errChan <- fmt.Errorf("gRPC server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping servers...")
	case serveErr := <-errChan:
		grpcServer.Stop()
		return serveErr
	}

	healthServer.Shutdown()
	grpcServer.GracefulStop()

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("Servers stopped gracefully")
	return nil
}

func seed(ctx context.Context, db *sqlx.DB, path string) error {
	if path == "" {
		return nil
	}
	if err := migrations.SeedFromFile(ctx, db, path); err != nil {
		return fmt.Errorf("failed to seed database from %s: %w", path, err)
	}
	logger.Log.Infof("Database seeded from %s", path)
	return nil
}

// appServices groups the services the router dispatches to.
type appServices struct {
	auth  *services.AuthService
	users *services.UserService
	roles *services.RoleService
	posts *services.PostService
}

// newRouter builds the HTTP routes. Everything except the swagger UI runs
// inside a request transaction.
func newRouter(db *sqlx.DB, tokens middlewares.Tokener, svc appServices, swaggerURL string) http.Handler {
	authMiddleware := middlewares.AuthMiddleware(tokens)
	adminOnly := middlewares.RequireRole(models.RoleAdmin, svc.users)

	r := chi.NewRouter()
	r.Use(middlewares.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.NotFound(middlewares.NotFoundHandler)
	r.MethodNotAllowed(middlewares.MethodNotAllowedHandler)

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	r.Group(func(r chi.Router) {
		r.Use(middlewares.TxMiddleware(db))

		r.Post("/auth/login", handlers.NewLoginHandler(svc.auth))

		r.Route("/users", func(r chi.Router) {
			r.Post("/", handlers.NewCreateUserHandler(svc.users))
			r.With(authMiddleware, adminOnly).Get("/", handlers.NewListUsersHandler(svc.users))
			r.Get("/{id}", handlers.NewGetUserHandler(svc.users))
			r.Patch("/{id}", handlers.NewUpdateUserHandler(svc.users))
			r.Delete("/{id}", handlers.NewDeleteUserHandler(svc.users))
			r.Get("/{id}/posts", handlers.NewListUserPostsHandler(svc.posts))
		})

		r.Route("/roles", func(r chi.Router) {
			r.Post("/", handlers.NewCreateRoleHandler(svc.roles))
			r.With(authMiddleware, adminOnly).Get("/", handlers.NewListRolesHandler(svc.roles))
		})

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", handlers.NewListPostsHandler(svc.posts))
			r.Get("/{id}", handlers.NewGetPostHandler(svc.posts))

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware)
				r.Post("/", handlers.NewCreatePostHandler(svc.posts))
				r.Patch("/{id}", handlers.NewUpdatePostHandler(svc.posts))
				r.Delete("/{id}", handlers.NewDeletePostHandler(svc.posts))
			})
		})
	})

	return r
}
