package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/formauth/core/auth"
	"github.com/dmitrymomot/formauth/core/config"
	"github.com/dmitrymomot/formauth/core/formrequest"
	"github.com/dmitrymomot/formauth/core/health"
	"github.com/dmitrymomot/formauth/core/logger"
	"github.com/dmitrymomot/formauth/core/response"
	"github.com/dmitrymomot/formauth/core/server"
	"github.com/dmitrymomot/formauth/core/session"
	"github.com/dmitrymomot/formauth/core/validator"
	"github.com/dmitrymomot/formauth/middleware"
)

type appConfig struct {
	Server  server.Config
	Log     logger.Config
	Auth    auth.Config
	Session session.Config

	RedisURL      string        `env:"REDIS_URL"`
	SessionMaxAge time.Duration `env:"SESSION_MAX_AGE" envDefault:"720h"`
	MaxFormSize   int64         `env:"MAX_FORM_SIZE" envDefault:"65536"`
}

type signInForm struct {
	Email    string `form:"email" sanitize:"email" validate:"min=1,email"`
	Password string `form:"password" validate:"min=8"`
	Remember bool   `form:"remember" validate:"omitempty"`
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.NewFromConfig(cfg.Log, logger.WithContextExtractors(
		middleware.RequestIDExtractor,
		middleware.UserIDExtractor,
	))

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(cfg appConfig, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	authOpts := []auth.Option{auth.WithLogger(log)}
	var checks []health.Check

	if cfg.RedisURL != "" {
		redisOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return err
		}
		client := redis.NewClient(redisOpts)
		defer client.Close()

		if err := client.Ping(ctx).Err(); err != nil {
			return err
		}

		cookies, err := cfg.Auth.CookieManager()
		if err != nil {
			return err
		}
		authOpts = append(authOpts, auth.WithStore(session.NewRedisStoreFromConfig(cfg.Session, client, cookies)))
		checks = append(checks, func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		})
		log.Info("using redis session store", logger.Component("main"))
	}

	authManager, err := auth.New(cfg.Auth, authOpts...)
	if err != nil {
		return err
	}

	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
	if err != nil {
		return err
	}

	return srv.Serve(ctx, routes(cfg, log, authManager, checks...))
}

func routes(cfg appConfig, log *slog.Logger, authManager *auth.Manager, checks ...health.Check) http.Handler {
	signIn := formrequest.New(
		validator.MustStruct[signInForm](),
		formrequest.WithLogger(log),
		// Signed-in users must sign out first.
		formrequest.WithAuthorizer(formrequest.Predicate(func(r *http.Request) (bool, error) {
			userID, err := authManager.UserID(r)
			return userID == "", err
		})),
	)

	r := mux.NewRouter()
	r.Use(
		mux.MiddlewareFunc(middleware.RequestID()),
		mux.MiddlewareFunc(middleware.LoggingWithConfig(middleware.LoggingConfig{
			Logger: log,
			Skip: func(r *http.Request) bool {
				return strings.HasPrefix(r.URL.Path, "/health")
			},
		})),
		mux.MiddlewareFunc(middleware.BodyLimitWithSize(cfg.MaxFormSize)),
	)

	r.HandleFunc("/health/live", health.Liveness).Methods(http.MethodGet)
	r.Handle("/health/ready", health.Readiness(log, checks...)).Methods(http.MethodGet)

	r.HandleFunc("/sign-in", func(w http.ResponseWriter, r *http.Request) {
		result, err := signIn.Request(r).FormData()
		if err != nil {
			response.JSONErrorHandler(w, r, err)
			return
		}
		if !result.Success {
			response.Render(w, r, response.UnprocessableEntity(result))
			return
		}

		// Stand-in for a credential check: the email maps to a stable user id.
		userID := uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+strings.ToLower(result.Data.Email))).String()

		var expiration time.Duration
		if result.Data.Remember {
			expiration = cfg.SessionMaxAge
		}

		resp, err := authManager.SignIn(r, auth.SignInParams{
			UserID:     userID,
			Expiration: expiration,
			RedirectTo: "/me",
		})
		if err != nil {
			response.JSONErrorHandler(w, r, err)
			return
		}
		response.Render(w, r, resp)
	}).Methods(http.MethodPost)

	r.HandleFunc("/sign-out", func(w http.ResponseWriter, r *http.Request) {
		resp, err := authManager.SignOut(r, auth.SignOutParams{RedirectTo: "/"})
		if err != nil {
			response.JSONErrorHandler(w, r, err)
			return
		}
		response.Render(w, r, resp)
	}).Methods(http.MethodPost)

	private := r.PathPrefix("/").Subrouter()
	private.Use(mux.MiddlewareFunc(middleware.AuthWithConfig(middleware.AuthConfig{
		Identity:     authManager,
		Logger:       log,
		RequireAuth:  true,
		ErrorHandler: response.JSONErrorHandler,
	})))
	private.HandleFunc("/me", func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.MustUserID(r.Context())
		log.DebugContext(r.Context(), "profile requested", logger.Component("account"))
		response.Render(w, r, response.JSON(map[string]string{"user_id": userID}))
	}).Methods(http.MethodGet)

	return r
}
