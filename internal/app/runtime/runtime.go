// Package runtime assembles the client and dispatches commands.
package runtime

import (
	"context"
	"fmt"
	"os"

	"mobile-recharge-client/internal/app/handlers"
	"mobile-recharge-client/internal/pkg/api"
	"mobile-recharge-client/internal/pkg/cleanup"
	"mobile-recharge-client/internal/pkg/config"
	redisdb "mobile-recharge-client/internal/pkg/db/redis"
	"mobile-recharge-client/internal/pkg/log_messages"
	"mobile-recharge-client/internal/pkg/logger"
	"mobile-recharge-client/internal/pkg/notify"
	"mobile-recharge-client/internal/pkg/store/repository"
	"mobile-recharge-client/internal/pkg/validation"
	"mobile-recharge-client/internal/service/session"
)

var connectRedisDB = func(ctx context.Context, cfg config.RedisConfig) (*redisdb.RedisClient, error) {
	return redisdb.ConnectToRedis(ctx, cfg, nil)
}

// App encapsulates client resources and lifecycle.
type App struct {
	Cfg         *config.AppConfig
	RedisClient *redisdb.RedisClient
	Store       *repository.LocalStore
	API         *api.Client
	Notifier    *notify.Notifier
	Session     *session.Manager
	Handler     *handlers.Handler
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.LoadFromConfig()
	if err != nil {
		logger.CtxError(ctx, log_messages.FailedLoadingConfiguration, err)
		return nil, err
	}
	logger.Init(cfg.Logging.LogLevel)

	rClient, err := connectRedisDB(ctx, cfg.Redis)
	if err != nil {
		logger.CtxError(ctx, "Failed to connect to Redis", err)
		return nil, err
	}

	store := repository.NewLocalStore(rClient.Client)

	// The store is the token source so every request re-reads the shared
	// token; a re-login in another instance takes effect immediately.
	apiClient := api.NewClient(cfg.API, store)
	notifier := notify.NewNotifier(rClient.Client)

	sessionMgr := session.NewManager(store, apiClient,
		session.WithExpiryNotice(func() {
			fmt.Fprintln(os.Stderr, log_messages.SessionExpiredNotice)
		}))

	validator, err := validation.New()
	if err != nil {
		return nil, err
	}

	handler := &handlers.Handler{
		Session:   sessionMgr,
		Validator: validator,
		Plans:     apiClient,
		Recharges: apiClient,
		Users:     apiClient,
		Notifier:  notifier,
		Handoff:   store,
		Out:       os.Stdout,
	}

	return &App{
		Cfg:         cfg,
		RedisClient: rClient,
		Store:       store,
		API:         apiClient,
		Notifier:    notifier,
		Session:     sessionMgr,
		Handler:     handler,
	}, nil
}

// Run restores any persisted session, then dispatches one command.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return nil
	}

	if _, err := a.Session.RestoreOnStart(ctx); err != nil {
		return err
	}

	command, rest := args[0], args[1:]
	dispatch := map[string]func(context.Context, []string) error{
		"login":    a.Handler.Login,
		"register": a.Handler.Register,
		"logout":   a.Handler.Logout,
		"whoami":   a.Handler.Whoami,
		"profile":  a.Handler.Profile,
		"theme":    a.Handler.Theme,
		"plans":    a.Handler.PlansCmd,
		"watch":    a.Handler.Watch,
		"recharge": a.Handler.Recharge,
		"history":  a.Handler.History,
		"receipt":  a.Handler.Receipt,
		"admin":    a.Handler.Admin,
	}

	fn, ok := dispatch[command]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %q", handlers.ErrUnknownCommand, command)
	}
	return fn(ctx, rest)
}

func (a *App) printUsage() {
	fmt.Fprintln(a.Handler.Out, `Usage: mobile-recharge-client <command> [flags]

Commands:
  login       log in with email and password
  register    create an account
  logout      clear the stored session
  whoami      show the current session identity
  profile     fetch the account profile
  theme       toggle light/dark preference
  plans       list and filter recharge plans
  watch       keep the plan list live until interrupted
  recharge    submit a recharge
  history     list your transactions
  receipt     show the last recharge receipt
  admin       admin dashboard and plan management`)
}

// Shutdown releases held resources.
func (a *App) Shutdown(ctx context.Context) {
	cleanup.CleanupResources(ctx, a.RedisClient)
	logger.CtxInfo(ctx, log_messages.ClientExiting)
}
