package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/6laercio/saude-integrada-api/internal/audit"
	"github.com/6laercio/saude-integrada-api/internal/config"
	dbpkg "github.com/6laercio/saude-integrada-api/internal/db"
	infraRepo "github.com/6laercio/saude-integrada-api/internal/infra/repository"
	"github.com/6laercio/saude-integrada-api/internal/logger"
	"github.com/6laercio/saude-integrada-api/internal/reminder"
	"github.com/6laercio/saude-integrada-api/internal/routes"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "api",
		Short:        "Saúde Integrada: API da clínica",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(workerCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// bootstrap loads config, builds the logger and opens the database.
func bootstrap() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	return cfg, logger.New(cfg.Env, cfg.LogLevel), nil
}

func newRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}

	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// ======================================================
// SERVE
// ======================================================

func serveCmd() *cobra.Command {
	var autoMigrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Inicia o servidor HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(autoMigrate)
		},
	}
	cmd.Flags().BoolVar(&autoMigrate, "migrate", false, "aplica as migrações antes de subir")
	return cmd
}

func runServer(autoMigrate bool) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		return err
	}
	if autoMigrate {
		if err := dbpkg.Migrate(db); err != nil {
			return err
		}
	}

	// --------------------------------------------------
	// Auditoria e lembretes (assíncronos)
	// --------------------------------------------------

	auditDispatcher := audit.NewDispatcher(audit.New(db), log)
	defer auditDispatcher.Close()

	deps := routes.Deps{
		DB:     db,
		Config: cfg,
		Log:    log,
		Audit:  auditDispatcher,
	}

	rdb, err := newRedis(context.Background(), cfg)
	if err != nil {
		log.Warn().Err(err).Msg("redis indisponível, lembretes desativados")
	} else {
		defer rdb.Close()
		reminders := reminder.NewDispatcher(reminder.NewRedisQueue(rdb), cfg.ReminderLead, log)
		defer reminders.Close()
		deps.Reminders = reminders
	}

	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}

// ======================================================
// MIGRATE
// ======================================================

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Cria/atualiza o schema (tabelas e constraint de conflito)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}

			db, err := dbpkg.NewDB(cfg, log)
			if err != nil {
				return err
			}
			if err := dbpkg.Migrate(db); err != nil {
				return err
			}

			log.Info().Msg("migrations applied")
			return nil
		},
	}
}

// ======================================================
// WORKER
// ======================================================

func workerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Processa a fila de lembretes de consulta",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorker()
		},
	}
}

func runWorker() error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb, err := newRedis(ctx, cfg)
	if err != nil {
		return err
	}
	defer rdb.Close()

	worker := reminder.NewWorker(
		reminder.NewRedisQueue(rdb),
		infraRepo.NewAppointmentGormRepository(db),
		reminder.NewLogNotifier(log, cfg.ClinicTimezone),
		log,
	)

	every := time.Duration(cfg.ReminderSweepSeconds) * time.Second
	scheduler, err := worker.Start(ctx, every)
	if err != nil {
		return err
	}

	log.Info().Dur("every", every).Msg("reminder worker started")
	<-ctx.Done()

	scheduler.Stop()
	log.Info().Msg("reminder worker stopped")
	return nil
}
