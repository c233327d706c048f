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
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"medtour-server/internal/cache"
	"medtour-server/internal/config"
	"medtour-server/internal/database"
	"medtour-server/internal/logger"
	"medtour-server/internal/models"
	"medtour-server/internal/payment"
	"medtour-server/internal/routes"
	"medtour-server/internal/seed"
	"medtour-server/internal/store"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "medtour-server",
		Short:        "Medical tourism booking API",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the doctors and appointments tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			db, backend, err := openDatabase(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer database.Close(db)

			log.Info().Str("backend", backend).Msg("schema is up to date")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert doctors from a YAML file or generated demo data",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			fake, _ := cmd.Flags().GetInt("fake")
			if file == "" && fake <= 0 {
				return errors.New("either --file or --fake is required")
			}

			cfg, log, err := setup()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()

			var doctors []models.Doctor
			if file != "" {
				doctors, err = seed.LoadFile(file)
				if err != nil {
					return err
				}
			}
			doctors = append(doctors, seed.Fake(fake)...)

			db, backend, err := openDatabase(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer database.Close(db)

			n, err := seed.Run(ctx, store.New(db), doctors)
			if err != nil {
				return err
			}
			log.Info().Int("doctors", n).Str("backend", backend).Msg("seed complete")
			return nil
		},
	}
	cmd.Flags().String("file", "", "YAML file with a doctors list")
	cmd.Flags().Int("fake", 0, "Number of generated doctors to insert")
	return cmd
}

func setup() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("load config: %w", err)
	}
	return cfg, logger.New(cfg.Environment, cfg.LogLevel), nil
}

// openDatabase picks the backend, opens the pool and creates the tables.
func openDatabase(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*gorm.DB, string, error) {
	dialect, dsn, err := database.Resolve(cfg.Database)
	if err != nil {
		return nil, "", err
	}

	db, err := database.Open(ctx, dialect, dsn, log)
	if err != nil {
		return nil, "", fmt.Errorf("connect %s: %w", dialect.Name(), err)
	}

	if err := database.InitSchema(ctx, db, dialect); err != nil {
		database.Close(db)
		return nil, "", err
	}
	return db, dialect.Name(), nil
}

func runServer() error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	startCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, backend, err := openDatabase(startCtx, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("database unavailable")
		return err
	}
	defer database.Close(db)
	log.Info().Str("backend", backend).Msg("database ready")

	admin, err := models.NewAdmin(cfg.Admin.Username, cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	if cfg.Admin.Password == config.DefaultAdminPassword || cfg.Admin.Token == config.DefaultAdminToken {
		log.Warn().Msg("admin credentials are using built-in defaults")
	}

	deps := routes.Dependencies{
		Config:  cfg,
		Log:     log,
		Store:   store.New(db),
		Backend: backend,
		Admin:   admin,
	}

	var rdb *redis.Client
	if cfg.Redis.URL != "" {
		rdb, err = cache.NewRedisClient(startCtx, cfg.Redis.URL)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, doctor cache disabled")
		} else {
			defer rdb.Close()
			deps.Redis = rdb
			deps.DoctorCache = cache.NewRedisDoctorCache(rdb, cfg.Redis.CacheTTL)
		}
	}

	if cfg.Payment.StripeSecretKey != "" {
		deps.Payment = payment.NewStripe(cfg.Payment.StripeSecretKey, cfg.Payment.Currency, nil)
		log.Info().Str("currency", cfg.Payment.Currency).Msg("stripe payments enabled")
	} else {
		log.Info().Msg("no stripe key, payment intents run in demo mode")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	return srv.Shutdown(shutdownCtx)
}
