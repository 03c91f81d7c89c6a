package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"farewatch-service/internal/domain/entity"
	"farewatch-service/internal/domain/repository"
	"farewatch-service/internal/infrastructure/config"
	"farewatch-service/internal/infrastructure/persistence"
	"farewatch-service/internal/infrastructure/router"
	repo "farewatch-service/internal/interface/repository"
	"farewatch-service/internal/usecase"
	"farewatch-service/pkg/logger"
	"farewatch-service/pkg/metrics"
	"farewatch-service/templates"
)

func main() {
	kingpinApp := kingpin.New("farewatch", "Flight deal watcher - drains bot commands, searches fares and notifies subscribers, one pass per invocation")
	configPath := kingpinApp.Flag("config", "Path to the YAML or JSON configuration file").Default("config.yaml").String()
	stateFile := kingpinApp.Flag("state-file", "Override the local state file path").String()
	debug := kingpinApp.Flag("debug", "Enable debug logging").Bool()
	kingpin.MustParse(kingpinApp.Parse(os.Args[1:]))

	log := logger.NewLogger(*debug)
	code := run(*configPath, *stateFile, log)
	log.Sync()
	os.Exit(code)
}

// run executes one full pass and returns the process exit code. Fatal
// configuration and search failures map to a non-zero exit so the external
// scheduler can surface broken runs.
func run(configPath, stateFile string, log *logger.ZapLogger) int {
	log.Info("Starting Farewatch Service")

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Error("Failed to load config", "error", err)
		return 1
	}
	if stateFile != "" {
		cfg.StateFile = stateFile
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.NewMetrics("farewatch")

	// State store: MongoDB when a DSN is configured, else a GitHub Gist,
	// else the local state file.
	var store repository.StateRepository
	switch {
	case cfg.MongoURI != "":
		log.Info("Connecting to MongoDB")
		mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			log.Error("Failed to connect to MongoDB", "error", err)
			return 1
		}
		defer func() {
			if err := mongoClient.Disconnect(context.Background()); err != nil {
				log.Error("MongoDB disconnect error", "error", err)
			}
		}()
		store = repo.NewStateMongoRepository(db, log)
	case cfg.GistID != "":
		store = repo.NewStateGistRepository(ctx, "", cfg.GistID, cfg.GithubToken, cfg.AdminChatID, cfg.HTTPTimeout, log)
	default:
		store = repo.NewStateFileRepository(cfg.StateFile, cfg.AdminChatID, log)
	}

	// Place directory: master data from PostgreSQL when configured, the
	// built-in directory otherwise.
	var places repository.PlaceRepository = repo.NewStaticPlaceRepository()
	if cfg.PostgresDSN != "" {
		log.Info("Connecting to PostgreSQL")
		gormDB, err := gorm.Open(postgres.Open(cfg.PostgresDSN), &gorm.Config{})
		if err != nil {
			log.Error("Failed to connect to PostgreSQL", "error", err)
			return 1
		}
		defer func() {
			if sqlDB, err := gormDB.DB(); err == nil {
				sqlDB.Close()
			}
		}()
		places = repo.NewGormPlaceRepository(gormDB)
	}

	flightRepo := repo.NewAviasalesRepository(cfg.AviasalesAPIBase, cfg.AviasalesToken, cfg.HTTPTimeout, log)
	messenger := repo.NewTelegramRepository(cfg.TelegramAPIBase, cfg.TelegramBotToken, cfg.MessageFooter, cfg.TelegramSendRPS, cfg.HTTPTimeout, log)
	digest := templates.NewDigestBuilder(places, log)

	commandRouter := router.NewCommandRouter(log)
	commandRouter.Register(usecase.NewStartHandler(messenger, cfg.AdminChatID, log))
	commandRouter.Register(usecase.NewHelpHandler(messenger, log))
	commandRouter.Register(usecase.NewSettingsHandler(messenger, cfg.Defaults, log))
	commandRouter.Register(usecase.NewSetValueHandler(messenger, log))
	commandRouter.Register(usecase.NewDirectToggleHandler(messenger, cfg.Defaults, log))
	commandRouter.Register(usecase.NewResetHandler(messenger, log))
	commandRouter.Register(usecase.NewAdminHandler(messenger, cfg.Defaults, cfg.AdminChatID, log))

	processor := usecase.NewCommandProcessor(messenger, commandRouter, cfg.AdminChatID, log)
	finder := usecase.NewDealFinder(flightRepo, messenger, digest, cfg.Defaults, m, log)

	state, err := store.Load(ctx)
	if err != nil {
		log.Warn("Failed to load state, starting fresh", "error", err)
		m.ErrorsCount.WithLabelValues("state_load").Inc()
		state = entity.NewState()
	}
	if cfg.AdminChatID != "" {
		state.EnsureUser(cfg.AdminChatID, "Admin")
	}

	// A failed update fetch only skips command handling for this run; the
	// searches still happen and the cursor stays where it was.
	if err := processor.ProcessUpdates(ctx, state); err != nil {
		m.ErrorsCount.WithLabelValues("updates").Inc()
		log.Warn("Command processing skipped", "error", err)
	}

	code := 0
	if err := finder.SearchAll(ctx, state); err != nil {
		var reqErr *entity.RequestError
		var delErr *entity.DeliveryError
		switch {
		case errors.As(err, &reqErr):
			log.Error("Flight search failed", "error", err)
		case errors.As(err, &delErr):
			log.Error("Digest delivery failed", "error", err)
		default:
			log.Error("Search run failed", "error", err)
		}
		code = 1
	}

	// A lost save means lost dedupe history, which turns into duplicate
	// digests on the next run; make the scheduler notice.
	if err := store.Save(ctx, state); err != nil {
		m.ErrorsCount.WithLabelValues("state_save").Inc()
		log.Error("Failed to save state", "error", err)
		code = 1
	}

	if cfg.PushgatewayURL != "" {
		if err := m.Push(ctx, cfg.PushgatewayURL, "farewatch"); err != nil {
			log.Warn("Failed to push metrics", "error", err)
		}
	}

	log.Info("Farewatch run finished", "users", len(state.Users), "exitCode", code)
	return code
}
