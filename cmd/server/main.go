package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/config"
	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/db"
	httpHandlers "github.com/SakshamChauhan23/slack-employeeadvocacy/internal/http/handlers"
	httpRouter "github.com/SakshamChauhan23/slack-employeeadvocacy/internal/http/router"
	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/logger"
	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/repository"
	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/repository/memory"
	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/service"
	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/whatsapp"
	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/ws"
	"github.com/SakshamChauhan23/slack-employeeadvocacy/migrations"
)

// stores: набор репозиториев выбранного драйвера.
type stores struct {
	posts  service.PostRepository
	users  service.UserRepository
	otp    service.OTPRepository
	events service.EventRepository
	health httpHandlers.Pinger
	close  func() error
}

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	logger.Init(cfg.LogLevel)
	if cfg.Env == "development" {
		logger.SetTextFormatter()
	}

	if err := run(ctx, cfg); err != nil {
		logger.Log.WithError(err).Error("main: сервер завершился с ошибкой")
		stop()
		os.Exit(1)
	}
}

// run поднимает хранилище и HTTP сервер и блокируется до отмены ctx.
// Хранилище закрывается при любом исходе.
func run(ctx context.Context, cfg *config.Config) error {
	st, err := storeOpener(ctx, cfg)
	if err != nil {
		return fmt.Errorf("открытие хранилища: %w", err)
	}
	defer func() {
		if err := st.close(); err != nil {
			logger.Get().WithError(err).Warn("main: ошибка закрытия хранилища")
		}
	}()

	clock := service.SystemClock{}

	// Вебсокеты. Хаб останавливается вместе с run.
	hubCtx, stopHub := context.WithCancel(ctx)
	defer stopHub()
	hub := ws.NewHub()
	go hub.Run(hubCtx)

	// Сервисы.
	postService := service.NewPostService(st.posts, clock)
	eventService := service.NewEventService(st.events, clock)
	eventService.SetPublisher(hub)
	otpService := service.NewOTPService(st.otp, st.users, clock, service.RandomCodeGenerator{}, cfg.OTPTTL)
	whatsAppService := service.NewWhatsAppService(st.users, st.posts, eventService, whatsapp.NewLogSender(logger.Get()), cfg.WhatsAppFallbackURL)

	// Роутер.
	engine := httpRouter.SetupRouter(cfg,
		httpHandlers.NewPostHandler(postService),
		httpHandlers.NewEventHandler(eventService),
		httpHandlers.NewPhoneHandler(otpService),
		httpHandlers.NewWhatsAppHandler(whatsAppService),
		httpHandlers.NewHealthHandler(st.health),
		httpHandlers.NewWSHandler(hub),
	)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Завершаем сервер при получении сигнала.
	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-hubCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Get().WithError(err).Error("main: ошибка остановки http сервера")
		}
	}()

	logger.Get().WithFields(logrus.Fields{
		"port":  cfg.HTTPPort,
		"store": cfg.StoreDriver,
		"env":   cfg.Env,
	}).Info("main: HTTP сервер запущен")

	err = server.ListenAndServe()
	stopHub()
	<-shutdownDone
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http сервер: %w", err)
	}
	return nil
}

var storeOpener = openStores

func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		mem := memory.NewStore()
		logger.Get().Warn("main: используется in-memory хранилище, данные не сохраняются между запусками")
		return &stores{
			posts:  mem.Posts(),
			users:  mem.Users(),
			otp:    mem.OTP(),
			events: mem.Events(),
			health: mem,
			close:  func() error { return nil },
		}, nil
	}

	// Подключение к базе и миграции.
	dbConn, err := db.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := db.RunMigrations(ctx, dbConn, migrationsFS(cfg.MigrationsPath)); err != nil {
		safeClose(dbConn)
		return nil, err
	}

	return &stores{
		posts:  repository.NewPostRepository(dbConn),
		users:  repository.NewUserRepository(dbConn),
		otp:    repository.NewOTPRepository(dbConn),
		events: repository.NewEventRepository(dbConn),
		health: dbConn,
		close:  dbConn.Close,
	}, nil
}

// migrationsFS берёт миграции с диска, если каталог есть, иначе встроенные в бинарник.
func migrationsFS(path string) fs.FS {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return os.DirFS(path)
	}
	return migrations.FS
}

// safeClose закрывает соединение с базой.
func safeClose(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		log.Printf("main: ошибка закрытия базы: %v", err)
	}
}
