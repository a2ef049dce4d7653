package bootstrap

import (
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/emmanuelronoh/backend/internal/config"
	"github.com/emmanuelronoh/backend/internal/controller"
	"github.com/emmanuelronoh/backend/internal/pkg/logger"
	"github.com/emmanuelronoh/backend/internal/pkg/mailer"
	"github.com/emmanuelronoh/backend/internal/pkg/serverutils"
	"github.com/emmanuelronoh/backend/internal/pkg/session"
	"github.com/emmanuelronoh/backend/internal/repository/unitofwork"
	"github.com/emmanuelronoh/backend/internal/service"
)

type Container struct {
	// Controllers
	AuthController    controller.IAuthController
	NoteController    controller.INoteController
	ContactController controller.IContactController
	UserController    controller.IUserController

	// Background services (exposed for main.go to run)
	HistoryService service.IHistoryService

	// Shared middleware and facades
	RequireSession fiber.Handler
	Logger         logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		cfg.App.ClientURL,
	)

	// 2. Session store, selected by config
	var sessions session.Store
	if cfg.Session.Backend == "redis" {
		opts, err := redis.ParseURL(cfg.Session.RedisURL)
		if err != nil {
			log.Fatalf("[FATAL] Invalid REDIS_URL: %v", err)
		}
		sessions = session.NewRedisStore(redis.NewClient(opts), cfg.Session.TTL)
		log.Println("[INFO] Using Session Store: REDIS")
	} else {
		sessions = session.NewMemoryStore(cfg.Session.TTL)
		log.Println("[INFO] Using Session Store: MEMORY")
	}

	// 3. In-process event bus for the editor-content history pipeline
	bus := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)

	// 4. Services
	authService := service.NewAuthService(uowFactory, emailService, sessions, sysLogger, cfg.Session.Secret, cfg.Session.TTL)
	noteService := service.NewNoteService(uowFactory, bus, sysLogger)
	contactService := service.NewContactService(uowFactory, emailService, sysLogger, cfg.SMTP.ContactInbox)
	userService := service.NewUserService(uowFactory)
	historyService := service.NewHistoryService(uowFactory, bus, sysLogger)

	return &Container{
		AuthController:    controller.NewAuthController(authService),
		NoteController:    controller.NewNoteController(noteService),
		ContactController: controller.NewContactController(contactService),
		UserController:    controller.NewUserController(userService),
		HistoryService:    historyService,
		RequireSession:    serverutils.NewSessionMiddleware(cfg.Session.Secret, sessions),
		Logger:            sysLogger,
	}
}
