package server

import (
	"net/http"

	"reminder-api/confs"
	"reminder-api/db"
	"reminder-api/handlers"
	httpHandler "reminder-api/handlers/http"
	"reminder-api/repositories"
	"reminder-api/services"
	"reminder-api/usecases"
	"reminder-api/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slog"
)

type Server struct {
	app     *gin.Engine
	db      db.Database
	cfg     *confs.Config
	logger  *slog.Logger
	manager *ws.Manager
}

func NewServer(database db.Database, cfg *confs.Config, logger *slog.Logger) *Server {
	s := &Server{
		db:      database,
		cfg:     cfg,
		logger:  logger,
		manager: ws.NewManager(logger),
	}
	s.app = s.Router()
	return s
}

// Router builds the gin engine with every middleware and route mounted.
func (s *Server) Router() *gin.Engine {
	app := gin.New()
	app.Use(gin.Recovery())
	app.Use(handlers.RequestLogger(s.logger))

	// Setup CORS middleware
	config := cors.DefaultConfig()
	if len(s.cfg.CORSOrigins) == 0 || s.cfg.CORSOrigins[0] == "*" {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = s.cfg.CORSOrigins
	}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	app.Use(cors.New(config))

	// Setup healthcheck route
	app.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "OK",
		})
	})

	// Initialize repositories
	userRepo := repositories.NewUserGormRepository(s.db)
	reminderRepo := repositories.NewReminderGormRepository(s.db)

	// Downstream collaborators
	dispatcher := services.NewEmailDispatcher(s.cfg.EmailServiceURL, nil, s.logger)
	hasher := services.NewBcryptHasher(s.cfg.BcryptCost)

	// Initialize use cases
	userUseCase := usecases.NewUserUseCase(userRepo, hasher, s.logger, s.cfg.LegacyPasswordlessAuth)
	reminderUseCase := usecases.NewReminderUseCase(reminderRepo, dispatcher, s.manager, s.logger)

	// Initialize handlers
	reminderHandler := httpHandler.NewReminderHandler(reminderUseCase)
	userHandler := httpHandler.NewUserHandler(userUseCase)
	wsHandler := handlers.NewWSHandler(s.manager)

	app.GET("/", httpHandler.Documentation)
	app.GET("/openapi", httpHandler.OpenAPI)

	users := app.Group("/user")
	{
		users.POST("/create", userHandler.CreateUser)
		users.POST("/validate", userHandler.ValidateUser)
		users.GET("/get", userHandler.GetUser)
	}

	// Reminder routes, scoped to the Basic Auth user
	reminders := app.Group("/", handlers.BasicAuth(userUseCase))
	{
		reminders.POST("/create", reminderHandler.CreateReminder)
		reminders.GET("/reminder", reminderHandler.GetReminder)
		reminders.GET("/reminder_name", reminderHandler.GetReminderByName)
		reminders.GET("/reminders", reminderHandler.GetReminders)
		reminders.PUT("/update", reminderHandler.UpdateReminder)
		reminders.DELETE("/delete", reminderHandler.DeleteReminder)
		reminders.GET("/ws", wsHandler.HandleReminderWS)
	}

	return app
}

func (s *Server) Start() error {
	addr := "0.0.0.0:" + s.cfg.Port
	s.logger.Info("server: listening", "addr", addr)
	return s.app.Run(addr)
}
