package bootstrap

import (
	"context"
	"log"

	"study-canvas-be/internal/config"
	"study-canvas-be/internal/controller"
	"study-canvas-be/internal/handler"
	"study-canvas-be/internal/pkg/logger"
	"study-canvas-be/internal/repository/unitofwork"
	"study-canvas-be/internal/service"
	"study-canvas-be/internal/websocket"
	pktNats "study-canvas-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	NoteController       controller.INoteController
	CourseController     controller.ICourseController
	InstructorController controller.IInstructorController
	ConceptController    controller.IConceptController
	ConnectionController controller.IConnectionController
	ExportController     controller.IExportController
	PreferenceController controller.IPreferenceController

	// Background services (main.go starts these)
	ReconcilerService service.IReconcilerService

	FeedHandler  *handler.FeedHandler
	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Infrastructure
	// NATS is optional; the canvas works without the external event feed.
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	wsHub := websocket.NewHub(rdb, sysLogger)
	go wsHub.Run()

	// 4. Services
	linkPublisher := service.NewPublisherService(pubSub, service.ConceptLinkTopic)
	reconcilerService := service.NewReconcilerService(pubSub, uowFactory, sysLogger)

	noteService := service.NewNoteService(uowFactory, natsPub, wsHub, sysLogger)
	courseService := service.NewCourseService(uowFactory, sysLogger)
	instructorService := service.NewInstructorService(uowFactory)
	conceptService := service.NewConceptService(uowFactory, linkPublisher, wsHub, sysLogger)
	connectionService := service.NewConnectionService(uowFactory, natsPub, wsHub, sysLogger)
	exportService := service.NewExportService(uowFactory)
	preferenceService := service.NewPreferenceService(rdb, sysLogger)

	// 5. Controllers
	return &Container{
		NoteController:       controller.NewNoteController(noteService, conceptService),
		CourseController:     controller.NewCourseController(courseService),
		InstructorController: controller.NewInstructorController(instructorService),
		ConceptController:    controller.NewConceptController(conceptService),
		ConnectionController: controller.NewConnectionController(connectionService),
		ExportController:     controller.NewExportController(exportService),
		PreferenceController: controller.NewPreferenceController(preferenceService),

		ReconcilerService: reconcilerService,
		FeedHandler:       handler.NewFeedHandler(wsHub, sysLogger),
		WebSocketHub:      wsHub,
	}
}
