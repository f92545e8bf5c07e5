package bootstrap

import (
	"log"

	"nota-be/internal/config"
	"nota-be/internal/controller"
	"nota-be/internal/pkg/logger"
	"nota-be/internal/registry"
	"nota-be/internal/repository/memory"
	"nota-be/internal/repository/unitofwork"
	"nota-be/internal/service"
	pktNats "nota-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	DocumentController      controller.IDocumentController
	BlockController         controller.IBlockController
	VersionController       controller.IVersionController
	FavoriteBlockController controller.IFavoriteBlockController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	blockRegistry := registry.NewBlockTableRegistry()
	uowFactory := unitofwork.NewRepositoryFactory(db, blockRegistry)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	treeCache := memory.NewTreeCache()

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS is optional infrastructure; a miss degrades to local-only events.
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Sync.AutosaveTopic, pubSub)

	syncService := service.NewSyncService(
		uowFactory,
		blockRegistry,
		treeCache,
		publisherService,
		sysLogger,
	)
	versionService := service.NewVersionService(uowFactory, syncService)
	documentService := service.NewDocumentService(uowFactory, treeCache, natsPub, sysLogger)
	blockService := service.NewBlockService(uowFactory, treeCache, syncService)
	favoriteBlockService := service.NewFavoriteBlockService(uowFactory)

	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Sync.AutosaveTopic,
		versionService,
		sysLogger,
	)

	// 4. Controllers
	return &Container{
		DocumentController:      controller.NewDocumentController(documentService, syncService),
		BlockController:         controller.NewBlockController(blockService),
		VersionController:       controller.NewVersionController(versionService),
		FavoriteBlockController: controller.NewFavoriteBlockController(favoriteBlockService),

		ConsumerService: consumerService,
	}
}
