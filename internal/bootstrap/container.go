package bootstrap

import (
	"marginalia/internal/config"
	"marginalia/internal/mapper"
	"marginalia/internal/pkg/logger"
	"marginalia/internal/repository/api"
	"marginalia/internal/repository/memory"
	"marginalia/internal/service"
)

type Container struct {
	Logger logger.ILogger

	ConversationService service.IConversationService
	LibraryService      service.ILibraryService
	ClipService         service.IClipService
	SearchService       service.ISearchService
	ImportService       service.IImportService
}

func NewContainer(cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Transport + normalizers
	client := api.NewClient(cfg.Backend, sysLogger)
	clipMapper := mapper.NewClipMapper()
	conversationMapper := mapper.NewConversationMapper(clipMapper)
	libraryMapper := mapper.NewLibraryMapper()

	// Resource repositories
	conversationRepo := api.NewConversationRepository(client, conversationMapper)
	documentRepo := api.NewDocumentRepository(client, clipMapper)
	clipRepo := api.NewClipRepository(client, clipMapper)
	libraryRepo := api.NewLibraryRepository(client, libraryMapper)
	searchRepo := api.NewSearchRepository(client)
	importRepo := api.NewImportRepository(client)

	// Shared view state
	handoff := memory.NewHandoffRepository()
	viewCache := memory.NewViewCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval)

	return &Container{
		Logger:              sysLogger,
		ConversationService: service.NewConversationService(conversationRepo, handoff, viewCache, sysLogger),
		LibraryService:      service.NewLibraryService(libraryRepo, documentRepo, viewCache, sysLogger),
		ClipService:         service.NewClipService(clipRepo, viewCache, sysLogger),
		SearchService:       service.NewSearchService(searchRepo, sysLogger),
		ImportService:       service.NewImportService(importRepo, viewCache, sysLogger),
	}
}
