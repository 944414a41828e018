package itinerary_fx

import (
	"log"

	"go.uber.org/fx"

	"wayfare/internal/services"
	"wayfare/pkg/config"
	"wayfare/pkg/utils"
)

var Module = fx.Provide(
	provideGenerationClient,
	provideItineraryService,
	provideChatService)

func provideGenerationClient(cfg *config.Config) (utils.GenerationClientInterface, error) {
	log.Printf("Initializing %s generation client with model: %s", cfg.GenerationProvider, cfg.GenerationModel)
	return utils.NewGenerationClient(
		cfg.GenerationProvider,
		cfg.GenerationAPIKey,
		cfg.GenerationModel,
		cfg.GenerationBaseURL,
		cfg.GenerationTimeout,
	)
}

func provideItineraryService(generator utils.GenerationClientInterface) services.ItineraryServiceInterface {
	return services.NewItineraryService(generator)
}

func provideChatService(generator utils.GenerationClientInterface) services.ChatServiceInterface {
	return services.NewChatService(generator)
}
