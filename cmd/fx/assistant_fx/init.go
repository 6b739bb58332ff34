package assistant_fx

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"wanderly/internal/infra"
	"wanderly/internal/itinerary"
	"wanderly/internal/repositories"
	"wanderly/internal/services"
	mem "wanderly/pkg/memcache"
	"wanderly/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(provideInterpreter, provideMessageRepo, provideAssistantService, provideJanitor),
	fx.Invoke(startJanitor),
)

func provideInterpreter() *itinerary.Interpreter {
	return itinerary.NewInterpreter(itinerary.WithIDGenerator(uuid.NewString))
}

func provideMessageRepo(db *gorm.DB) repositories.AssistantMessageRepository {
	return repositories.NewAssistantMessageRepository(db)
}

func provideAssistantService(
	interpreter *itinerary.Interpreter,
	itineraryRepo repositories.ItineraryRepository,
	messageRepo repositories.AssistantMessageRepository,
	locks *mem.KeyedLocker,
) services.AssistantServiceInterface {
	return services.NewAssistantService(interpreter, itineraryRepo, messageRepo, locks)
}

func provideJanitor(assistant services.AssistantServiceInterface, cache mem.GenerationCache) (*infra.Janitor, error) {
	schedule := utils.GetEnvWithDefault("TRANSCRIPT_JANITOR_SCHEDULE", "@daily")
	retention := time.Duration(utils.GetEnvInt("TRANSCRIPT_RETENTION_DAYS", 90)) * 24 * time.Hour
	return infra.NewJanitor(schedule, retention, assistant.PurgeTranscripts, cache)
}

func startJanitor(lc fx.Lifecycle, janitor *infra.Janitor) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			janitor.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			janitor.Stop(ctx)
			return nil
		},
	})
}
