// cmd/fx/generation_fx/init.go
package generation_fx

import (
	"context"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"go.uber.org/fx"
	"wanderly/internal/services"
	mem "wanderly/pkg/memcache"
	"wanderly/pkg/utils"
)

var Module = fx.Provide(
	ProvideTextGenerator,
	ProvideGenerationService)

// ProvideTextGenerator creates a text generation client based on environment
// variables. Clients holding connections are closed when the app stops.
func ProvideTextGenerator(lc fx.Lifecycle) (utils.TextGenerator, error) {
	config := getGenerationConfig()

	log.Printf("Initializing %s text generator with model: %s", config.Provider, config.Model)

	generator, err := utils.NewTextGenerator(config)
	if err != nil {
		return nil, err
	}
	if closer, ok := generator.(io.Closer); ok {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				log.Printf("Closing %s client", generator.Provider())
				return closer.Close()
			},
		})
	}
	return generator, nil
}

func ProvideGenerationService(generator utils.TextGenerator, cache mem.GenerationCache) services.GenerationServiceInterface {
	ttl := time.Duration(utils.GetEnvInt("GENERATION_CACHE_TTL_MINUTES", 60)) * time.Minute
	return services.NewGenerationService(generator, cache, ttl)
}

// getGenerationConfig reads configuration from environment variables
func getGenerationConfig() utils.GenerationConfig {
	provider := strings.ToLower(utils.GetEnvWithDefault("GENERATION_PROVIDER", "huggingface"))
	timeout := time.Duration(utils.GetEnvInt("GENERATION_TIMEOUT_SECONDS", 60)) * time.Second

	config := utils.GenerationConfig{
		Provider: provider,
		Timeout:  timeout,
	}

	switch provider {
	case "openai":
		config.APIKey = os.Getenv("OPENAI_API_KEY")
		config.Model = utils.GetEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		config.Endpoint = os.Getenv("OPENAI_BASE_URL")
		config.MaxLength = utils.GetEnvInt("OPENAI_MAX_TOKENS", 1500)
		if config.APIKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		config.APIKey = os.Getenv("GEMINI_API_KEY")
		config.Model = utils.GetEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		config.MaxLength = utils.GetEnvInt("GEMINI_MAX_TOKENS", 2048)
		config.Endpoint = os.Getenv("GEMINI_BASE_URL")
		if config.APIKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	default:
		config.APIKey = os.Getenv("HF_TOKEN")
		config.Endpoint = utils.GetEnvWithDefault("HF_MODEL_URL", utils.DefaultHuggingFaceModelURL)
		config.Model = config.Endpoint
		config.MaxLength = utils.GetEnvInt("HF_MAX_LENGTH", utils.DefaultHuggingFaceMaxLen)
		if config.APIKey == "" {
			log.Println("HF_TOKEN is not set, Hugging Face requests will be anonymous")
		}
	}

	return config
}
