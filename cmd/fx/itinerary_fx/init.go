package itinerary_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"voyagemind/internal/api/controllers"
	"voyagemind/internal/services"
	"voyagemind/pkg/utils"
)

var Module = fx.Provide(
	ProvideGenerationClient,
	ProvideItineraryService,
	ProvideItineraryController,
)

// GenerationConfig holds configuration for generation clients.
type GenerationConfig struct {
	Provider string
	APIKey   string
	Model    string
	DemoMode bool
}

func ProvideGenerationClient() (utils.GenerationClientInterface, error) {
	config := getGenerationConfig()

	if config.DemoMode {
		// The service short-circuits before calling the client in demo
		// mode; a keyless Groq client satisfies the dependency graph.
		log.Printf("DEMO_MODE enabled: external generation calls are bypassed")
		return utils.NewGroqGenerationClient("", config.Model, os.Getenv("GROQ_BASE_URL")), nil
	}

	log.Printf("Initializing %s generation client with model: %s", config.Provider, config.Model)

	switch strings.ToLower(config.Provider) {
	case "groq":
		return utils.NewGroqGenerationClient(config.APIKey, config.Model, os.Getenv("GROQ_BASE_URL")), nil
	case "gemini":
		client, err := utils.NewGeminiGenerationClient(config.APIKey, config.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported generation provider: %s. Use 'groq' or 'gemini'", config.Provider)
	}
}

func ProvideItineraryService(
	weatherService services.WeatherServiceInterface,
	client utils.GenerationClientInterface,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(
		weatherService,
		client,
		utils.DefaultRetryPolicy(),
		os.Getenv("DEMO_MODE") == "true",
	)
}

func ProvideItineraryController(
	itineraryService services.ItineraryServiceInterface,
) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService)
}

func getGenerationConfig() GenerationConfig {
	demoMode := os.Getenv("DEMO_MODE") == "true"
	provider := getEnvWithDefault("AI_PROVIDER", "groq")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "groq":
		apiKey = os.Getenv("GROQ_API_KEY")
		model = getEnvWithDefault("GROQ_MODEL", "llama-3.3-70b-versatile")
		if apiKey == "" && !demoMode {
			log.Fatal("GROQ_API_KEY is required when using Groq provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-2.0-flash")
		if apiKey == "" && !demoMode {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return GenerationConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
		DemoMode: demoMode,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
