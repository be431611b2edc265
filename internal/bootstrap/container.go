package bootstrap

import (
	"log"
	"os"

	"ai-bankassist-be/internal/config"
	"ai-bankassist-be/internal/controller"
	"ai-bankassist-be/internal/pkg/logger"
	"ai-bankassist-be/internal/repository/unitofwork"
	"ai-bankassist-be/internal/service"
	"ai-bankassist-be/pkg/ai/intent"
	"ai-bankassist-be/pkg/ai/pipeline"
	"ai-bankassist-be/pkg/embedding"
	"ai-bankassist-be/pkg/llm/factory"
	"ai-bankassist-be/pkg/policy"
	"ai-bankassist-be/pkg/prompt"
	"ai-bankassist-be/pkg/rag/retrieval"
	"ai-bankassist-be/pkg/vector"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

const auditTopic = "audit.events"

type Container struct {
	// Controllers
	IntentController  controller.IIntentController
	ChannelController controller.IChannelController
	IngestController  controller.IIngestController

	// Background Services (Exposed for main.go to run)
	AuditConsumerService service.IAuditConsumerService

	// System logger shared with the server for lifecycle events
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	appLogger := log.New(os.Stdout, "", log.LstdFlags)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI providers
	embeddingProvider, err := embedding.NewEmbeddingProvider(
		cfg.Ai.EmbeddingProvider,
		cfg.Ai.EmbeddingModel,
		embeddingBaseURL(cfg),
		cfg.Ai.OpenAIAPIKey,
		cfg.Ai.EmbeddingDimension,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize Embedding Provider: %v", err)
	}
	log.Printf("[INFO] Using Embedding Provider: %s (%s)", cfg.Ai.EmbeddingProvider, cfg.Ai.EmbeddingModel)

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		llmBaseURL(cfg),
		cfg.Ai.OpenAIAPIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Retrieval stack
	registry := vector.NewRegistry(cfg.Rag.VectorDir, cfg.Ai.EmbeddingDimension)
	promptStore := prompt.NewStore(cfg.Intent.PromptsDir)

	routingPolicy, err := policy.Load(cfg.Intent.PolicyFile)
	if err != nil {
		log.Fatalf("[FATAL] Failed to load routing policy: %v", err)
	}

	classifier := intent.NewClassifier(llmProvider, promptStore, cfg.Intent.OODThreshold, appLogger)
	retriever := retrieval.NewRetriever(embeddingProvider, registry, appLogger)
	validator := retrieval.NewValidator(retriever, llmProvider, promptStore, appLogger)
	channelWriter := service.NewChannelWriterService(uowFactory)

	intentPipeline := pipeline.NewPipeline(
		classifier,
		retriever,
		validator,
		channelWriter,
		routingPolicy,
		cfg.Rag.TopK,
		appLogger,
	)

	// 5. Services
	publisherService := service.NewPublisherService(pubSub, auditTopic)
	auditConsumerService := service.NewAuditConsumerService(pubSub, auditTopic, uowFactory)

	intentService := service.NewIntentService(
		classifier,
		intentPipeline,
		publisherService,
		cfg.App.DefaultChannel,
		cfg.App.DefaultLocale,
		appLogger,
	)
	channelService := service.NewChannelService(uowFactory)
	ingestionService := service.NewIngestionService(
		uowFactory,
		embeddingProvider,
		registry,
		cfg.Rag.ChunkSize,
		cfg.Rag.ChunkOverlap,
		sysLogger,
	)

	sysLogger.Info("bootstrap", "container initialized", map[string]interface{}{
		"tenant_default": cfg.App.DefaultTenant,
		"llm_provider":   cfg.Ai.LLMProvider,
		"vector_dir":     cfg.Rag.VectorDir,
	})

	// 6. Controllers
	return &Container{
		IntentController:     controller.NewIntentController(intentService),
		ChannelController:    controller.NewChannelController(channelService),
		IngestController:     controller.NewIngestController(ingestionService, cfg.App.UploadDir),
		AuditConsumerService: auditConsumerService,
		Logger:               sysLogger,
	}
}

func llmBaseURL(cfg *config.Config) string {
	if cfg.Ai.LLMProvider == "ollama" {
		return cfg.Ai.OllamaBaseURL
	}
	return cfg.Ai.OpenAIBaseURL
}

func embeddingBaseURL(cfg *config.Config) string {
	if cfg.Ai.EmbeddingProvider == "ollama" {
		return cfg.Ai.OllamaBaseURL
	}
	return cfg.Ai.OpenAIBaseURL
}
