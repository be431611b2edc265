package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Ai       AIConfig
	Rag      RagConfig
	Intent   IntentConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	UploadDir          string
	DefaultTenant      string
	DefaultChannel     string
	DefaultLocale      string
}

type DatabaseConfig struct {
	Connection string
}

type AIConfig struct {
	LLMProvider   string // "openai" or "ollama"
	LLMModel      string // e.g. "gpt-4o-mini", "llama3"
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OllamaBaseURL string

	EmbeddingProvider  string // "openai" or "ollama"
	EmbeddingModel     string // e.g. "text-embedding-3-small", "nomic-embed-text"
	EmbeddingDimension int
}

type RagConfig struct {
	VectorDir    string
	ChunkSize    int
	ChunkOverlap int
	TopK         int
}

type IntentConfig struct {
	PromptsDir   string
	PolicyFile   string
	OODThreshold float64
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			UploadDir:          getEnv("UPLOAD_DIR", "./data/uploads"),
			DefaultTenant:      getEnv("DEFAULT_TENANT", "bank-asia"),
			DefaultChannel:     getEnv("DEFAULT_CHANNEL", "web"),
			DefaultLocale:      getEnv("DEFAULT_LOCALE", "en-IN"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Ai: AIConfig{
			LLMProvider:        getEnv("LLM_PROVIDER", "openai"),
			LLMModel:           getEnv("LLM_MODEL", "gpt-4o-mini"),
			OpenAIAPIKey:       getEnv("OPENAI_API_KEY", ""),
			OpenAIBaseURL:      getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			OllamaBaseURL:      getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			EmbeddingProvider:  getEnv("EMBEDDING_PROVIDER", "openai"),
			EmbeddingModel:     getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),
			EmbeddingDimension: getEnvAsInt("EMBEDDING_DIMENSION", 1536),
		},
		Rag: RagConfig{
			VectorDir:    getEnv("VECTOR_DIR", "./data/indexes"),
			ChunkSize:    getEnvAsInt("CHUNK_SIZE", 800),
			ChunkOverlap: getEnvAsInt("CHUNK_OVERLAP", 120),
			TopK:         getEnvAsInt("RETRIEVAL_TOP_K", 6),
		},
		Intent: IntentConfig{
			PromptsDir:   getEnv("PROMPTS_DIR", "prompts"),
			PolicyFile:   getEnv("POLICY_FILE", "policies/router.yaml"),
			OODThreshold: getEnvAsFloat("OOD_THRESHOLD", 0.6),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
