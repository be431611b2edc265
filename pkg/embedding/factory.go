package embedding

import "fmt"

func NewEmbeddingProvider(providerType, model, baseURL, apiKey string, dimension int) (EmbeddingProvider, error) {
	switch providerType {
	case "openai":
		if apiKey == "" {
			return nil, fmt.Errorf("openai embedding provider requires an API key")
		}
		return NewOpenAIProvider(baseURL, apiKey, model, dimension), nil
	case "ollama":
		return NewOllamaProvider(baseURL, model, dimension), nil
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", providerType)
	}
}
