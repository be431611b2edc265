package retrieval

import (
	"context"
	"fmt"
	"log"
	"strings"

	"ai-bankassist-be/internal/constant"
	"ai-bankassist-be/internal/dto"
	"ai-bankassist-be/pkg/llm"
	"ai-bankassist-be/pkg/prompt"
)

// Answerer produces grounded FAQ answers with numbered KB context.
type Answerer struct {
	retriever   *Retriever
	llmProvider llm.LLMProvider
	prompts     *prompt.Store
	topK        int
	logger      *log.Logger
}

func NewAnswerer(retriever *Retriever, llmProvider llm.LLMProvider, prompts *prompt.Store, topK int, logger *log.Logger) *Answerer {
	return &Answerer{
		retriever:   retriever,
		llmProvider: llmProvider,
		prompts:     prompts,
		topK:        topK,
		logger:      logger,
	}
}

// AnswerQuestion retrieves context for the question and generates an
// answer. With no KB evidence it declines rather than hallucinate.
func (a *Answerer) AnswerQuestion(ctx context.Context, question, tenant string) (string, []dto.CitationDTO, error) {
	chunks, citations, err := a.retriever.Retrieve(ctx, question, tenant, a.topK, nil)
	if err != nil {
		return "", nil, err
	}
	if len(chunks) == 0 {
		return "I could not find anything about that in the knowledge base.", nil, nil
	}

	var contextBuilder strings.Builder
	for i, chunk := range chunks {
		fmt.Fprintf(&contextBuilder, "[%d] %s\n", i+1, chunk.Content)
	}

	p, err := a.prompts.Get(constant.PromptRAGAnswer)
	if err != nil {
		return "", nil, err
	}

	history := []llm.Message{
		{Role: "system", Content: p.System},
		{Role: "user", Content: p.Format(map[string]string{
			"question": question,
			"context":  contextBuilder.String(),
		})},
	}

	reply, err := a.llmProvider.Chat(ctx, history, llm.WithTemperature(0.2))
	if err != nil {
		return "", nil, fmt.Errorf("answer generation failed: %w", err)
	}

	a.logger.Printf("[ANSWER] tenant=%s context=%d", tenant, len(chunks))
	return strings.TrimSpace(reply), citations, nil
}
