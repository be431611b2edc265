package retrieval

import (
	"context"
	"log"
	"strings"

	"ai-bankassist-be/internal/constant"
	"ai-bankassist-be/internal/dto"
	"ai-bankassist-be/pkg/llm"
	"ai-bankassist-be/pkg/prompt"
)

const validationTopK = 4

// Validator checks extracted entities against the tenant's KB before a
// channel write is allowed.
type Validator struct {
	retriever   *Retriever
	llmProvider llm.LLMProvider
	prompts     *prompt.Store
	logger      *log.Logger
}

func NewValidator(retriever *Retriever, llmProvider llm.LLMProvider, prompts *prompt.Store, logger *log.Logger) *Validator {
	return &Validator{
		retriever:   retriever,
		llmProvider: llmProvider,
		prompts:     prompts,
		logger:      logger,
	}
}

type validationReply struct {
	Valid bool `json:"valid"`
}

// ValidateEntities retrieves KB evidence for the entity set and asks the
// model for a verdict. No KB evidence means no validation is possible and
// the answer is a hard false; an LLM failure fails open, since the evidence
// itself was found.
func (v *Validator) ValidateEntities(ctx context.Context, entities *dto.EntitySchema, tenant string) (bool, []dto.CitationDTO, error) {
	pairs := entities.Pairs()
	if len(pairs) == 0 {
		return false, nil, nil
	}

	fragments := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		fragments = append(fragments, pair.Key+": "+pair.Value)
	}
	query := "Validate availability: " + strings.Join(fragments, ", ")

	chunks, citations, err := v.retriever.Retrieve(ctx, query, tenant, validationTopK, nil)
	if err != nil {
		return false, nil, err
	}
	if len(chunks) == 0 {
		v.logger.Printf("[VALIDATE] tenant=%s no KB evidence", tenant)
		return false, nil, nil
	}

	var contextBuilder strings.Builder
	for i, chunk := range chunks {
		if i > 0 {
			contextBuilder.WriteString("\n")
		}
		contextBuilder.WriteString(chunk.Content)
	}

	p, err := v.prompts.Get(constant.PromptValidateKB)
	if err != nil {
		return true, citations, nil
	}

	history := []llm.Message{
		{Role: "system", Content: p.System},
		{Role: "user", Content: p.Format(map[string]string{
			"entities": strings.Join(fragments, ", "),
			"context":  contextBuilder.String(),
		})},
	}

	reply, err := v.llmProvider.Chat(ctx, history, llm.WithTemperature(0.0))
	if err != nil {
		v.logger.Printf("[VALIDATE] tenant=%s llm failed, passing on evidence: %v", tenant, err)
		return true, citations, nil
	}

	var parsed validationReply
	if err := llm.DecodeJSON(reply, &parsed); err != nil {
		v.logger.Printf("[VALIDATE] tenant=%s bad verdict, passing on evidence: %v", tenant, err)
		return true, citations, nil
	}

	v.logger.Printf("[VALIDATE] tenant=%s valid=%v", tenant, parsed.Valid)
	return parsed.Valid, citations, nil
}
