package constant

// Intent labels recognized by the policy table. IntentOOD is the reserved
// out-of-domain label the classifier falls back to.
const (
	IntentOpenChannel   = "open_channel"
	IntentModifyChannel = "modify_channel"
	IntentCheckStatus   = "check_status"
	IntentFAQ           = "faq"
	IntentOOD           = "ood"
)

// Prompt template names under the prompts directory.
const (
	PromptRouter     = "router"
	PromptEntities   = "entities"
	PromptValidateKB = "validate_kb"
	PromptRAGAnswer  = "rag_answer"
)

const (
	ChannelIDPrefix = "CH"

	// Fallback confidence reported when the classifier call itself fails.
	FallbackConfidence = 0.3
)

// Audit event types.
const (
	EventIntentDetection   = "intent_detection"
	EventUnderstandAndOpen = "understand_and_open"
	EventSimulate          = "simulate"

	EventStatusSuccess = "success"
	EventStatusError   = "error"

	// Raw utterances are never persisted; only derived fields are.
	RedactedUtterance = "[REDACTED]"
)
