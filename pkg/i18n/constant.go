package i18n

var ALLOW_LANG = map[string]bool{
	"en":    true,
	"zh-CN": true,
}

const DEFAULT_LANG = "en"

const (
	ERROR_INTERNAL        = "error.internal"
	ERROR_NOT_FOUND       = "error.notfound"
	ERROR_INVALIDARGUMENT = "error.invalidargument"
	ERROR_NOT_READY       = "error.notready"
	ERROR_UNINITIALIZED   = "error.uninitialized"

	CHAT_GREETING       = "chat.greeting"
	CHAT_CLARIFY        = "chat.clarify"
	CHAT_NO_RESULTS     = "chat.noresults"
	CHAT_PROCESS_FAILED = "chat.process.failed"

	SUGGESTION_GREETING_FIND      = "suggestion.greeting.find"
	SUGGESTION_GREETING_DOCUMENTS = "suggestion.greeting.documents"
	SUGGESTION_GREETING_AREA      = "suggestion.greeting.area"
	SUGGESTION_GREETING_UTILITIES = "suggestion.greeting.utilities"

	SUGGESTION_GENERAL_BASICS = "suggestion.general.basics"
	SUGGESTION_GENERAL_TIPS   = "suggestion.general.tips"
	SUGGESTION_GENERAL_SCAMS  = "suggestion.general.scams"
	SUGGESTION_GENERAL_MOVING = "suggestion.general.moving"
)

// GreetingSuggestionKeys 问候场景的追问建议，顺序即展示顺序
var GreetingSuggestionKeys = []string{
	SUGGESTION_GREETING_FIND,
	SUGGESTION_GREETING_DOCUMENTS,
	SUGGESTION_GREETING_AREA,
	SUGGESTION_GREETING_UTILITIES,
}

// GeneralSuggestionKeys 通用场景的追问建议
var GeneralSuggestionKeys = []string{
	SUGGESTION_GENERAL_BASICS,
	SUGGESTION_GENERAL_TIPS,
	SUGGESTION_GENERAL_SCAMS,
	SUGGESTION_GENERAL_MOVING,
}
