package types

// IntentKind 闭合的意图枚举，新增意图需要同时扩展 String 与各处的 switch
type IntentKind int8

const (
	INTENT_GREETING IntentKind = iota + 1
	INTENT_RENTAL_QUESTION
	INTENT_UNIVERSITY_INFO
	INTENT_LOCATION_QUERY
	INTENT_GENERAL_QUERY
)

func (k IntentKind) String() string {
	switch k {
	case INTENT_GREETING:
		return "greeting"
	case INTENT_RENTAL_QUESTION:
		return "rental_question"
	case INTENT_UNIVERSITY_INFO:
		return "university_info"
	case INTENT_LOCATION_QUERY:
		return "location_query"
	default:
		return "general_query"
	}
}

const (
	ENTITY_UNIVERSITY_KEY = "university"
	ENTITY_LOCATION_KEY   = "location"
)

// Intent 每条消息重新计算，不做持久化
type Intent struct {
	Kind       IntentKind        `json:"kind"`
	Confidence float64           `json:"confidence"`
	Entities   map[string]string `json:"entities"`
}
