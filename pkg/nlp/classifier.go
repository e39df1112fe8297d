package nlp

import (
	"regexp"
	"strings"

	"github.com/renty-ai/renty-ai/pkg/errors"
	"github.com/renty-ai/renty-ai/pkg/i18n"
	"github.com/renty-ai/renty-ai/pkg/types"
)

const (
	patternScore = 0.8
	keywordScore = 0.6

	fallbackConfidence = 0.5
)

type intentRule struct {
	kind     types.IntentKind
	patterns []*regexp.Regexp
	keywords []string
}

type entityRule struct {
	key      string
	patterns []*regexp.Regexp
}

// Classifier 基于规则表的意图分类器，规则表只在构造时装载，之后只读
// 零值不可用，必须通过 NewClassifier 创建
type Classifier struct {
	rules        []intentRule
	universities []entityRule
	locations    []entityRule
	initialized  bool
}

func NewClassifier() *Classifier {
	return &Classifier{
		rules:        intentRules(),
		universities: universityRules(),
		locations:    locationRules(),
		initialized:  true,
	}
}

// Classify 对消息打分并返回最优意图
// 每条命中的正则 +0.8，每个命中的关键词 +0.6，全部落空时回退 general_query
// 平分时取规则表中先声明的意图，规则声明顺序是行为的一部分
func (c *Classifier) Classify(text, language string) (types.Intent, error) {
	if !c.initialized {
		return types.Intent{}, errors.New("nlp.Classifier.Classify", i18n.ERROR_UNINITIALIZED, nil)
	}

	textLower := strings.ToLower(text)

	var (
		best      types.IntentKind
		bestScore float64
	)
	for _, rule := range c.rules {
		score := 0.0
		for _, pattern := range rule.patterns {
			if pattern.MatchString(textLower) {
				score += patternScore
			}
		}
		for _, keyword := range rule.keywords {
			if strings.Contains(textLower, strings.ToLower(keyword)) {
				score += keywordScore
			}
		}
		if score > bestScore {
			best = rule.kind
			bestScore = score
		}
	}

	if bestScore == 0 {
		return types.Intent{
			Kind:       types.INTENT_GENERAL_QUERY,
			Confidence: fallbackConfidence,
			Entities:   map[string]string{},
		}, nil
	}

	confidence := bestScore / 2.0
	if confidence > 1.0 {
		confidence = 1.0
	}

	return types.Intent{
		Kind:       best,
		Confidence: confidence,
		Entities:   c.extractEntities(textLower),
	}, nil
}

// extractEntities 独立于意图扫描实体，每个类别只取首个命中
func (c *Classifier) extractEntities(textLower string) map[string]string {
	entities := make(map[string]string)

	for _, rule := range c.universities {
		if matchAny(rule.patterns, textLower) {
			entities[types.ENTITY_UNIVERSITY_KEY] = rule.key
			break
		}
	}

	for _, rule := range c.locations {
		if matchAny(rule.patterns, textLower) {
			entities[types.ENTITY_LOCATION_KEY] = rule.key
			break
		}
	}

	return entities
}

func matchAny(patterns []*regexp.Regexp, text string) bool {
	for _, pattern := range patterns {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}

func compileAll(exprs ...string) []*regexp.Regexp {
	result := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		result = append(result, regexp.MustCompile(expr))
	}
	return result
}

func intentRules() []intentRule {
	return []intentRule{
		{
			kind: types.INTENT_GREETING,
			patterns: compileAll(
				`(hello|hi|hey|good morning|good afternoon|good evening)`,
				`(你好|您好|早上好|下午好|晚上好|嗨)`,
				`^(hi|hello)$`,
				`(start|begin|help me)`,
			),
			keywords: []string{"hello", "hi", "hey", "你好", "您好", "嗨", "start", "help"},
		},
		{
			kind: types.INTENT_RENTAL_QUESTION,
			patterns: compileAll(
				`(rent|rental|lease|apartment|housing)`,
				`(documents|paperwork|application|apply)`,
				`(deposit|security|first month)`,
				`(landlord|broker|agent)`,
				`(租房|租赁|公寓|房子|住房)`,
				`(文件|申请|押金|房东|中介)`,
				`(what.*need|how.*rent|where.*find)`,
				`(需要什么|怎么租|在哪找|如何申请)`,
			),
			keywords: []string{
				"rent", "rental", "lease", "apartment", "documents", "application",
				"deposit", "landlord", "租房", "租赁", "公寓", "申请", "押金", "房东",
			},
		},
		{
			kind: types.INTENT_UNIVERSITY_INFO,
			patterns: compileAll(
				`(nyu|new york university)`,
				`(columbia university|columbia)`,
				`(fit|fashion institute)`,
				`(new school|newschool)`,
				`(sva|visual arts)`,
				`(fordham)`,
				`(stevens institute|stevens)`,
				`(纽约大学|哥伦比亚|时装技术|新学院|视觉艺术|福德汉姆|史蒂文斯)`,
				`(university|college|campus|school)`,
				`(大学|学校|校园|学院)`,
				`(near.*university|close to campus|commute to)`,
			),
			keywords: []string{
				"NYU", "Columbia", "FIT", "university", "campus", "school",
				"纽约大学", "哥伦比亚", "大学", "学校", "校园",
			},
		},
		{
			kind: types.INTENT_LOCATION_QUERY,
			patterns: compileAll(
				`(manhattan|jersey city)`,
				`(neighborhood|area|location|district)`,
				`(greenwich village|east village|soho|chelsea)`,
				`(upper east|upper west|lower east|midtown)`,
				`(曼哈顿|泽西市|社区|地区|位置|区域)`,
				`(格林威治|东村|苏荷|切尔西)`,
				`(where.*live|which area|best neighborhood)`,
				`(住在哪|哪个地区|最好的社区|附近)`,
			),
			keywords: []string{
				"Manhattan", "Jersey City", "neighborhood", "area", "location",
				"曼哈顿", "泽西市", "社区", "地区", "位置",
			},
		},
	}
}

func universityRules() []entityRule {
	return []entityRule{
		{key: "nyu", patterns: compileAll(`nyu`, `new york university`, `纽约大学`)},
		{key: "columbia", patterns: compileAll(`columbia`, `哥伦比亚`)},
		{key: "fit", patterns: compileAll(`fit`, `fashion institute`, `时装技术`)},
		{key: "newschool", patterns: compileAll(`new school`, `新学院`)},
		{key: "sva", patterns: compileAll(`sva`, `visual arts`, `视觉艺术`)},
		{key: "fordham", patterns: compileAll(`fordham`, `福德汉姆`)},
		{key: "stevens", patterns: compileAll(`stevens`, `史蒂文斯`)},
	}
}

func locationRules() []entityRule {
	return []entityRule{
		{key: "manhattan", patterns: compileAll(`manhattan`, `曼哈顿`)},
		{key: "jersey_city", patterns: compileAll(`jersey city`, `泽西市`)},
		{key: "greenwich_village", patterns: compileAll(`greenwich village`, `格林威治村`)},
		{key: "east_village", patterns: compileAll(`east village`, `东村`)},
	}
}
