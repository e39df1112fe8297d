package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renty-ai/renty-ai/pkg/types"
)

func TestClassifyGreeting(t *testing.T) {
	c := NewClassifier()

	intent, err := c.Classify("Hello", types.LANGUAGE_EN_KEY)
	assert.NoError(t, err)
	assert.Equal(t, types.INTENT_GREETING, intent.Kind)
	// 两条正则加一个关键词命中，置信度在 2.0 处饱和
	assert.Equal(t, 1.0, intent.Confidence)
}

func TestClassifyRentalQuestion(t *testing.T) {
	c := NewClassifier()

	intent, err := c.Classify("What documents do I need to rent an apartment?", types.LANGUAGE_EN_KEY)
	assert.NoError(t, err)
	assert.Equal(t, types.INTENT_RENTAL_QUESTION, intent.Kind)
	assert.Equal(t, 1.0, intent.Confidence)
}

func TestClassifyRentalQuestionChinese(t *testing.T) {
	c := NewClassifier()

	intent, err := c.Classify("租房需要什么文件？", types.LANGUAGE_ZH_KEY)
	assert.NoError(t, err)
	assert.Equal(t, types.INTENT_RENTAL_QUESTION, intent.Kind)
}

func TestClassifyFallback(t *testing.T) {
	c := NewClassifier()

	intent, err := c.Classify("qqqq zzzz xxxx", types.LANGUAGE_EN_KEY)
	assert.NoError(t, err)
	assert.Equal(t, types.INTENT_GENERAL_QUERY, intent.Kind)
	assert.Equal(t, 0.5, intent.Confidence)
	assert.Empty(t, intent.Entities)
}

func TestClassifyEmptyText(t *testing.T) {
	c := NewClassifier()

	intent, err := c.Classify("", types.LANGUAGE_EN_KEY)
	assert.NoError(t, err)
	assert.Equal(t, types.INTENT_GENERAL_QUERY, intent.Kind)
}

func TestClassifyScoreMonotonic(t *testing.T) {
	c := NewClassifier()

	// "deposit landlord lease" 命中多条租房正则和关键词，
	// 而 "school" 只给大学意图贡献一条正则加一个关键词
	intent, err := c.Classify("deposit landlord lease school", types.LANGUAGE_EN_KEY)
	assert.NoError(t, err)
	assert.Equal(t, types.INTENT_RENTAL_QUESTION, intent.Kind)
}

func TestClassifyUninitialized(t *testing.T) {
	var c Classifier

	_, err := c.Classify("hello", types.LANGUAGE_EN_KEY)
	assert.Error(t, err)
}

func TestExtractUniversityEntity(t *testing.T) {
	c := NewClassifier()

	intent, err := c.Classify("How do I find apartments near NYU?", types.LANGUAGE_EN_KEY)
	assert.NoError(t, err)
	assert.Equal(t, "nyu", intent.Entities[types.ENTITY_UNIVERSITY_KEY])
}

func TestExtractLocationEntity(t *testing.T) {
	c := NewClassifier()

	intent, err := c.Classify("Is Manhattan a good area to live?", types.LANGUAGE_EN_KEY)
	assert.NoError(t, err)
	assert.Equal(t, "manhattan", intent.Entities[types.ENTITY_LOCATION_KEY])
}

func TestExtractEntityFirstMatchWins(t *testing.T) {
	c := NewClassifier()

	// nyu 和 columbia 同时出现时只保留声明顺序在前的那个
	intent, err := c.Classify("Should I live near NYU or Columbia?", types.LANGUAGE_EN_KEY)
	assert.NoError(t, err)
	assert.Equal(t, "nyu", intent.Entities[types.ENTITY_UNIVERSITY_KEY])
}

func TestExtractChineseEntity(t *testing.T) {
	c := NewClassifier()

	intent, err := c.Classify("纽约大学附近怎么租房", types.LANGUAGE_ZH_KEY)
	assert.NoError(t, err)
	assert.Equal(t, "nyu", intent.Entities[types.ENTITY_UNIVERSITY_KEY])
}
