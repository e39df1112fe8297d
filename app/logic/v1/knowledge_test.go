package v1

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renty-ai/renty-ai/pkg/types"
)

func TestListTopics(t *testing.T) {
	logic := NewKnowledgeLogic(context.Background(), newTestCore())

	topics := logic.ListTopics()
	assert.NotEmpty(t, topics)
	assert.Equal(t, "Rental Process", topics[0].Name)
	assert.Equal(t, "租赁流程", topics[0].NameZH)

	total := 0
	for _, topic := range topics {
		assert.Greater(t, topic.EntryCount, 0)
		total += topic.EntryCount
	}
	assert.Equal(t, newTestCore().FAQStore().TotalEntries(), total)
}

func TestSystemStats(t *testing.T) {
	c := newTestCore()
	chatLogic := NewChatLogic(context.Background(), c)
	knowledgeLogic := NewKnowledgeLogic(context.Background(), c)

	before := knowledgeLogic.SystemStats()
	chatLogic.ProcessMessage(types.ChatMessage{
		Message:  "Hello",
		Language: types.LANGUAGE_EN_KEY,
	})
	after := knowledgeLogic.SystemStats()

	assert.Equal(t, before.TotalQueries+1, after.TotalQueries)
	assert.Equal(t, c.FAQStore().TotalEntries(), after.KnowledgeBaseSize)
	assert.Greater(t, after.ActiveSessions, 0)
	assert.NotEmpty(t, after.TopTopics)
}

func TestRecordFeedback(t *testing.T) {
	logic := NewKnowledgeLogic(context.Background(), newTestCore())

	assert.NoError(t, logic.RecordFeedback(types.UserFeedback{
		SessionID:    "feedback-test",
		Rating:       5,
		FeedbackType: "helpful",
	}))

	err := logic.RecordFeedback(types.UserFeedback{
		SessionID: "feedback-test",
		Rating:    0,
	})
	assert.Error(t, err)
}
