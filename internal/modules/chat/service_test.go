package chat

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	mu    sync.Mutex
	names []string
}

func (l *recordingLogger) Log(_ context.Context, name string, _ map[string]any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.names = append(l.names, name)
}

func (l *recordingLogger) seen(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, n := range l.names {
		if n == name {
			return true
		}
	}
	return false
}

func newTestService() (*Service, *recordingLogger) {
	logger := &recordingLogger{}
	return NewService(time.Millisecond, time.Millisecond, nil, logger), logger
}

func transcriptLen(t *testing.T, s *Service, id string) int {
	t.Helper()
	msgs, _, err := s.Transcript(id)
	require.NoError(t, err)
	return len(msgs)
}

func TestStartSession_SeedsWelcome(t *testing.T) {
	s, logger := newTestService()
	sess := s.StartSession(context.Background())
	defer s.CloseSession(sess.ID)

	msgs, typing, err := s.Transcript(sess.ID)
	require.NoError(t, err)
	assert.False(t, typing)
	require.Len(t, msgs, 3)
	assert.True(t, logger.seen("chat_session_started"))
}

func TestSelectOption_ScriptedReply(t *testing.T) {
	s, logger := newTestService()
	sess := s.StartSession(context.Background())
	defer s.CloseSession(sess.ID)

	userMsg, err := s.SelectOption(context.Background(), sess.ID, "career", "💼 Career")
	require.NoError(t, err)
	assert.Equal(t, RoleUser, userMsg.Role)
	assert.Equal(t, "💼 Career", userMsg.Text)

	require.Eventually(t, func() bool {
		return transcriptLen(t, s, sess.ID) == 5
	}, time.Second, 5*time.Millisecond)

	msgs, typing, err := s.Transcript(sess.ID)
	require.NoError(t, err)
	assert.False(t, typing)

	bot := msgs[4]
	assert.Equal(t, RoleBot, bot.Role)
	assert.Equal(t, catalog["career"].Reply, bot.Text)
	assert.Empty(t, bot.Options)
	assert.True(t, logger.seen("chat_option_selected"))
}

func TestSelectOption_UnknownIDGetsFallback(t *testing.T) {
	s, _ := newTestService()
	sess := s.StartSession(context.Background())
	defer s.CloseSession(sess.ID)

	_, err := s.SelectOption(context.Background(), sess.ID, "gallery", "📸 Gallery")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return transcriptLen(t, s, sess.ID) == 5
	}, time.Second, 5*time.Millisecond)

	msgs, _, _ := s.Transcript(sess.ID)
	assert.Equal(t, fallbackReply, msgs[4].Text)
}

func TestSelectOption_RepliesStayOrdered(t *testing.T) {
	s, _ := newTestService()
	sess := s.StartSession(context.Background())
	defer s.CloseSession(sess.ID)

	_, err := s.SelectOption(context.Background(), sess.ID, "career", "Career")
	require.NoError(t, err)
	_, err = s.SelectOption(context.Background(), sess.ID, "testimonials", "Testimonials")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return transcriptLen(t, s, sess.ID) == 7
	}, time.Second, 5*time.Millisecond)

	msgs, _, _ := s.Transcript(sess.ID)
	assert.Equal(t, catalog["career"].Reply, msgs[4].Text)
	assert.Equal(t, catalog["testimonials"].Reply, msgs[6].Text)
}

func TestSendText_KeywordReply(t *testing.T) {
	s, _ := newTestService()
	sess := s.StartSession(context.Background())
	defer s.CloseSession(sess.ID)

	msg, err := s.SendText(context.Background(), sess.ID, "what is the cost?")
	require.NoError(t, err)
	require.NotNil(t, msg)

	require.Eventually(t, func() bool {
		return transcriptLen(t, s, sess.ID) == 5
	}, time.Second, 5*time.Millisecond)

	msgs, _, _ := s.Transcript(sess.ID)
	assert.Equal(t, keywordRules[0].reply, msgs[4].Text)
}

func TestSendText_BlankIsNoOp(t *testing.T) {
	s, _ := newTestService()
	sess := s.StartSession(context.Background())
	defer s.CloseSession(sess.ID)

	msg, err := s.SendText(context.Background(), sess.ID, "   \n\t ")
	require.NoError(t, err)
	assert.Nil(t, msg)

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 3, transcriptLen(t, s, sess.ID))
}

func TestCloseSession_CancelsPendingReply(t *testing.T) {
	logger := &recordingLogger{}
	s := NewService(time.Hour, time.Hour, nil, logger)
	sess := s.StartSession(context.Background())

	_, err := s.SelectOption(context.Background(), sess.ID, "career", "Career")
	require.NoError(t, err)

	require.NoError(t, s.CloseSession(sess.ID))

	_, _, err = s.Transcript(sess.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, s.CloseSession(sess.ID), ErrSessionNotFound)
}

func TestSessionNotFound(t *testing.T) {
	s, _ := newTestService()

	_, _, err := s.Transcript("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = s.SelectOption(context.Background(), "missing", "career", "Career")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = s.SendText(context.Background(), "missing", "hello")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
