package chat

import (
	"testing"
	"time"

	"github.com/nudah/clinic-portal/internal/store"
	"github.com/nudah/clinic-portal/pkg/clock"
	"github.com/nudah/clinic-portal/pkg/logger"
	"github.com/nudah/clinic-portal/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testReply = "Thank you for your message."

func setupTestEngine(t *testing.T) (*Engine, *store.Store, *clock.FakeScheduler) {
	t.Helper()
	log := logger.New("error")
	st := store.New(log)
	sched := clock.NewFake()
	return New(st, sched, 2*time.Second, testReply, log), st, sched
}

func TestSend_EmptyTextIsSilentNoOp(t *testing.T) {
	engine, st, sched := setupTestEngine(t)

	for _, text := range []string{"", "   ", "\n\t"} {
		require.NoError(t, engine.Send(text))
	}

	assert.Len(t, st.ListMessages(), 0)
	assert.Equal(t, 0, sched.Pending())
	assert.Equal(t, 0, engine.PendingReplies())
}

func TestSend_AppendsPatientMessageImmediately(t *testing.T) {
	engine, st, _ := setupTestEngine(t)

	require.NoError(t, engine.Send("  when is my next appointment?  "))

	messages := st.ListMessages()
	require.Len(t, messages, 1)
	assert.Equal(t, types.SenderPatient, messages[0].Sender)
	assert.Equal(t, "when is my next appointment?", messages[0].Text)
	assert.Equal(t, 1, engine.PendingReplies())
}

func TestSend_DeliversOneReplyAfterDelay(t *testing.T) {
	engine, st, sched := setupTestEngine(t)

	require.NoError(t, engine.Send("hello"))

	// Just short of the delay: no reply yet
	sched.Advance(1999 * time.Millisecond)
	assert.Len(t, st.ListMessages(), 1)

	sched.Advance(1 * time.Millisecond)
	messages := st.ListMessages()
	require.Len(t, messages, 2)
	assert.Equal(t, types.SenderStaff, messages[1].Sender)
	assert.Equal(t, testReply, messages[1].Text)
	assert.Equal(t, 0, engine.PendingReplies())

	// No further replies for the same send
	sched.Advance(10 * time.Second)
	assert.Len(t, st.ListMessages(), 2)
}

func TestSend_DoesNotReorderEarlierMessages(t *testing.T) {
	engine, st, sched := setupTestEngine(t)
	st.Seed()
	seeded := st.ListMessages()

	require.NoError(t, engine.Send("new question"))
	sched.Advance(2 * time.Second)

	messages := st.ListMessages()
	require.Len(t, messages, len(seeded)+2)
	for i, m := range seeded {
		assert.Equal(t, m.ID, messages[i].ID)
	}
}

func TestSend_OverlappingSendsEachGetAReply(t *testing.T) {
	engine, st, sched := setupTestEngine(t)

	require.NoError(t, engine.Send("first"))
	sched.Advance(500 * time.Millisecond)
	require.NoError(t, engine.Send("second"))
	assert.Equal(t, 2, engine.PendingReplies())

	// First reply due at 2s, second at 2.5s
	sched.Advance(1500 * time.Millisecond)
	messages := st.ListMessages()
	require.Len(t, messages, 3)
	assert.Equal(t, types.SenderStaff, messages[2].Sender)

	sched.Advance(500 * time.Millisecond)
	messages = st.ListMessages()
	require.Len(t, messages, 4)
	assert.Equal(t, types.SenderStaff, messages[3].Sender)
	assert.Equal(t, 0, engine.PendingReplies())
}

func TestSend_ClearsDraft(t *testing.T) {
	engine, _, _ := setupTestEngine(t)

	engine.SetDraft("my question")
	assert.Equal(t, "my question", engine.Draft())

	require.NoError(t, engine.Send(engine.Draft()))
	assert.Empty(t, engine.Draft())
}

func TestSend_EmptyDoesNotClearDraft(t *testing.T) {
	engine, _, _ := setupTestEngine(t)

	engine.SetDraft("half-typed")
	require.NoError(t, engine.Send("   "))
	assert.Equal(t, "half-typed", engine.Draft())
}
