package chat

import (
	"strings"
	"sync"
	"time"

	"github.com/nudah/clinic-portal/pkg/interfaces"
	"github.com/nudah/clinic-portal/pkg/logger"
	"github.com/nudah/clinic-portal/pkg/types"
)

// Engine implements the two-party chat exchange. Sending appends the
// patient message synchronously and arms one reply timer per send; the
// staff reply is a fixed canned text delivered after a fixed delay.
type Engine struct {
	mu        sync.Mutex
	logger    *logger.Logger
	store     interfaces.Store
	scheduler interfaces.Scheduler

	replyDelay  time.Duration
	cannedReply string

	draft   string
	pending int
	cancels []interfaces.CancelFunc
}

// New creates a chat engine
func New(store interfaces.Store, scheduler interfaces.Scheduler, replyDelay time.Duration, cannedReply string, log *logger.Logger) *Engine {
	return &Engine{
		logger:      log,
		store:       store,
		scheduler:   scheduler,
		replyDelay:  replyDelay,
		cannedReply: cannedReply,
	}
}

var _ interfaces.ChatEngine = (*Engine)(nil)

// SetDraft updates the pending input buffer
func (e *Engine) SetDraft(text string) {
	e.mu.Lock()
	e.draft = text
	e.mu.Unlock()
}

// Draft returns the pending input buffer
func (e *Engine) Draft() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft
}

// Send appends a patient message and schedules exactly one staff reply.
// Input that trims to empty is a silent no-op: state stays unchanged
// and no error reaches the caller. Concurrent sends each arm their own
// reply timer; replies append in timer-expiry order.
func (e *Engine) Send(text string) error {
	if strings.TrimSpace(text) == "" {
		e.logger.WithComponent("chat").Debug("Ignoring empty message")
		return nil
	}

	if _, err := e.store.AppendMessage(text, types.SenderPatient); err != nil {
		return err
	}

	e.mu.Lock()
	e.draft = ""
	e.pending++
	cancel := e.scheduler.After(e.replyDelay, e.deliverReply)
	e.cancels = append(e.cancels, cancel)
	e.mu.Unlock()

	e.logger.WithComponent("chat").Debugf("Patient message sent, reply armed for %s", e.replyDelay)
	return nil
}

// PendingReplies returns the number of armed, undelivered staff replies
func (e *Engine) PendingReplies() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pending
}

// deliverReply appends the canned staff reply when a timer expires.
// Replies are fire-and-forget: a logout between send and expiry does
// not suppress delivery.
func (e *Engine) deliverReply() {
	e.mu.Lock()
	e.pending--
	e.mu.Unlock()

	if _, err := e.store.AppendMessage(e.cannedReply, types.SenderStaff); err != nil {
		e.logger.WithComponent("chat").WithError(err).Error("Failed to deliver staff reply")
	}
}
