package gateway

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	servicequeue "sahayak/app/core/queue"
	"sahayak/app/pkg/types"
)

type QueueOptions struct {
	Enabled        bool
	Workers        int
	EnqueueTimeout time.Duration
	AttemptTimeout time.Duration
	MaxRetries     int
	RetryDelay     time.Duration
}

// DefaultGateway fans inbound messages from all channels into the agent
// and delivers replies back. Each message is handled on its own
// goroutine so a slow provider call in one session never blocks another.
type DefaultGateway struct {
	agent    types.Agent
	channels map[string]types.Channel
	mu       sync.RWMutex
	tracer   TraceRecorder

	// processingDelay simulates the assistant "thinking" between the
	// typing-start and typing-stop notifications. Zero disables it.
	processingDelay time.Duration

	executionQueue *servicequeue.Queue
	queueOptions   QueueOptions

	processedMessages uint64
	lastMessageUnix   atomic.Int64
	startedUnix       atomic.Int64
}

type HealthStatus struct {
	Started            bool
	StartedAt          time.Time
	RegisteredChannels []string
	AgentName          string
	ProcessedMessages  uint64
	LastMessageAt      time.Time
	QueueEnabled       bool
	Queue              servicequeue.Stats
}

func NewGateway(agent types.Agent) *DefaultGateway {
	return &DefaultGateway{
		agent:    agent,
		channels: make(map[string]types.Channel),
	}
}

func (g *DefaultGateway) RegisterChannel(c types.Channel) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.channels[c.ID()] = c
	log.Printf("[Gateway] Registered channel: %s", c.ID())
}

func (g *DefaultGateway) SetTraceRecorder(tracer TraceRecorder) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tracer = tracer
}

func (g *DefaultGateway) SetProcessingDelay(delay time.Duration) {
	if delay < 0 {
		delay = 0
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.processingDelay = delay
}

func (g *DefaultGateway) SetExecutionQueue(q *servicequeue.Queue, opts QueueOptions) {
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}
	if opts.EnqueueTimeout < 0 {
		opts.EnqueueTimeout = 0
	}
	if opts.AttemptTimeout < 0 {
		opts.AttemptTimeout = 0
	}
	if opts.RetryDelay < 0 {
		opts.RetryDelay = 0
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.executionQueue = q
	g.queueOptions = opts
}

func (g *DefaultGateway) Start(ctx context.Context) error {
	var wg sync.WaitGroup
	g.startedUnix.Store(time.Now().Unix())

	handler := func(msg types.Message) {
		atomic.AddUint64(&g.processedMessages, 1)
		g.lastMessageUnix.Store(time.Now().Unix())
		g.trace(msg, "inbound_received", "ok", "")

		if g.queueEnabled() {
			g.dispatchWithQueue(ctx, msg)
			return
		}

		// One goroutine per message: concurrent sessions must not
		// serialize on each other.
		go func() {
			if err := g.processAndReply(ctx, msg); err != nil {
				log.Printf("[Gateway] Processing failed: %v", err)
			}
		}()
	}

	g.mu.RLock()
	for _, c := range g.channels {
		wg.Add(1)
		go func(ch types.Channel) {
			defer wg.Done()
			if err := ch.Start(ctx, handler); err != nil {
				log.Printf("[Gateway] Channel %s error: %v", ch.ID(), err)
				if ctx.Err() == nil {
					g.trace(types.Message{ChannelID: ch.ID()}, "channel_disconnected", "error", err.Error())
				}
			}
		}(c)
	}
	g.mu.RUnlock()

	log.Println("[Gateway] Started all channels")
	wg.Wait()
	return nil
}

func (g *DefaultGateway) queueEnabled() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.queueOptions.Enabled && g.executionQueue != nil
}

func (g *DefaultGateway) dispatchWithQueue(ctx context.Context, msg types.Message) {
	g.mu.RLock()
	q := g.executionQueue
	opts := g.queueOptions
	g.mu.RUnlock()

	// Retry and failure bookkeeping belongs to the queue; the job only
	// reports the outcome.
	job := servicequeue.Job{
		MaxRetries:     opts.MaxRetries,
		RetryDelay:     opts.RetryDelay,
		AttemptTimeout: opts.AttemptTimeout,
		Run: func(runCtx context.Context) error {
			if err := g.processAndReply(runCtx, msg); err != nil {
				log.Printf("[Gateway] Queue job attempt failed request=%s: %v", msg.RequestID, err)
				return err
			}
			return nil
		},
	}

	enqueueCtx := ctx
	cancel := func() {}
	if opts.EnqueueTimeout > 0 {
		enqueueCtx, cancel = context.WithTimeout(ctx, opts.EnqueueTimeout)
	}
	defer cancel()

	if _, err := q.EnqueueContext(enqueueCtx, job); err != nil {
		log.Printf("[Gateway] Queue enqueue failed: %v", err)
		g.trace(msg, "queue_enqueue", "error", err.Error())
		return
	}
	g.trace(msg, "queue_enqueue", "ok", "")
}

// processAndReply brackets routing with the two-phase typing protocol:
// typing-on before invoking the agent, typing-off once the reply exists,
// then delivery.
func (g *DefaultGateway) processAndReply(ctx context.Context, msg types.Message) error {
	channel, exists := g.channelByID(msg.ChannelID)
	if !exists {
		g.trace(msg, "deliver_reply", "error", "channel not found")
		return fmt.Errorf("channel not found for reply: %s", msg.ChannelID)
	}

	notifier, canNotify := channel.(types.TypingNotifier)
	if canNotify {
		if err := notifier.NotifyTyping(ctx, msg, true); err != nil {
			log.Printf("[Gateway] Typing notify failed: %v", err)
		}
	}

	if delay := g.delay(); delay > 0 {
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	response, err := g.agent.Process(ctx, msg)

	if canNotify {
		if notifyErr := notifier.NotifyTyping(ctx, msg, false); notifyErr != nil {
			log.Printf("[Gateway] Typing notify failed: %v", notifyErr)
		}
	}

	if err != nil {
		g.trace(msg, "agent_process", "error", err.Error())
		return fmt.Errorf("agent process: %w", err)
	}
	g.trace(msg, "agent_process", "ok", "")

	normalizeReply(&response, msg)
	if err := channel.Send(ctx, response); err != nil {
		g.trace(response, "deliver_reply", "error", err.Error())
		return fmt.Errorf("send reply: %w", err)
	}
	g.trace(response, "deliver_reply", "ok", "")
	return nil
}

// DeliverDirect pushes assistant-initiated content (reminders) to a
// channel outside the request/reply cycle.
func (g *DefaultGateway) DeliverDirect(ctx context.Context, channelID string, userID string, content string) error {
	channelID = strings.TrimSpace(channelID)
	userID = strings.TrimSpace(userID)
	content = strings.TrimSpace(content)
	if channelID == "" {
		return fmt.Errorf("channel id is required")
	}
	if content == "" {
		return fmt.Errorf("delivery content is required")
	}

	channel, exists := g.channelByID(channelID)
	if !exists {
		return fmt.Errorf("channel not found: %s", channelID)
	}

	msg := types.Message{
		ID:        "direct-" + strconv.FormatInt(time.Now().UnixNano(), 10),
		Content:   content,
		Role:      types.MessageRoleAssistant,
		ChannelID: channelID,
		UserID:    userID,
	}
	if err := channel.Send(ctx, msg); err != nil {
		g.trace(msg, "deliver_direct", "error", err.Error())
		return err
	}
	g.trace(msg, "deliver_direct", "ok", "")
	return nil
}

// EndSession forwards a disconnect to the agent so per-session state is
// dropped.
func (g *DefaultGateway) EndSession(sessionID string) {
	if ender, ok := g.agent.(types.SessionEnder); ok {
		ender.EndSession(sessionID)
	}
}

func (g *DefaultGateway) delay() time.Duration {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.processingDelay
}

func (g *DefaultGateway) channelByID(channelID string) (types.Channel, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	channel, exists := g.channels[channelID]
	return channel, exists
}

func (g *DefaultGateway) trace(msg types.Message, event, status, detail string) {
	g.mu.RLock()
	tracer := g.tracer
	g.mu.RUnlock()
	if tracer == nil {
		return
	}

	traceEvent := TraceEvent{
		RequestID: strings.TrimSpace(msg.RequestID),
		MessageID: strings.TrimSpace(msg.ID),
		ChannelID: strings.TrimSpace(msg.ChannelID),
		UserID:    strings.TrimSpace(msg.UserID),
		SessionID: strings.TrimSpace(msg.SessionID),
		Event:     event,
		Status:    status,
		Detail:    strings.TrimSpace(detail),
	}
	if err := tracer.Record(traceEvent); err != nil {
		log.Printf("[Gateway] Trace write failed: %v", err)
	}
}

func normalizeReply(response *types.Message, request types.Message) {
	if response.ID == "" {
		response.ID = "resp-" + request.ID
	}
	if response.ChannelID == "" {
		response.ChannelID = request.ChannelID
	}
	if response.Role == "" {
		response.Role = types.MessageRoleAssistant
	}
	if response.UserID == "" {
		response.UserID = request.UserID
	}
	if response.SessionID == "" {
		response.SessionID = request.SessionID
	}
	if response.RequestID == "" {
		response.RequestID = request.RequestID
	}
	if response.Language == "" {
		response.Language = request.Language
	}
}

func (g *DefaultGateway) HealthStatus() HealthStatus {
	g.mu.RLock()
	channels := make([]string, 0, len(g.channels))
	for id := range g.channels {
		channels = append(channels, id)
	}
	agentName := ""
	if g.agent != nil {
		agentName = g.agent.Name()
	}
	queueEnabled := g.queueOptions.Enabled && g.executionQueue != nil
	var queueStats servicequeue.Stats
	if queueEnabled {
		queueStats = g.executionQueue.Stats()
	}
	g.mu.RUnlock()
	sort.Strings(channels)

	status := HealthStatus{
		RegisteredChannels: channels,
		AgentName:          agentName,
		ProcessedMessages:  atomic.LoadUint64(&g.processedMessages),
		QueueEnabled:       queueEnabled,
		Queue:              queueStats,
	}

	if started := g.startedUnix.Load(); started > 0 {
		status.Started = true
		status.StartedAt = time.Unix(started, 0).UTC()
	}
	if last := g.lastMessageUnix.Load(); last > 0 {
		status.LastMessageAt = time.Unix(last, 0).UTC()
	}

	return status
}
