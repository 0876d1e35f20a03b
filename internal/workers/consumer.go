package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"biolink-server/internal/observability"
)

// ConsumerConfig holds configuration for the Kafka event consumer.
type ConsumerConfig struct {
	Brokers       []string
	ConsumerGroup string
	Topic         string
	NumWorkers    int
	QueueSize     int

	// DrainTimeout is the maximum time to wait for in-flight events during shutdown.
	DrainTimeout time.Duration
}

// DefaultConsumerConfig returns sensible defaults for a consumer.
func DefaultConsumerConfig(brokers []string, consumerGroup, topic string) ConsumerConfig {
	return ConsumerConfig{
		Brokers:       brokers,
		ConsumerGroup: consumerGroup,
		Topic:         topic,
		NumWorkers:    10,
		QueueSize:     100,
		DrainTimeout:  30 * time.Second,
	}
}

// consumer implements the EventConsumer interface. It fetches messages from
// Kafka and hands them to a WorkerPool; offsets are committed from the pool's
// result callback once an event has been processed, so a failed event keeps
// its offset uncommitted and is redelivered after a restart.
type consumer struct {
	config    ConsumerConfig
	reader    *kafkago.Reader
	processor EventProcessor
	pool      WorkerPool
	logger    *observability.Logger

	// pending maps event IDs to their Kafka messages for offset commits.
	mu      sync.Mutex
	pending map[string]kafkago.Message

	cancelFetch context.CancelFunc
	doneCh      chan struct{} // closed when Start() returns
	stopping    atomic.Bool
	stopOnce    sync.Once
}

// NewConsumer creates a new Kafka event consumer backed by a worker pool.
func NewConsumer(
	config ConsumerConfig,
	processor EventProcessor,
	logger *observability.Logger,
) EventConsumer {
	if config.NumWorkers <= 0 {
		config.NumWorkers = 10
	}
	if config.QueueSize <= 0 {
		config.QueueSize = 100
	}
	if config.DrainTimeout <= 0 {
		config.DrainTimeout = 30 * time.Second
	}

	c := &consumer{
		config:    config,
		processor: processor,
		logger:    logger,
		pending:   make(map[string]kafkago.Message),
		doneCh:    make(chan struct{}),
	}

	c.pool = NewWorkerPool(WorkerPoolConfig{
		NumWorkers:   config.NumWorkers,
		QueueSize:    config.QueueSize,
		DrainTimeout: config.DrainTimeout,
		OnResult:     c.onResult,
	}, processor, logger)

	c.reader = kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        config.Brokers,
		Topic:          config.Topic,
		GroupID:        config.ConsumerGroup,
		MinBytes:       10e3, // 10KB
		MaxBytes:       10e6, // 10MB
		StartOffset:    kafkago.FirstOffset,
		CommitInterval: 0, // Manual commit
	})

	ctx := observability.WithFields(context.Background(),
		observability.Field{Key: "processor", Value: processor.Name()},
		observability.Field{Key: "consumer_group", Value: config.ConsumerGroup},
		observability.Field{Key: "topic", Value: config.Topic},
		observability.Field{Key: "num_workers", Value: config.NumWorkers},
	)
	logger.Info(ctx, fmt.Sprintf("Initialized consumer for %s processor", processor.Name()))

	return c
}

// Start begins consuming events and blocks until Stop is called.
func (c *consumer) Start(ctx context.Context) error {
	defer close(c.doneCh)

	fetchCtx, cancel := context.WithCancel(context.Background())
	c.cancelFetch = cancel
	logCtx := observability.WithFields(fetchCtx,
		observability.Field{Key: "consumer_group", Value: c.config.ConsumerGroup},
		observability.Field{Key: "topic", Value: c.config.Topic},
		observability.Field{Key: "processor", Value: c.processor.Name()},
	)

	// The pool gets a background context so cancelling the fetch does not
	// interrupt workers mid-event; Drain below owns their shutdown.
	if err := c.pool.Start(context.Background()); err != nil {
		return fmt.Errorf("failed to start worker pool: %w", err)
	}

	c.logger.Info(logCtx, fmt.Sprintf("Starting consumer for %s with %d workers",
		c.processor.Name(), c.config.NumWorkers))

	c.fetchLoop(fetchCtx)

	// Fetching has stopped; let queued events finish before closing the reader.
	if err := c.pool.Drain(context.Background()); err != nil {
		c.logger.Warn(logCtx, "Drain timeout - some events may not have completed")
	}

	if err := c.reader.Close(); err != nil {
		c.logger.Error(logCtx, "Failed to close Kafka reader", err)
	}

	c.logger.Info(logCtx, fmt.Sprintf("Consumer stopped for %s", c.processor.Name()))
	return nil
}

// fetchLoop fetches messages from Kafka until context is cancelled.
func (c *consumer) fetchLoop(ctx context.Context) {
	for {
		if c.stopping.Load() {
			return
		}

		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if c.stopping.Load() || ctx.Err() != nil {
				return
			}
			c.logger.Error(ctx, "Failed to fetch message from Kafka", err)
			time.Sleep(1 * time.Second)
			continue
		}

		var event EventMessage
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			c.logger.Error(ctx, "Failed to unmarshal event, skipping", err)
			_ = c.reader.CommitMessages(ctx, msg)
			continue
		}

		c.mu.Lock()
		c.pending[event.ID] = msg
		c.mu.Unlock()

		if err := c.pool.Submit(ctx, event); err != nil {
			c.mu.Lock()
			delete(c.pending, event.ID)
			c.mu.Unlock()
			if ctx.Err() != nil {
				return
			}
			c.logger.Error(ctx, "Failed to submit event to worker pool", err)
		}
	}
}

// onResult commits the offset for a processed event. Failed events are not
// committed and will be redelivered on restart.
func (c *consumer) onResult(result ProcessingResult) {
	c.mu.Lock()
	msg, ok := c.pending[result.Event.ID]
	delete(c.pending, result.Event.ID)
	c.mu.Unlock()
	if !ok {
		return
	}

	ctx := observability.WithFields(context.Background(),
		observability.Field{Key: "event_id", Value: result.Event.ID},
		observability.Field{Key: "event_type", Value: result.Event.Type},
		observability.Field{Key: "profile_id", Value: result.Event.ProfileID},
	)

	if result.Error != nil {
		c.logger.Error(ctx, "Failed to process event", result.Error)
		return
	}

	if err := c.reader.CommitMessages(context.Background(), msg); err != nil {
		c.logger.Error(ctx, "Failed to commit offset", err)
	}
}

// Stop gracefully shuts down the consumer.
func (c *consumer) Stop() {
	c.stopOnce.Do(func() {
		logCtx := observability.WithFields(context.Background(),
			observability.Field{Key: "processor", Value: c.processor.Name()},
		)
		c.logger.Info(logCtx, fmt.Sprintf("Stopping consumer for %s", c.processor.Name()))

		c.stopping.Store(true)

		if c.cancelFetch != nil {
			c.cancelFetch()
		}

		<-c.doneCh
	})
}
