package kafka

import (
	"context"
	"log"
	"strings"
	"time"

	kgo "github.com/segmentio/kafka-go"
)

// Handler processes one fetched record. A handler error does not stop the
// loop and the record is committed anyway, so a poison message cannot wedge
// the consumer group.
type Handler func(ctx context.Context, topic string, key, value []byte) error

type Consumer struct {
	reader *kgo.Reader
	handle Handler
}

func NewConsumer(brokers, groupID, topic string, h Handler) *Consumer {
	return &Consumer{
		reader: kgo.NewReader(kgo.ReaderConfig{
			Brokers:        strings.Split(strings.TrimSpace(brokers), ","),
			GroupID:        groupID,
			Topic:          topic,
			MinBytes:       1,
			MaxBytes:       10e6,
			MaxWait:        500 * time.Millisecond,
			CommitInterval: time.Second,
		}),
		handle: h,
	}
}

// Run consumes until ctx is cancelled. Fetch errors back off and retry, so a
// broker restart does not kill the loop.
func (c *Consumer) Run(ctx context.Context) error {
	defer func() { _ = c.reader.Close() }()

	cfg := c.reader.Config()
	log.Printf("kafka: consuming topic=%s group=%s brokers=%s",
		cfg.Topic, cfg.GroupID, strings.Join(cfg.Brokers, ","))

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Printf("kafka: consumer stopped")
				return nil
			}
			log.Printf("kafka: fetch: %v", err)
			time.Sleep(time.Second)
			continue
		}

		if err := c.handle(ctx, msg.Topic, msg.Key, msg.Value); err != nil {
			log.Printf("kafka: handle %s/%d@%d: %v", msg.Topic, msg.Partition, msg.Offset, err)
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			log.Printf("kafka: commit: %v", err)
		}
	}
}
