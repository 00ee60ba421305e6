package storage

import (
	"context"
	"strings"

	"menurank/rate-svc/internal/domain"

	"github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaPublisher struct {
	Writer messageWriter
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

// PublishRating keys events by venue and dish so one dish's ratings stay ordered on a partition.
func (p *KafkaPublisher) PublishRating(ctx context.Context, event domain.RatingEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.RestaurantRef + ":" + strings.ToLower(event.DishName)),
		Value: payload,
	})
}
