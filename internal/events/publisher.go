package events

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/GlebRadaev/hyperacing/internal/domain"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

//go:generate mockgen -source=publisher.go -destination=mock_publisher.go -package=events

const writeTimeout = 5 * time.Second

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// BetPlaced is the payload of the bet_placed topic.
type BetPlaced struct {
	BetID             int64   `json:"bet_id"`
	UserID            string  `json:"user_id"`
	Driver            string  `json:"driver"`
	Position          string  `json:"position"`
	Amount            int64   `json:"amount"`
	Odds              float64 `json:"odds"`
	PotentialWinnings float64 `json:"potential_winnings"`
	TsUnixMs          int64   `json:"ts_unix_ms"`
}

func NewWriter(brokers, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(strings.Split(brokers, ",")...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
}

// KafkaPublisher hands bet events to a worker pool so that placing a bet
// never waits on the broker. Events that find the pool saturated are dropped.
type KafkaPublisher struct {
	writer MessageWriter
	pool   WorkerPoolI
}

func NewKafkaPublisher(writer MessageWriter, pool WorkerPoolI) *KafkaPublisher {
	return &KafkaPublisher{writer: writer, pool: pool}
}

func (p *KafkaPublisher) PublishBetPlaced(ctx context.Context, bet domain.Bet) error {
	payload, err := json.Marshal(BetPlaced{
		BetID:             bet.ID,
		UserID:            bet.UserID,
		Driver:            bet.Driver,
		Position:          bet.Position,
		Amount:            bet.Amount,
		Odds:              bet.Odds,
		PotentialWinnings: bet.PotentialWinnings,
		TsUnixMs:          time.Now().UnixMilli(),
	})
	if err != nil {
		return err
	}
	msg := kafka.Message{
		Key:   []byte(bet.UserID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "bet_id", Value: []byte(strconv.FormatInt(bet.ID, 10))},
		},
	}

	// the request context ends with the response; the write must outlive it
	writeCtx := context.WithoutCancel(ctx)
	err = p.pool.AddTask(ctx, func() error {
		ctx, cancel := context.WithTimeout(writeCtx, writeTimeout)
		defer cancel()
		if err := p.writer.WriteMessages(ctx, msg); err != nil {
			return err
		}
		zap.L().Debug("bet event published", zap.Int64("betID", bet.ID))
		return nil
	})
	if errors.Is(err, ErrPoolFull) {
		zap.L().Warn("bet event dropped, publisher saturated", zap.Int64("betID", bet.ID))
	}
	return err
}

// Close drains queued events and closes the writer.
func (p *KafkaPublisher) Close() error {
	p.pool.Close()
	return p.writer.Close()
}

// NopPublisher drops events. It is used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) PublishBetPlaced(context.Context, domain.Bet) error { return nil }

func (NopPublisher) Close() error { return nil }
