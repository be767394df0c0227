package burst

import (
	"context"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/ibs-source/mqtt-burst/publisher/golang/internal/config"
	"github.com/ibs-source/mqtt-burst/publisher/golang/internal/log"
)

// tailLen bounds the payload excerpt shown in progress notices
const tailLen = 20

// Session is the subset of the MQTT session the publisher needs
type Session interface {
	Publish(topic string, qos byte, retained bool, payload []byte) mqtt.Token
}

// Publisher drives count sequential publishes over one connected session,
// one message in flight at a time.
type Publisher struct {
	session Session
	topic   string
	qos     byte
	count   int
	start   int64
	size    int
	delay   time.Duration
	log     *log.Logger
}

// NewPublisher creates the publish loop for one burst run
func NewPublisher(session Session, cfg *config.Config, logger *log.Logger) *Publisher {
	return &Publisher{
		session: session,
		topic:   cfg.Burst.Topic,
		qos:     cfg.MQTT.QoS,
		count:   cfg.Burst.Count,
		start:   cfg.Burst.Start,
		size:    cfg.Burst.MessageSize,
		delay:   cfg.Burst.Delay,
		log:     logger,
	}
}

// Run publishes counters start…start+count-1 in order, each fully
// acknowledged before the next is submitted. The loop stops on the first
// failure; an interrupt during any wait surfaces as the context error.
func (p *Publisher) Run(ctx context.Context) error {
	for i := 0; i < p.count; i++ {
		counter := p.start + int64(i)

		payload, err := BuildMessage(counter, p.size)
		if err != nil {
			return err
		}

		p.log.Info("Publishing to %s: ...%s - sized %d", p.topic, payloadTail(payload), len(payload))
		token := p.session.Publish(p.topic, p.qos, false, payload)

		select {
		case <-token.Done():
		case <-ctx.Done():
			return ctx.Err()
		}
		if err := token.Error(); err != nil {
			return &PublishError{Counter: counter, Err: err}
		}

		if p.delay > 0 && i != p.count-1 {
			if err := sleep(ctx, p.delay); err != nil {
				return err
			}
		}
	}

	p.log.Info("Published %d messages to %s", p.count, p.topic)
	return nil
}

// payloadTail returns at most the last tailLen bytes of the payload
func payloadTail(payload []byte) string {
	if len(payload) <= tailLen {
		return string(payload)
	}
	return string(payload[len(payload)-tailLen:])
}

// sleep pauses for the inter-message delay, aborting on interrupt
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
