package stream

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/ledmotion/motion"
	"github.com/pkg/errors"
)

const commandBuffer = 64

// Broker is the part of an MQTT client the Streamer needs.
type Broker interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
	Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token
}

// Streamer that streams RGB data frames to an ledrx device.
type Streamer struct {
	config     Config
	client     Broker
	controller *Controller
	commands   chan Command

	now func() time.Time

	mu     sync.RWMutex
	latest motion.State
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, client Broker, controller *Controller) *Streamer {
	s := new(Streamer)
	s.config = config
	s.client = client
	s.controller = controller
	s.commands = make(chan Command, commandBuffer)
	s.now = time.Now
	s.latest = controller.State()
	return s
}

// Latest returns the most recently published motion snapshot. It is safe to
// call from any goroutine.
func (s *Streamer) Latest() motion.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

// Subscribe listens for commands on the configured topic.
func (s *Streamer) Subscribe() error {
	topic := s.config.Mqtt.Topics.Commands
	if token := s.client.Subscribe(topic, 1, s.handleCommand); token.Wait() && token.Error() != nil {
		return errors.Wrapf(token.Error(), "subscribe %s", topic)
	}
	log.Printf("Subscribed to %s", topic)
	return nil
}

// Submit queues a command for the run loop. It reports false when the queue
// is full.
func (s *Streamer) Submit(cmd Command) bool {
	select {
	case s.commands <- cmd:
		return true
	default:
		return false
	}
}

func (s *Streamer) handleCommand(client mqtt.Client, msg mqtt.Message) {
	cmd, err := DecodeCommand(msg.Payload())
	if err != nil {
		log.Printf("Dropping msg %d on %s: %v", msg.MessageID(), msg.Topic(), err)
		return
	}
	if !s.Submit(cmd) {
		log.Printf("Command queue full, dropping %s for %q", cmd.Type, cmd.ID)
	}
}

// SendFrame sends the current frame as binary and the sprite positions as
// JSON.
func (s *Streamer) SendFrame() error {
	state := s.controller.State()
	s.mu.Lock()
	s.latest = state
	s.mu.Unlock()

	f := s.controller.CalculateFrame()
	b, err := f.MarshalBinary()
	if err != nil {
		return errors.Wrap(err, "marshal frame")
	}
	if err := s.publish(s.config.Mqtt.Topics.Stream, 2, false, b); err != nil {
		return err
	}

	if s.config.Mqtt.Topics.Positions == "" {
		return nil
	}
	positions, err := json.Marshal(Report(state))
	if err != nil {
		return errors.Wrap(err, "marshal positions")
	}
	return s.publish(s.config.Mqtt.Topics.Positions, 0, true, positions)
}

func (s *Streamer) publish(topic string, qos byte, retained bool, payload []byte) error {
	token := s.client.Publish(topic, qos, retained, payload)
	if token.Wait() && token.Error() != nil {
		return errors.Wrapf(token.Error(), "publish %s", topic)
	}
	return nil
}

// Run applies commands and sends frames until ctx is done. The frame ticker
// only runs while something is animating; elapsed time between ticks is fed
// to the controller one tick at a time. Commands arriving between ticks
// first bring running animations up to date, so a new animation starts its
// clock when it is applied.
func (s *Streamer) Run(ctx context.Context) error {
	var ticker *time.Ticker
	var tick <-chan time.Time
	var last time.Time
	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()

	s.send()
	for {
		switch animating := s.controller.Animating(); {
		case animating && ticker == nil:
			ticker = time.NewTicker(s.config.Display.FrameInterval())
			tick = ticker.C
			last = s.now()
		case !animating && ticker != nil:
			ticker.Stop()
			ticker, tick = nil, nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-s.commands:
			if ticker != nil {
				last = s.catchUp(last)
			}
			if err := s.controller.Apply(cmd); err != nil {
				log.Printf("Rejected %s for %q: %v", cmd.Type, cmd.ID, err)
				continue
			}
			s.send()
		case <-tick:
			last = s.catchUp(last)
			s.send()
		}
	}
}

// catchUp advances the controller by the time since last and returns the
// new reference time.
func (s *Streamer) catchUp(last time.Time) time.Time {
	now := s.now()
	delta := now.Sub(last)
	if delta < 0 {
		delta = 0
	}
	s.controller.Advance(float64(delta) / float64(time.Millisecond))
	return now
}

func (s *Streamer) send() {
	if err := s.SendFrame(); err != nil {
		log.Println(err)
	}
}
