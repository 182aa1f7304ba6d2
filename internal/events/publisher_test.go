package events

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"espana-clima/internal/config"
)

type published struct {
	topic    string
	qos      byte
	retained bool
	payload  []byte
}

// fakeClient records publishes; unused mqtt.Client methods panic
type fakeClient struct {
	mqtt.Client

	mu           sync.Mutex
	messages     []published
	err          error
	disconnected bool
}

func (f *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, published{topic: topic, qos: qos, retained: retained, payload: payload.([]byte)})
	return &doneToken{err: f.err}
}

func (f *fakeClient) IsConnected() bool {
	return true
}

func (f *fakeClient) Disconnect(quiesce uint) {
	f.disconnected = true
}

type doneToken struct {
	err error
}

func (t *doneToken) Wait() bool { return true }
func (t *doneToken) WaitTimeout(time.Duration) bool { return true }
func (t *doneToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
func (t *doneToken) Error() error { return t.err }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewPublisher_Disabled(t *testing.T) {
	p, err := NewPublisher(config.EventsConfig{Enabled: false, Broker: "tcp://127.0.0.1:1"}, discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Enabled() || p.IsConnected() {
		t.Error("disabled publisher should report not enabled and not connected")
	}

	// no client behind it; must not panic
	p.PublishLookup(WeatherLookup{Coords: "40.4,-3.7"})
	p.Close()
}

func TestPublisher_PublishLookup(t *testing.T) {
	client := &fakeClient{}
	p := newPublisherWithClient(client, "espana-clima", discardLogger())

	lookup := WeatherLookup{
		Coords:    "40.4168,-3.7038",
		Location:  "Madrid",
		Region:    "Madrid",
		Timezone:  "Europe/Madrid",
		TempC:     17.2,
		Condition: "Soleado",
		Timestamp: time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC),
	}
	p.PublishLookup(lookup)

	client.mu.Lock()
	defer client.mu.Unlock()
	if len(client.messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(client.messages))
	}

	msg := client.messages[0]
	if msg.topic != "espana-clima/weather/lookups" {
		t.Errorf("topic = %q", msg.topic)
	}
	if msg.qos != 0 || msg.retained {
		t.Errorf("expected qos 0 and not retained, got qos %d retained %v", msg.qos, msg.retained)
	}

	var got WeatherLookup
	if err := json.Unmarshal(msg.payload, &got); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if !got.Timestamp.Equal(lookup.Timestamp) {
		t.Errorf("timestamp = %v, want %v", got.Timestamp, lookup.Timestamp)
	}
	got.Timestamp = lookup.Timestamp
	if got != lookup {
		t.Errorf("payload = %+v, want %+v", got, lookup)
	}
}

func TestPublisher_PublishErrorIsNotReturned(t *testing.T) {
	client := &fakeClient{err: errors.New("not connected")}
	p := newPublisherWithClient(client, "test", discardLogger())

	p.PublishLookup(WeatherLookup{Coords: "28.1,-15.4"})

	client.mu.Lock()
	defer client.mu.Unlock()
	if len(client.messages) != 1 {
		t.Errorf("expected publish attempt, got %d", len(client.messages))
	}
}

func TestPublisher_Close(t *testing.T) {
	client := &fakeClient{}
	p := newPublisherWithClient(client, "test", discardLogger())

	if !p.IsConnected() {
		t.Error("expected connected")
	}
	p.Close()
	if !client.disconnected {
		t.Error("expected Disconnect to be called")
	}
}
