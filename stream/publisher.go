package stream

import (
	"github.com/eclipse/paho.mqtt.golang"
)

// A Publisher delivers encoded frames to an ledrx device.
type Publisher interface {
	Publish(payload []byte) error
}

// MQTTPublisher publishes frames to an MQTT topic.
type MQTTPublisher struct {
	client mqtt.Client
	topic  string
	qos    byte
}

// NewMQTTPublisher creates an instance of an MQTTPublisher.
func NewMQTTPublisher(client mqtt.Client, topic string, qos byte) *MQTTPublisher {
	p := new(MQTTPublisher)
	p.client = client
	p.topic = topic
	p.qos = qos
	return p
}

// Publish sends payload and waits for the broker to accept it.
func (p *MQTTPublisher) Publish(payload []byte) error {
	token := p.client.Publish(p.topic, p.qos, false, payload)
	token.Wait()
	return token.Error()
}
