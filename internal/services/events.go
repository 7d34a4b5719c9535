package services

import "log"

// EventPublisher publishes domain events. *rabbitmq.Client satisfies it; a
// nil publisher disables events.
type EventPublisher interface {
	PublishEvent(eventType string, fields map[string]string) error
}

// publishEvent is the shared best-effort publish: a missing or failing broker
// never fails the request that produced the event.
func publishEvent(events EventPublisher, eventType string, fields map[string]string) {
	if events == nil {
		return
	}
	if err := events.PublishEvent(eventType, fields); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}
