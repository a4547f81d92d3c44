package pubsub

import (
	"encoding/json"
	"strconv"

	"portfolio/internal/domain/service"

	"github.com/pkg/errors"
)

const schemaVersion = "analytics.v1"

// message is the transport independent encoding of an analytics event.
type message struct {
	data       []byte
	attributes map[string]string
	// orderingKey keeps the events of one browser session in publish order.
	orderingKey string
}

func newMessage(event *service.AnalyticsEvent) (*message, error) {
	if event == nil || event.Name == "" {
		return nil, errors.New("analytics event requires a name")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrapf(err, "encode analytics event %s", event.Name)
	}

	return &message{
		data:        data,
		attributes:  eventAttributes(event),
		orderingKey: event.SessionID,
	}, nil
}

// eventAttributes builds the message attributes used for subscription filtering and tracing
func eventAttributes(event *service.AnalyticsEvent) map[string]string {
	attributes := map[string]string{
		"event":  event.Name,
		"schema": schemaVersion,
	}
	for key, value := range map[string]string{
		"user_id":    event.UserID,
		"session_id": event.SessionID,
		"request_id": event.RequestID,
	} {
		if value != "" {
			attributes[key] = value
		}
	}
	if event.OccurredAt > 0 {
		attributes["occurred_at"] = strconv.FormatInt(event.OccurredAt, 10)
	}

	return attributes
}
