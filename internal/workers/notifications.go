package workers

import (
	"context"
	"encoding/json"
)

// NotificationForwarder hands every new_notification payload to deliver.
type NotificationForwarder struct {
	source  <-chan json.RawMessage
	deliver func(json.RawMessage)
}

func NewNotificationForwarder(source <-chan json.RawMessage, deliver func(json.RawMessage)) *NotificationForwarder {
	return &NotificationForwarder{source: source, deliver: deliver}
}

func (f *NotificationForwarder) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case payload, ok := <-f.source:
			if !ok {
				return
			}
			f.deliver(payload)
		}
	}
}
