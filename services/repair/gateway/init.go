package gateway

import (
	"github.com/canyfix/repairdesk/services/repair"
)

// Publisher is the part of the NSQ producer the gateway needs
type Publisher interface {
	Publish(topic string, message interface{}) error
}

// RepairGW handles repair gateway operations
type RepairGW struct {
	publisher Publisher
}

// NewRepairGW creates a new gateway instance publishing through NSQ
func NewRepairGW(publisher Publisher) repair.RepairGW {
	return &RepairGW{
		publisher: publisher,
	}
}
