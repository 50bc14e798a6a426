package models

import (
	"fmt"
	"strings"
)

// OrderStatus is a closed enumeration. Statuses are stored lowercase;
// ParseOrderStatus accepts any casing so manager clients sending
// "Preparing" and "preparing" end up with the same persisted value.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// validTransitions maps each status to the statuses it may move to.
// delivered and cancelled are terminal.
var validTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusDelivered, StatusCancelled},
	StatusDelivered: {},
	StatusCancelled: {},
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(strings.ToLower(strings.TrimSpace(s))) {
	case StatusPending:
		return StatusPending, nil
	case StatusPreparing:
		return StatusPreparing, nil
	case StatusDelivered:
		return StatusDelivered, nil
	case StatusCancelled:
		return StatusCancelled, nil
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

// CanTransition reports whether an order may move from one status to
// the next.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	for _, next := range validTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return len(validTransitions[s]) == 0
}
