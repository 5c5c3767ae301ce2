package model

// Engine handles. Zero is never a valid handle (the engine's "null").
type (
	AgentHandle   uint32
	VehicleHandle uint32
	MarkerHandle  uint32
	GroupHandle   uint32
)

// Valid reports whether h is non-zero.
func (h AgentHandle) Valid() bool { return h != 0 }

// Valid reports whether h is non-zero.
func (h VehicleHandle) Valid() bool { return h != 0 }

// Valid reports whether h is non-zero.
func (h MarkerHandle) Valid() bool { return h != 0 }

// Seat is a vehicle seat index. Passenger seats start at 0.
type Seat int32

const (
	// SeatDriver is the driver's seat.
	SeatDriver Seat = -1
	// MaxPassengerSeats is the number of passenger seat indexes a vehicle can expose.
	MaxPassengerSeats = 16
)

// Valid reports whether h is non-zero.
func (h GroupHandle) Valid() bool { return h != 0 }
