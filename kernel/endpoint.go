package kernel

// Endpoint identifies a message destination.
type Endpoint uint8

const (
	EPEventLoop Endpoint = iota
	EPLogger
	EPServer
	EPScript

	numEndpoints
)

func (ep Endpoint) String() string {
	switch ep {
	case EPEventLoop:
		return "eventloop"
	case EPLogger:
		return "logger"
	case EPServer:
		return "server"
	case EPScript:
		return "script"
	default:
		return "invalid"
	}
}
