package logger

import (
	"lcdkit/hal"
	"lcdkit/kernel"
)

// Service writes MsgLog lines queued on EPLogger to a hal.Logger.
type Service struct {
	log hal.Logger
	sys *kernel.System
}

func New(log hal.Logger, sys *kernel.System) *Service {
	return &Service{log: log, sys: sys}
}

// Step writes at most one queued line. It reports whether a message was
// taken off the queue.
func (s *Service) Step() bool {
	msg, ok := s.sys.TryRecv(kernel.EPLogger)
	if !ok {
		return false
	}
	if s.log == nil || msg.Kind != kernel.MsgLog {
		return true
	}
	s.log.WriteLineBytes(msg.Payload())
	return true
}
