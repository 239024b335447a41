package dodge

// EventSink receives advisory diagnostic events: state transitions, hits,
// pickups and bomb use. A *log.Logger from charmbracelet/log satisfies it.
// Events never feed back into the simulation.
type EventSink interface {
	Info(msg interface{}, keyvals ...interface{})
}

type discardSink struct{}

func (discardSink) Info(interface{}, ...interface{}) {}
