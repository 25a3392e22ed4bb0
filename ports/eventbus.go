package ports

type Topic = string
type Event = []string
type EventBus interface {
	Shutdown()
	Pub(Topic, Event)
	Sub(Topic) chan Event
	Unsub(chan Event)
}

// TopicReport carries generation progress.
// Events are ordered, first element is the kind.
const TopicReport Topic = "report"

const (
	// ReportStart event is [kind, file name, lines total]
	ReportStart = "start"
	// ReportProgress event is [kind, lines generated, lines total]
	ReportProgress = "progress"
	// ReportDone event is [kind, file name, size in bytes]
	ReportDone = "done"
	// ReportStats event is [kind, lines, words, bytes, chars, max line length]
	ReportStats = "stats"
)
