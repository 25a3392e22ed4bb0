package fixturegen

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"github.com/cloudcopper/fixturegen/lib/types"
	"github.com/cloudcopper/fixturegen/ports"
)

// Reporter listening report topic of eventbus for next events
// and prints human readable messages to out:
//   - start - file generation started
//   - progress - lines generated so far
//   - done - file complete with given size
//   - stats - word count of the complete file
type Reporter struct {
	log           ports.Logger
	bus           ports.EventBus
	out           io.Writer
	chTopicReport chan ports.Event
	closeWg       sync.WaitGroup
}

var reportMessages = map[string]func(ports.Event) string{
	ports.ReportStart:    startMessage,
	ports.ReportProgress: progressMessage,
	ports.ReportDone:     doneMessage,
	ports.ReportStats:    statsMessage,
}

func NewReporter(log ports.Logger, bus ports.EventBus, out io.Writer) *Reporter {
	log = log.With(slog.String("entity", "Reporter"))
	r := &Reporter{
		log:           log,
		bus:           bus,
		out:           out,
		chTopicReport: bus.Sub(ports.TopicReport),
	}
	log.Debug("created")

	r.closeWg.Add(1)
	go func() {
		defer r.closeWg.Done()
		r.background()
	}()

	return r
}

// Close unsubscribes reporter and waits till all received events are printed
func (r *Reporter) Close() {
	if r.chTopicReport == nil {
		return
	}
	r.log.Debug("closing")
	r.bus.Unsub(r.chTopicReport)
	r.closeWg.Wait()
	r.chTopicReport = nil
}

func (r *Reporter) background() {
	for event := range r.chTopicReport {
		if len(event) == 0 {
			continue
		}
		message, ok := reportMessages[event[0]]
		if !ok {
			r.log.Warn("unknown report", slog.Any("event", event))
			continue
		}
		msg := message(event[1:])
		if msg == "" {
			r.log.Warn("malformed report", slog.Any("event", event))
			continue
		}
		if _, err := fmt.Fprintln(r.out, msg); err != nil {
			r.log.Error("unable to print", slog.Any("err", err))
		}
	}
}

func startMessage(e ports.Event) string {
	if len(e) != 2 {
		return ""
	}
	return fmt.Sprintf("Generating test file '%v' with %v lines...", e[0], count(e[1]))
}

func progressMessage(e ports.Event) string {
	if len(e) != 2 {
		return ""
	}
	return fmt.Sprintf("Generated %v lines...", count(e[0]))
}

func doneMessage(e ports.Event) string {
	if len(e) != 2 {
		return ""
	}
	size, err := strconv.ParseInt(e[1], 10, 64)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("Done! File size: %v", types.Size(size).MB())
}

func statsMessage(e ports.Event) string {
	if len(e) != 5 {
		return ""
	}
	return fmt.Sprintf("%v lines, %v words, %v bytes, %v chars, max line length %v", count(e[0]), count(e[1]), count(e[2]), count(e[3]), count(e[4]))
}

func count(s string) string {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return s
	}
	return types.Count(n).String()
}
