package specscot

import (
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	haltedStatus    = "halted"
	succeededStatus = "succeeded"
	failedStatus    = "failed"
)

// instrumenter holds data for core instrumentation
type instrumenter struct {
	coreMetrics coreMetrics
}

// coreMetrics holds core specscot metrics along with the attribute sets they
// record with
type coreMetrics struct {
	mentionsSeen                   metric.Int64Counter
	mentionsProcessed              metric.Int64Counter
	mentionProcessingLatencyMillis metric.Int64Histogram

	defaultAttrs  metric.MeasurementOption
	byStatusAttrs map[string]metric.MeasurementOption
}

// newInstrumenter creates a new core instrumenter. Instrument creation errors
// are ignored since the metric API returns a usable instrument along with them
func newInstrumenter(appName string, meter metric.Meter) (ins *instrumenter) {
	ins = new(instrumenter)

	mentionsSeen, _ := meter.Int64Counter("mentionsSeen")
	mentionsProcessed, _ := meter.Int64Counter("mentionsProcessed")
	processingLatency, _ := meter.Int64Histogram("mentionProcessingLatencyMillis", metric.WithUnit("ms"))

	ins.coreMetrics = coreMetrics{mentionsSeen: mentionsSeen,
		mentionsProcessed:              mentionsProcessed,
		mentionProcessingLatencyMillis: processingLatency,
		defaultAttrs:                   metric.WithAttributes(attribute.String("name", appName)),
		byStatusAttrs:                  newAttrsByStatus(appName)}

	return ins
}

// newAttrsByStatus creates the attribute set for each terminal mention status
func newAttrsByStatus(appName string) (attrsByStatus map[string]metric.MeasurementOption) {
	attrsByStatus = make(map[string]metric.MeasurementOption)

	for _, status := range []string{haltedStatus, succeededStatus, failedStatus} {
		attrsByStatus[status] = metric.WithAttributes(attribute.String("name", appName), attribute.String("status", status))
	}

	return attrsByStatus
}

type timed func()

func measure(operation timed) (d time.Duration) {
	before := time.Now()

	operation()

	return time.Now().Sub(before)
}
