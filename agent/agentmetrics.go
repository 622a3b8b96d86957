package agent

// DO NOT EDIT!
// This code is generated with http://github.com/hexdigest/gowrap tool
// using opentelemetry.template template

//go:generate gowrap gen -p github.com/alexandre-normand/specscot/agent -i Agent -t opentelemetry.template -o agentmetrics.go

import (
	"context"
	"time"
	"unicode"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// AgentWithTelemetry implements Agent interface with all methods wrapped
// with open telemetry metrics
type AgentWithTelemetry struct {
	base               Agent
	methodCounters     map[string]metric.Int64Counter
	errCounters        map[string]metric.Int64Counter
	methodTimeMeasures map[string]metric.Int64Histogram
	attrs              metric.MeasurementOption
}

// NewAgentWithTelemetry returns an instance of the Agent decorated with open telemetry timing and count metrics
func NewAgentWithTelemetry(base Agent, name string, meter metric.Meter) AgentWithTelemetry {
	return AgentWithTelemetry{
		base:               base,
		methodCounters:     newAgentMethodCounters("Calls", meter),
		errCounters:        newAgentMethodCounters("Errors", meter),
		methodTimeMeasures: newAgentMethodTimeMeasures(meter),
		attrs:              metric.WithAttributes(attribute.String("name", name)),
	}
}

func newAgentMethodTimeMeasures(meter metric.Meter) (timeMeasures map[string]metric.Int64Histogram) {
	timeMeasures = make(map[string]metric.Int64Histogram)

	nGenerateSpecMeasure := []rune("Agent_GenerateSpec_ProcessingTimeMillis")
	nGenerateSpecMeasure[0] = unicode.ToLower(nGenerateSpecMeasure[0])
	mGenerateSpec, _ := meter.Int64Histogram(string(nGenerateSpecMeasure), metric.WithUnit("ms"))
	timeMeasures["GenerateSpec"] = mGenerateSpec

	return timeMeasures
}

func newAgentMethodCounters(suffix string, meter metric.Meter) (counters map[string]metric.Int64Counter) {
	counters = make(map[string]metric.Int64Counter)

	nGenerateSpecCounter := []rune("Agent_GenerateSpec_" + suffix)
	nGenerateSpecCounter[0] = unicode.ToLower(nGenerateSpecCounter[0])
	cGenerateSpec, _ := meter.Int64Counter(string(nGenerateSpecCounter))
	counters["GenerateSpec"] = cGenerateSpec

	return counters
}

// GenerateSpec implements Agent
func (_d AgentWithTelemetry) GenerateSpec(ctx context.Context, request string) (summary string, err error) {
	_since := time.Now()
	defer func() {
		if err != nil {
			errCounter := _d.errCounters["GenerateSpec"]
			errCounter.Add(context.Background(), 1, _d.attrs)
		}

		methodCounter := _d.methodCounters["GenerateSpec"]
		methodCounter.Add(context.Background(), 1, _d.attrs)

		methodTimeMeasure := _d.methodTimeMeasures["GenerateSpec"]
		methodTimeMeasure.Record(context.Background(), time.Since(_since).Milliseconds(), _d.attrs)
	}()
	return _d.base.GenerateSpec(ctx, request)
}
