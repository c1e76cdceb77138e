//go:generate go run go.uber.org/mock/mockgen -source=metrics.go -destination=../mocks/mock_metrics.go -package=mocks
package observability

import (
	stderrors "errors"
	"party-lab/balancer"
	"party-lab/errors"
	"time"
)

const (
	OutcomeSuccess              = "success"
	OutcomeInvalidConfiguration = "invalid_configuration"
	OutcomeUnknownEntity        = "unknown_entity"
	OutcomeForbidden            = "forbidden"
	OutcomeError                = "error"
)

// IPartyMetrics records the outcome of party generation requests.
type IPartyMetrics interface {
	ObserveBalance(stats balancer.Stats, elapsed time.Duration)
	ObserveRejection(strategy string, err error)
}

// IProcessMetrics receives samples of the server's own resource usage.
type IProcessMetrics interface {
	ObserveProcess(sample ProcessSample)
}

type ProcessSample struct {
	CPUPercent    float64
	MemoryPercent float64
	ResidentBytes uint64
	Threads       int32
}

// Outcome classifies err into a bounded label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case stderrors.Is(err, errors.ErrInvalidConfiguration), stderrors.Is(err, errors.ErrInvalidInput):
		return OutcomeInvalidConfiguration
	case stderrors.Is(err, errors.ErrUnknownEntity):
		return OutcomeUnknownEntity
	case stderrors.Is(err, errors.ErrForbidden), stderrors.Is(err, errors.ErrUnauthenticated):
		return OutcomeForbidden
	default:
		return OutcomeError
	}
}

// NopMetrics discards everything.
type NopMetrics struct{}

var (
	_ IPartyMetrics   = NopMetrics{}
	_ IProcessMetrics = NopMetrics{}
)

func (NopMetrics) ObserveBalance(balancer.Stats, time.Duration) {}
func (NopMetrics) ObserveRejection(string, error)               {}
func (NopMetrics) ObserveProcess(ProcessSample)                 {}
