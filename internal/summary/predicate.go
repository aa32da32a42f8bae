package summary

import (
	"github.com/elong0527/demo-go-esub/pkg/contracts/domain"
)

// EventFilter selects adverse events for a summary row. The set is closed on
// purpose: every AE table row maps to exactly one of these variants, and the
// switch in Match is exhaustive over them.
type EventFilter int

const (
	AnyEvent EventFilter = iota
	SeriousEvent
	DrugRelatedEvent
	SeriousDrugRelatedEvent
	FatalOutcome
	DrugWithdrawn
)

// Match reports whether the event satisfies the filter
func (f EventFilter) Match(ev domain.AdverseEvent) bool {
	switch f {
	case AnyEvent:
		return true
	case SeriousEvent:
		return ev.Serious == domain.FlagYes
	case DrugRelatedEvent:
		return isDrugRelated(ev)
	case SeriousDrugRelatedEvent:
		return ev.Serious == domain.FlagYes && isDrugRelated(ev)
	case FatalOutcome:
		return ev.Outcome == domain.OutcomeFatal
	case DrugWithdrawn:
		return ev.ActionTaken == domain.ActionDrugWithdrawn
	}
	return false
}

// String returns the filter name for logging
func (f EventFilter) String() string {
	switch f {
	case AnyEvent:
		return "any_event"
	case SeriousEvent:
		return "serious"
	case DrugRelatedEvent:
		return "drug_related"
	case SeriousDrugRelatedEvent:
		return "serious_drug_related"
	case FatalOutcome:
		return "fatal_outcome"
	case DrugWithdrawn:
		return "drug_withdrawn"
	}
	return "unknown"
}

func isDrugRelated(ev domain.AdverseEvent) bool {
	for _, v := range domain.RelatednessValues {
		if ev.Relatedness == v {
			return true
		}
	}
	return false
}
