package domain

// Column names shared with upstream data-preparation tooling. These are the
// wire contract for subject-level and event-level datasets; renaming any of
// them is a breaking change for every dataset producer.
const (
	ColSubjectID             = "SubjectID"
	ColTreatmentGroupPlanned = "TreatmentGroupPlanned"
	ColTreatmentGroupActual  = "TreatmentGroupActual"
	ColIntentToTreatFlag     = "IntentToTreatFlag"
	ColEfficacyFlag          = "EfficacyFlag"
	ColSafetyFlag            = "SafetyFlag"
	ColEventTerm             = "EventTerm"
	ColOrganSystemClass      = "OrganSystemClass"
	ColSerious               = "Serious"
	ColRelatedness           = "Relatedness"
	ColOutcome               = "Outcome"
	ColActionTaken           = "ActionTaken"
)

// FlagYes is the value population flags carry when a subject belongs to the
// corresponding analysis population. Any other value means "not in population".
const FlagYes = "Y"

// Event attribute values with defined report semantics. Anything else in the
// corresponding columns is treated as "no".
const (
	OutcomeFatal        = "FATAL"
	ActionDrugWithdrawn = "DRUG WITHDRAWN"
)

// RelatednessValues are the Relatedness column values that count as
// drug-related.
var RelatednessValues = []string{"POSSIBLE", "PROBABLE", "DEFINITE", "RELATED"}

// AdverseEvent is one event-level record. A subject may carry any number of
// these; per-subject de-duplication happens at aggregation time.
type AdverseEvent struct {
	SubjectID        string `json:"subject_id" csv:"SubjectID"`
	TreatmentGroup   string `json:"treatment_group" csv:"TreatmentGroupActual"`
	EventTerm        string `json:"event_term" csv:"EventTerm"`
	OrganSystemClass string `json:"organ_system_class" csv:"OrganSystemClass"`
	Serious          string `json:"serious" csv:"Serious"`
	Relatedness      string `json:"relatedness" csv:"Relatedness"`
	Outcome          string `json:"outcome" csv:"Outcome"`
	ActionTaken      string `json:"action_taken" csv:"ActionTaken"`
}
