package pipeline

import (
	"github.com/apiforge/cli/internal/naming"
	"github.com/apiforge/cli/internal/writer"
)

// EntitySpec is one entity requested on the command line. Attributes are
// raw "name[:type]" items in the order given.
type EntitySpec struct {
	Name       string
	Attributes []string
}

// Options are the resolved inputs of a run.
type Options struct {
	Entities []EntitySpec

	// Translations enables the localized asset phase.
	Translations bool
}

// Phase is a step of the run. Phases only ever move forward.
type Phase int

const (
	Idle Phase = iota
	EntityGeneration
	LocalizedAssetInstall
	LoggerConfigInstall
	ControllerAssetInstall
	ErrorHandlerAssetInstall
	Done
)

// workPhases lists the phases that do work, in order.
var workPhases = []Phase{
	EntityGeneration,
	LocalizedAssetInstall,
	LoggerConfigInstall,
	ControllerAssetInstall,
	ErrorHandlerAssetInstall,
}

// TotalSteps is the number of progress steps in a run.
var TotalSteps = len(workPhases)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case EntityGeneration:
		return "entity generation"
	case LocalizedAssetInstall:
		return "localized assets"
	case LoggerConfigInstall:
		return "logger configuration"
	case ControllerAssetInstall:
		return "base controller"
	case ErrorHandlerAssetInstall:
		return "error handler"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// Progress labels.
const (
	labelGenerating        = "Generating models..."
	labelGenerationSkipped = "Model generation skipped..."
	labelTranslations      = "Publishing translations..."
	labelTranslationsSkip  = "Translations skipped..."
	labelLoggerConfig      = "Publishing configuration files..."
	labelController        = "Publishing API controller..."
	labelErrorHandler      = "Publishing exception handler..."
	labelDone              = "Done."
)

// ArtifactStatus is the outcome of one writer for one entity.
type ArtifactStatus string

const (
	ArtifactCreated  ArtifactStatus = "created"
	ArtifactAppended ArtifactStatus = "appended"
	ArtifactSkipped  ArtifactStatus = "skipped"
	ArtifactFailed   ArtifactStatus = "failed"
)

// ArtifactReport describes one artifact of an entity.
type ArtifactReport struct {
	Kind   writer.Kind
	Path   string
	Status ArtifactStatus

	// Err is set for failed artifacts and explains skipped ones.
	Err error
}

// EntityStatus summarizes an entity.
type EntityStatus string

const (
	// EntityGenerated means no artifact failed and at least one was created.
	EntityGenerated EntityStatus = "generated"

	// EntityPartial means some artifacts failed and others did not.
	EntityPartial EntityStatus = "partial"

	// EntityFailed means nothing could be generated.
	EntityFailed EntityStatus = "failed"

	// EntitySkipped means every artifact already existed.
	EntitySkipped EntityStatus = "skipped"
)

// EntityReport is the outcome of one entity.
type EntityReport struct {
	Name      string
	Forms     naming.Forms
	Status    EntityStatus
	Artifacts []ArtifactReport

	// Err is set when the entity failed before any artifact was attempted.
	Err error
}

// PhaseStatus is the outcome of a phase.
type PhaseStatus string

const (
	PhaseCompleted PhaseStatus = "completed"
	PhaseSkipped   PhaseStatus = "skipped"
	PhaseFailed    PhaseStatus = "failed"
	PhaseNotRun    PhaseStatus = "not run"
)

// PhaseReport is the outcome of one phase.
type PhaseReport struct {
	Phase  Phase
	Status PhaseStatus
	Label  string
	Paths  []string
	Err    error
}

// Summary is the result of a run. It is returned even when the run halts.
type Summary struct {
	Entities []EntityReport
	Phases   []PhaseReport
}

// Incomplete reports whether any entity failed or was only partly
// generated.
func (s *Summary) Incomplete() bool {
	for _, e := range s.Entities {
		if e.Status == EntityFailed || e.Status == EntityPartial {
			return true
		}
	}
	return false
}

// Count returns how many entities ended with status.
func (s *Summary) Count(status EntityStatus) int {
	n := 0
	for _, e := range s.Entities {
		if e.Status == status {
			n++
		}
	}
	return n
}

// Phase returns the report for p.
func (s *Summary) Phase(p Phase) (PhaseReport, bool) {
	for _, r := range s.Phases {
		if r.Phase == p {
			return r, true
		}
	}
	return PhaseReport{}, false
}
