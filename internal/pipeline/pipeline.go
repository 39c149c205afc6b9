// Package pipeline sequences entity generation and asset installation,
// isolating per-entity failures and driving progress.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	oerrors "github.com/apiforge/cli/internal/errors"
	"github.com/apiforge/cli/internal/naming"
	"github.com/apiforge/cli/internal/output"
	"github.com/apiforge/cli/internal/progress"
	"github.com/apiforge/cli/internal/templates"
	"github.com/apiforge/cli/internal/writer"
)

// ErrAlreadyRun is returned when Run is called a second time.
var ErrAlreadyRun = errors.New("pipeline has already run")

// errControllerMissing explains a route skipped because its controller
// could not be written.
var errControllerMissing = errors.New("controller was not written")

// AssetInstaller installs the fixed assets.
type AssetInstaller interface {
	InstallTranslations() ([]string, error)
	InstallLoggerConfig() (string, error)
	InstallBaseController() (string, error)
	InstallErrorHandler() (string, error)
}

// Config wires an Orchestrator.
type Config struct {
	// Deriver derives name forms. Nil uses the built-in irregulars.
	Deriver *naming.Deriver

	// Writers run in order for every entity.
	Writers []writer.Writer

	Installer AssetInstaller

	// Sink receives progress updates. Nil discards them.
	Sink progress.Sink
}

// Orchestrator runs the phases. It starts no goroutines and is not safe
// for concurrent use.
type Orchestrator struct {
	deriver   *naming.Deriver
	writers   []writer.Writer
	installer AssetInstaller
	reporter  *progress.Reporter
	phase     Phase
}

// New creates an orchestrator.
func New(cfg Config) (*Orchestrator, error) {
	if cfg.Installer == nil {
		return nil, fmt.Errorf("pipeline: asset installer is required")
	}
	reporter, err := progress.New(TotalSteps, cfg.Sink)
	if err != nil {
		return nil, err
	}
	deriver := cfg.Deriver
	if deriver == nil {
		deriver = naming.NewDeriver(nil)
	}
	return &Orchestrator{
		deriver:   deriver,
		writers:   cfg.Writers,
		installer: cfg.Installer,
		reporter:  reporter,
		phase:     Idle,
	}, nil
}

// Phase returns the current phase.
func (o *Orchestrator) Phase() Phase {
	return o.phase
}

// Progress returns the current progress state.
func (o *Orchestrator) Progress() progress.State {
	return o.reporter.State()
}

// Run executes every phase in order.
//
// Per-entity failures are recorded in the summary and never stop the run.
// A filesystem failure, an asset installation failure or cancellation of
// ctx halts the run: the failing phase is marked failed, later phases are
// marked not run, and the error is returned together with the summary.
// Files already written stay in place.
func (o *Orchestrator) Run(ctx context.Context, opts Options) (*Summary, error) {
	if o.phase != Idle {
		return nil, ErrAlreadyRun
	}
	defer o.reporter.Finish()

	summary := &Summary{}
	for i, phase := range workPhases {
		o.phase = phase

		report, err := o.runPhase(ctx, phase, opts, summary)
		summary.Phases = append(summary.Phases, report)
		if err != nil {
			for _, rest := range workPhases[i+1:] {
				summary.Phases = append(summary.Phases, PhaseReport{Phase: rest, Status: PhaseNotRun})
			}
			output.Debug("pipeline halted", "phase", phase, "err", err)
			return summary, fmt.Errorf("%s: %w", phase, err)
		}

		if err := o.reporter.Advance(); err != nil {
			return summary, err
		}
	}

	o.phase = Done
	o.reporter.SetLabel(labelDone)
	return summary, nil
}

func (o *Orchestrator) runPhase(ctx context.Context, phase Phase, opts Options, summary *Summary) (PhaseReport, error) {
	report := PhaseReport{Phase: phase}
	fail := func(err error) (PhaseReport, error) {
		report.Status = PhaseFailed
		report.Err = err
		return report, err
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	label, skip := phaseLabel(phase, opts)
	report.Label = label
	o.reporter.SetLabel(label)
	if skip {
		output.Debug("phase skipped", "phase", phase)
		report.Status = PhaseSkipped
		return report, nil
	}
	output.Debug("phase started", "phase", phase)

	var err error
	switch phase {
	case EntityGeneration:
		err = o.generateEntities(ctx, opts.Entities, summary)
	case LocalizedAssetInstall:
		report.Paths, err = o.installer.InstallTranslations()
	case LoggerConfigInstall:
		err = collect(&report, o.installer.InstallLoggerConfig)
	case ControllerAssetInstall:
		err = collect(&report, o.installer.InstallBaseController)
	case ErrorHandlerAssetInstall:
		err = collect(&report, o.installer.InstallErrorHandler)
	}
	if err != nil {
		return fail(err)
	}

	report.Status = PhaseCompleted
	return report, nil
}

func collect(report *PhaseReport, install func() (string, error)) error {
	p, err := install()
	if p != "" {
		report.Paths = append(report.Paths, p)
	}
	return err
}

// phaseLabel returns the progress label of phase and whether it is
// skipped for opts.
func phaseLabel(phase Phase, opts Options) (string, bool) {
	switch phase {
	case EntityGeneration:
		if len(opts.Entities) == 0 {
			return labelGenerationSkipped, true
		}
		return labelGenerating, false
	case LocalizedAssetInstall:
		if !opts.Translations {
			return labelTranslationsSkip, true
		}
		return labelTranslations, false
	case LoggerConfigInstall:
		return labelLoggerConfig, false
	case ControllerAssetInstall:
		return labelController, false
	case ErrorHandlerAssetInstall:
		return labelErrorHandler, false
	default:
		return "", true
	}
}

// generateEntities generates every entity in order. Only filesystem
// failures and cancellation are returned; everything else is recorded on
// the entity.
func (o *Orchestrator) generateEntities(ctx context.Context, entities []EntitySpec, summary *Summary) error {
	for _, spec := range entities {
		if err := ctx.Err(); err != nil {
			return err
		}
		report, err := o.generateEntity(spec)
		summary.Entities = append(summary.Entities, report)
		if err != nil {
			return err
		}
	}
	return nil
}

func (o *Orchestrator) generateEntity(spec EntitySpec) (EntityReport, error) {
	report := EntityReport{Name: spec.Name}

	forms, err := o.deriver.Derive(spec.Name)
	if err != nil {
		report.Status = EntityFailed
		report.Err = err
		output.Debug("invalid entity name", "name", spec.Name, "err", err)
		return report, nil
	}
	report.Forms = forms

	attrs, err := naming.ParseAttributes(forms.TypeName, strings.Join(spec.Attributes, ","))
	if err != nil {
		report.Status = EntityFailed
		report.Err = err
		return report, nil
	}

	entityLog := output.EntityLogger(forms.TypeName)
	controllerFailed := false

	for _, w := range o.writers {
		if w.Kind() == templates.Route && controllerFailed {
			report.Artifacts = append(report.Artifacts, ArtifactReport{
				Kind:   w.Kind(),
				Status: ArtifactSkipped,
				Err:    errControllerMissing,
			})
			continue
		}

		res, err := w.Write(forms, attrs)
		artifact := ArtifactReport{Kind: w.Kind(), Path: res.Path}
		switch {
		case err == nil:
			artifact.Status = ArtifactCreated
			if res.Action == writer.ActionAppended {
				artifact.Status = ArtifactAppended
			}
		case errors.Is(err, oerrors.ErrFileExists):
			artifact.Status = ArtifactSkipped
			artifact.Err = err
			var exists *oerrors.FileAlreadyExistsError
			if errors.As(err, &exists) {
				artifact.Path = exists.Path
			}
		case errors.Is(err, oerrors.ErrFilesystem):
			artifact.Status = ArtifactFailed
			artifact.Err = err
			report.Artifacts = append(report.Artifacts, artifact)
			report.Status = entityStatus(report.Artifacts)
			return report, err
		default:
			artifact.Status = ArtifactFailed
			artifact.Err = err
			if w.Kind() == templates.Controller {
				controllerFailed = true
			}
		}

		entityLog.Debug(string(artifact.Status), "artifact", artifact.Kind, "path", artifact.Path)
		report.Artifacts = append(report.Artifacts, artifact)
	}

	report.Status = entityStatus(report.Artifacts)
	return report, nil
}

// entityStatus derives an entity's status from its artifacts. Routes
// skipped for a missing controller do not count as attempted.
func entityStatus(artifacts []ArtifactReport) EntityStatus {
	attempted, failed, created := 0, 0, 0
	for _, a := range artifacts {
		if errors.Is(a.Err, errControllerMissing) {
			continue
		}
		attempted++
		switch a.Status {
		case ArtifactFailed:
			failed++
		case ArtifactCreated:
			created++
		}
	}

	switch {
	case failed > 0 && failed == attempted:
		return EntityFailed
	case failed > 0:
		return EntityPartial
	case created > 0:
		return EntityGenerated
	default:
		return EntitySkipped
	}
}
