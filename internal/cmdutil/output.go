package cmdutil

import (
	"errors"
	"fmt"

	oerrors "github.com/apiforge/cli/internal/errors"
	"github.com/apiforge/cli/internal/output"
	"github.com/apiforge/cli/internal/pipeline"
)

// PrintError prints err in a user-friendly format. DetailErrors print a
// summary line followed by their detail block.
func PrintError(msg string, err error) {
	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		output.Error(fmt.Sprintf("%s: %s", msg, detail.Type), "location", detail.Location)
		output.Details(detail.Error())
		return
	}
	output.Error(msg, "error", err)
}

// WriteSummary writes one line per artifact under its entity logger,
// then the phase outcomes and a closing summary line.
func WriteSummary(summary *pipeline.Summary) {
	for _, entity := range summary.Entities {
		writeEntity(entity)
	}

	for _, phase := range summary.Phases {
		if phase.Phase == pipeline.EntityGeneration {
			continue
		}
		status := string(phase.Status)
		switch {
		case phase.Err != nil:
			output.Error(output.FormatArtifactLine("asset", phase.Phase.String(), status), "error", phase.Err)
		case len(phase.Paths) == 0:
			output.Info(output.FormatArtifactLine("asset", phase.Phase.String(), status))
		default:
			for _, path := range phase.Paths {
				output.Info(output.FormatArtifactLine("asset", path, output.StatusCopied))
			}
		}
	}

	output.Println(summaryLine(summary))
}

func writeEntity(entity pipeline.EntityReport) {
	log := output.EntityLogger(entity.Name)

	if entity.Err != nil {
		log.Error(output.StatusStyle(output.StatusFailed).Render(string(entity.Status)), "error", entity.Err)
		return
	}

	for _, a := range entity.Artifacts {
		line := output.FormatArtifactLine(string(a.Kind), a.Path, string(a.Status))
		switch a.Status {
		case pipeline.ArtifactFailed:
			log.Error(line, "error", a.Err)
		case pipeline.ArtifactSkipped:
			if a.Err != nil {
				log.Warn(line, "reason", a.Err)
			} else {
				log.Warn(line)
			}
		default:
			log.Info(line)
		}
	}
}

func summaryLine(summary *pipeline.Summary) string {
	counts := fmt.Sprintf("%d generated, %d partial, %d failed, %d skipped",
		summary.Count(pipeline.EntityGenerated),
		summary.Count(pipeline.EntityPartial),
		summary.Count(pipeline.EntityFailed),
		summary.Count(pipeline.EntitySkipped))

	if summary.Incomplete() {
		return output.FormatCross(output.StyleSummary.Render("Build incomplete: " + counts))
	}
	return output.FormatCheckmark(output.StyleSummary.Render("Build complete: " + counts))
}

// WriteFileTree prints the files the run wrote under root, each marked
// with how it was written. Nothing is printed when no file was written.
func WriteFileTree(root string, summary *pipeline.Summary) {
	files := map[string]string{}
	for _, entity := range summary.Entities {
		for _, a := range entity.Artifacts {
			if a.Status == pipeline.ArtifactCreated || a.Status == pipeline.ArtifactAppended {
				files[a.Path] = string(a.Status)
			}
		}
	}
	for _, phase := range summary.Phases {
		for _, path := range phase.Paths {
			files[path] = output.StatusCopied
		}
	}

	if tree := output.RenderFileTree(root, files); tree != "" {
		output.Println(tree)
	}
}
