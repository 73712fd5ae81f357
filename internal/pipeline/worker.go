package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"
)

// Worker drives a single collection job through the processor.
type Worker struct {
	processor *Processor
	log       *slog.Logger
}

func NewWorker(processor *Processor, log *slog.Logger) *Worker {
	return &Worker{processor: processor, log: log}
}

// Process runs the collection pipeline for a job and stores the result
// on the job. Failures mark the job failed; they never propagate.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "collection", job.CollectionDir)

	job.SetStatus(StatusProcessing, "starting")
	out, err := w.processor.ProcessCollection(ctx, job.CollectionDir, func(phase string) {
		job.SetStatus(StatusProcessing, phase)
	})
	if err != nil {
		log.Error("collection processing failed", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "failed")
		return
	}

	if err := WriteOutput(filepath.Join(job.CollectionDir, OutputFileName), out); err != nil {
		// The result is still served from the job; only persistence failed.
		log.Warn("could not write output file", "error", err)
		job.AddError(err.Error())
	}

	job.SetResult(out)
	job.SetStatus(StatusCompleted, "done")
	log.Info("collection processed",
		"sections", len(out.ExtractedSections),
		"subsections", len(out.SubsectionAnalysis),
	)
}
