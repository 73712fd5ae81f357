package pipeline

import (
	"testing"
	"time"
)

func TestNewJob_InitialState(t *testing.T) {
	job := NewJob("/data/collection1")
	if job.Status != StatusQueued {
		t.Errorf("status = %q, want %q", job.Status, StatusQueued)
	}
	if job.Phase != "queued" {
		t.Errorf("phase = %q, want queued", job.Phase)
	}
	if len(job.ID) != 20 {
		t.Errorf("job id length = %d, want 20", len(job.ID))
	}
	if job.CollectionDir != "/data/collection1" {
		t.Errorf("collection dir = %q", job.CollectionDir)
	}
}

func TestJob_StateTransitions(t *testing.T) {
	job := NewJob("/data/collection1")

	job.SetStatus(StatusProcessing, "parsing")
	if job.Status != StatusProcessing || job.Phase != "parsing" {
		t.Errorf("after SetStatus: %q / %q", job.Status, job.Phase)
	}

	job.AddError("document missing")
	job.SetResult(&Output{})
	job.SetStatus(StatusCompleted, "done")

	snap := job.Snapshot()
	if snap.Status != StatusCompleted {
		t.Errorf("snapshot status = %q", snap.Status)
	}
	if snap.Result == nil {
		t.Error("snapshot lost result")
	}
	if len(snap.Errors) != 1 || snap.Errors[0] != "document missing" {
		t.Errorf("snapshot errors = %v", snap.Errors)
	}

	// The snapshot's error slice is a copy.
	snap.Errors[0] = "mutated"
	if job.Snapshot().Errors[0] != "document missing" {
		t.Error("snapshot shares error slice with job")
	}
}

func TestJobStore_TTLEviction(t *testing.T) {
	store := NewJobStore(time.Hour)

	fresh := NewJob("/data/fresh")
	stale := NewJob("/data/stale")
	stale.UpdatedAt = time.Now().Add(-2 * time.Hour)

	store.Put(fresh)
	store.Put(stale)
	store.Cleanup()

	if store.Get(fresh.ID) == nil {
		t.Error("fresh job evicted")
	}
	if store.Get(stale.ID) != nil {
		t.Error("stale job not evicted")
	}
}

func TestContentHashHex(t *testing.T) {
	a := ContentHashHex([]byte("collection"))
	b := ContentHashHex([]byte("collection"))
	c := ContentHashHex([]byte("different"))

	if a != b {
		t.Error("hash not deterministic")
	}
	if a == c {
		t.Error("distinct inputs collided")
	}
	if len(a) != 64 {
		t.Errorf("hex digest length = %d, want 64", len(a))
	}
}

func TestNewJobID_DistinctPerInvocation(t *testing.T) {
	a := NewJob("/data/collection1")
	time.Sleep(time.Millisecond)
	b := NewJob("/data/collection1")
	if a.ID == b.ID {
		t.Error("expected distinct job ids for repeated submissions")
	}
}
