package state

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	before := time.Now()
	if !s.Update([]string{"one", "two"}, nil) {
		t.Fatalf("first Update should report a change")
	}

	snap := s.Snapshot()
	if len(snap.Lines) != 2 || snap.Lines[0] != "one" {
		t.Fatalf("snapshot lines = %#v, want [one two]", snap.Lines)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Lines[0] = "changed"
	if got := s.Snapshot().Lines; got[0] != "one" {
		t.Fatalf("Snapshot should clone lines; got %q want one", got[0])
	}
}

func TestStore_UpdateReportsChange(t *testing.T) {
	var s Store
	s.Update([]string{"a"}, nil)
	if s.Update([]string{"a"}, nil) {
		t.Fatalf("identical lines reported as a change")
	}
	if !s.Update([]string{"a", "b"}, nil) {
		t.Fatalf("appended line not reported as a change")
	}
}

func TestStore_UpdateErrorKeepsPreviousData(t *testing.T) {
	var s Store

	s.Update([]string{"kept"}, nil)

	origErr := errors.New("boom")
	if s.Update(nil, origErr) {
		t.Fatalf("failed Update should not report a change")
	}

	snap := s.Snapshot()
	if len(snap.Lines) != 1 || snap.Lines[0] != "kept" {
		t.Fatalf("lines changed on error: got %#v", snap.Lines)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
	if !errors.Is(snap.LastError, origErr) {
		t.Fatalf("cloned error should still wrap the original")
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	if snap := s.Snapshot(); snap.ConsecutiveFailures != 0 || snap.IsStale() {
		t.Fatalf("fresh store: failures=%d stale=%v", snap.ConsecutiveFailures, snap.IsStale())
	}

	s.Update(nil, errors.New("fail 1"))
	if snap := s.Snapshot(); snap.ConsecutiveFailures != 1 || snap.IsStale() {
		t.Fatalf("after 1 failure: failures=%d stale=%v", snap.ConsecutiveFailures, snap.IsStale())
	}

	s.Update(nil, errors.New("fail 2"))
	if snap := s.Snapshot(); snap.ConsecutiveFailures != 2 || !snap.IsStale() {
		t.Fatalf("after 2 failures: failures=%d stale=%v", snap.ConsecutiveFailures, snap.IsStale())
	}

	// Success resets counter
	s.Update([]string{"ok"}, nil)
	if snap := s.Snapshot(); snap.ConsecutiveFailures != 0 || snap.IsStale() {
		t.Fatalf("after success: failures=%d stale=%v", snap.ConsecutiveFailures, snap.IsStale())
	}
}
