package award

import (
	"testing"
	"time"
)

func TestRedirectSchedulerFires(t *testing.T) {
	s := NewRedirectScheduler()
	defer s.Stop()

	fired := make(chan *Redirect, 1)
	r := &Redirect{TargetSlug: "department", Delay: 10 * time.Millisecond}
	s.Schedule("session-1", r, func(got *Redirect) { fired <- got })

	select {
	case got := <-fired:
		if got.TargetSlug != "department" {
			t.Errorf("target = %s", got.TargetSlug)
		}
	case <-time.After(time.Second):
		t.Fatal("redirect never fired")
	}
	if s.Pending("session-1") {
		t.Error("fired redirect still pending")
	}
}

func TestRedirectSchedulerCancel(t *testing.T) {
	s := NewRedirectScheduler()
	defer s.Stop()

	fired := make(chan struct{}, 1)
	r := &Redirect{TargetSlug: "department", Delay: 20 * time.Millisecond}
	s.Schedule("session-1", r, func(*Redirect) { fired <- struct{}{} })

	if !s.Pending("session-1") {
		t.Fatal("expected pending redirect")
	}
	if !s.Cancel("session-1") {
		t.Fatal("cancel reported nothing pending")
	}
	if s.Cancel("session-1") {
		t.Error("second cancel should report nothing pending")
	}

	select {
	case <-fired:
		t.Error("cancelled redirect fired")
	case <-time.After(60 * time.Millisecond):
	}
}

func TestRedirectSchedulerReschedule(t *testing.T) {
	s := NewRedirectScheduler()
	defer s.Stop()

	fired := make(chan string, 2)
	first := &Redirect{TargetSlug: "department", Delay: 30 * time.Millisecond}
	second := &Redirect{TargetSlug: "green", Delay: 10 * time.Millisecond}
	s.Schedule("k", first, func(r *Redirect) { fired <- r.TargetSlug })
	s.Schedule("k", second, func(r *Redirect) { fired <- r.TargetSlug })

	select {
	case slug := <-fired:
		if slug != "green" {
			t.Errorf("fired %s, want green", slug)
		}
	case <-time.After(time.Second):
		t.Fatal("rescheduled redirect never fired")
	}

	select {
	case slug := <-fired:
		t.Errorf("superseded redirect fired: %s", slug)
	case <-time.After(60 * time.Millisecond):
	}
}
