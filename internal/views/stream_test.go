package views

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func textSection(slot, body string, gate <-chan struct{}) Section {
	return Section{Slot: slot, Load: func(ctx context.Context) (templ.Component, error) {
		if gate != nil {
			select {
			case <-gate:
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		return templ.Raw(body), nil
	}}
}

func TestStreamPageFlushesShellThenSectionsAsTheyFinish(t *testing.T) {
	const (
		profileTemplate  = `<template id="t-profile">`
		sessionsTemplate = `<template id="t-sessions">`
	)
	profileGate := make(chan struct{})
	var b strings.Builder
	var flushes []string

	flush := func() error {
		flushes = append(flushes, b.String())
		// Let the profile finish only after the sessions section was written.
		if strings.Contains(b.String(), sessionsTemplate) {
			select {
			case <-profileGate:
			default:
				close(profileGate)
			}
		}
		return nil
	}

	complete, err := StreamPage(context.Background(), &b, flush, PageMeta{Title: "t"}, []Section{
		textSection("profile", "<p>profile</p>", profileGate),
		textSection("sessions", "<p>sessions</p>", nil),
	})
	if err != nil {
		t.Fatalf("StreamPage() = %v", err)
	}
	if !complete {
		t.Fatalf("expected complete stream")
	}

	if len(flushes) != 4 {
		t.Fatalf("expected shell, two sections and the document end to flush separately, got %d flushes", len(flushes))
	}
	shell := flushes[0]
	if !strings.Contains(shell, `id="slot-profile"`) || !strings.Contains(shell, `id="slot-sessions"`) {
		t.Fatalf("expected skeletons in first flush, got %q", shell)
	}
	if strings.Contains(shell, "<template") {
		t.Fatalf("expected no section in the shell flush")
	}

	got := b.String()
	sessionsAt, profileAt := strings.Index(got, sessionsTemplate), strings.Index(got, profileTemplate)
	if sessionsAt < 0 || profileAt < 0 || sessionsAt > profileAt {
		t.Fatalf("expected sessions to stream first, got %q", got)
	}
	if !strings.Contains(got, `<template id="t-profile"><p>profile</p></template><script>__swap("profile")</script>`) {
		t.Fatalf("unexpected section markup %q", got)
	}
	if !strings.HasSuffix(got, `</main></body></html>`) {
		t.Fatalf("expected closed document")
	}
}

func TestStreamPageFailedSection(t *testing.T) {
	var b strings.Builder
	failing := Section{Slot: "profile", Load: func(context.Context) (templ.Component, error) {
		return nil, errors.New("member m1 not found")
	}}

	complete, err := StreamPage(context.Background(), &b, nil, PageMeta{}, []Section{failing, textSection("sessions", "ok", nil)})
	if err != nil {
		t.Fatalf("StreamPage() = %v", err)
	}
	if complete {
		t.Fatalf("expected incomplete stream")
	}
	got := b.String()
	if !strings.Contains(got, "정보를 불러올 수 없습니다.") {
		t.Fatalf("expected failure state, got %q", got)
	}
	if strings.Contains(got, "m1 not found") {
		t.Fatalf("cause leaked into page")
	}
}

func TestStreamPageStopsOnFlushError(t *testing.T) {
	canceled := make(chan struct{})
	blocked := Section{Slot: "profile", Load: func(ctx context.Context) (templ.Component, error) {
		<-ctx.Done()
		close(canceled)
		return nil, ctx.Err()
	}}

	calls := 0
	flush := func() error {
		calls++
		if calls == 2 {
			return errors.New("client gone")
		}
		return nil
	}

	var b strings.Builder
	_, err := StreamPage(context.Background(), &b, flush, PageMeta{}, []Section{blocked, textSection("sessions", "ok", nil)})
	if err == nil {
		t.Fatalf("expected flush error")
	}
	<-canceled
}
