package views

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"
)

// Section is one independently loaded part of a streamed page. Slot names
// are fixed identifiers, never user input.
type Section struct {
	Slot string
	Load func(ctx context.Context) (templ.Component, error)
}

type sectionResult struct {
	slot string
	html []byte
	ok   bool
}

// StreamPage writes the shell with one skeleton per section and flushes it,
// then fills the slots in whatever order the loads finish. It reports
// whether every section loaded. A write or flush error stops the stream and
// cancels the loads still running.
func StreamPage(ctx context.Context, w io.Writer, flush func() error, meta PageMeta, sections []Section) (bool, error) {
	h := &htmlWriter{w: w}
	h.render(ctx, DocumentStart(meta))
	for _, s := range sections {
		h.render(ctx, Skeleton(s.Slot))
	}
	if h.err == nil && flush != nil {
		h.err = flush()
	}
	if h.err != nil {
		return false, h.err
	}

	complete, err := streamSections(ctx, w, flush, sections)
	if err != nil {
		return false, err
	}

	h.render(ctx, DocumentEnd())
	if h.err == nil && flush != nil {
		h.err = flush()
	}
	return complete, h.err
}

func streamSections(ctx context.Context, w io.Writer, flush func() error, sections []Section) (bool, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan sectionResult, len(sections))
	for _, s := range sections {
		go func() {
			results <- loadSection(ctx, s)
		}()
	}

	complete := true
	for range sections {
		var r sectionResult
		select {
		case r = <-results:
		case <-ctx.Done():
			return false, ctx.Err()
		}
		complete = complete && r.ok

		h := &htmlWriter{w: w}
		h.raw(`<template id="t-`, r.slot, `">`, string(r.html), `</template><script>__swap("`, r.slot, `")</script>`)
		if h.err == nil && flush != nil {
			h.err = flush()
		}
		if h.err != nil {
			return false, h.err
		}
	}
	return complete, nil
}

func loadSection(ctx context.Context, s Section) sectionResult {
	var buf bytes.Buffer
	c, err := s.Load(ctx)
	if err == nil {
		err = c.Render(ctx, &buf)
	}
	if err != nil {
		buf.Reset()
		_ = SectionFailed().Render(ctx, &buf)
		return sectionResult{slot: s.Slot, html: buf.Bytes()}
	}
	return sectionResult{slot: s.Slot, html: buf.Bytes(), ok: true}
}
