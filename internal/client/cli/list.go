package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dmitrijs2005/albumkeeper/internal/media"
)

func (a *App) List(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in")
		return nil
	}

	records, err := a.session.List(ctx)
	if err != nil {
		printlnFn("List failed:", err.Error())
		return err
	}

	for _, rec := range records {
		if rec.Deleted {
			continue
		}
		printlnFn(a.formatRecord(ctx, rec))
	}
	return nil
}

func (a *App) formatRecord(ctx context.Context, rec media.Record) string {
	ref, err := media.Identify(rec)
	if err != nil {
		return fmt.Sprintf("%s  <malformed record>", rec.ID)
	}

	if ref.Kind == media.KindVideo && !rec.Ready {
		return fmt.Sprintf("%s  video  processing", rec.ID)
	}

	var url string
	if ref.Kind == media.KindVideo {
		url = a.session.Resolver.RenderVideoURL(ctx, rec)
	} else {
		url = a.session.Resolver.RenderImageURL(ctx, rec)
	}
	return fmt.Sprintf("%s  %s  %s", rec.ID, ref.Kind, url)
}

// Pending prints the live optimistic entries: uploads still in flight and
// failures awaiting a retry or discard decision.
func (a *App) Pending(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in")
		return nil
	}

	entries := a.session.Pipeline.Snapshot()
	if len(entries) == 0 {
		printlnFn("No pending uploads")
		return nil
	}

	for _, e := range entries {
		line := fmt.Sprintf("%s  %s  %s  %.0f%%", e.Key, filepath.Base(e.LocalPath), e.Status, e.Progress*100)
		if e.Err != nil {
			line += "  " + e.Err.Error()
		}
		printlnFn(line)
	}
	return nil
}
