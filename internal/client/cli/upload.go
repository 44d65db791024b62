package cli

import (
	"context"
	"fmt"
)

func (a *App) Upload(ctx context.Context, paths []string) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in")
		return nil
	}

	batch, err := a.session.Upload(ctx, paths)
	if err != nil {
		printlnFn("Upload failed:", err.Error())
		return err
	}

	for _, rejected := range batch.Invalid {
		printlnFn(fmt.Sprintf("Rejected %s: %s", rejected.Pick.Path, rejected.Reason))
	}

	failed := 0
	for _, e := range a.session.Pipeline.Snapshot() {
		if e.Err != nil {
			failed++
		}
	}

	accepted := len(batch.Keys)
	switch {
	case failed > 0:
		printlnFn(fmt.Sprintf("Submitted %d file(s), %d failed; see 'pending'", accepted, failed))
	case accepted > 0:
		printlnFn(fmt.Sprintf("Uploaded %d file(s)", accepted))
	}
	return nil
}

func (a *App) Retry(ctx context.Context, key string) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in")
		return nil
	}

	if err := a.session.Pipeline.RetryEntry(ctx, key); err != nil {
		printlnFn("Retry failed:", err.Error())
		return err
	}
	printlnFn("Retry finished; see 'pending' for leftovers")
	return nil
}

func (a *App) Discard(ctx context.Context, key string) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in")
		return nil
	}

	a.session.Pipeline.Discard(key)
	printlnFn("Discarded", key)
	return nil
}

func (a *App) Delete(ctx context.Context, id string) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in")
		return nil
	}

	if err := a.session.Delete(ctx, id); err != nil {
		printlnFn("Delete failed:", err.Error())
		return err
	}
	printlnFn("Deleted", id)
	return nil
}
