// Package watch keeps a revision cache fresh from filesystem events.
//
// Changes in the working tree or the index refresh the WIP row; changes to
// HEAD or any reference trigger a full reload. Bursts of events are
// coalesced into a single action per debounce window.
//
//	w, err := watch.New(repoRoot, ldr, watch.WithDebounce(300*time.Millisecond))
//	if err != nil {
//		return err
//	}
//	defer w.Close()
//	return w.Run(ctx)
package watch
