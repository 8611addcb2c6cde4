// Package loader orchestrates loading a repository into the revision cache.
//
// A load cycle resolves the repository root, refreshes the current branch,
// dispatches one streaming `git log` query and returns. When the log output
// arrives the loader splits it into records, computes the working-in-progress
// (WIP) state, loads references and branch distances, and publishes
// everything to the cache in one step:
//
//	l := loader.New(repo, revisions,
//		loader.WithLogger(log),
//		loader.WithListener(loader.ListenerFuncs{
//			Finished: func() { fmt.Println("ready") },
//		}),
//	)
//	if err := l.Load(ctx, loader.LoadOptions{ShowAll: true}); err != nil {
//		return err
//	}
//	l.Wait()
//
// Only one cycle runs at a time. A second Load while one is in flight is
// rejected with LOAD_IN_PROGRESS rather than queued. Cancel aborts the
// in-flight query and releases the loader at once; if the output still
// arrives it is discarded and never reaches the cache.
//
// UpdateWipRevision refreshes only the WIP row and ignores the cycle lock.
package loader
