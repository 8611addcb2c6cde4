// Package exec runs local commands for revcache's git queries.
//
// It wraps os/exec behind the Executor interface so callers can be tested
// against a mock. Executors are immutable: every With* method returns a new
// Executor and leaves the receiver untouched, which lets one base executor be
// shared by goroutines that run queries concurrently (the streaming log request
// and the WIP queries of a load cycle, for example).
//
// # Basic Usage
//
//	e := exec.New()
//	res, err := e.WithDir("/repo").Run("git", "rev-parse", "HEAD")
//	if err != nil {
//		return err
//	}
//	fmt.Println(res.String())
//
// # Command Wrappers
//
// A wrapper prepends a fixed command name:
//
//	git := exec.NewWrapper(exec.New(exec.WithDisableColors()), "git")
//	res, err := git.WithDir("/repo").Run("show-ref", "-d")
//
// # Output
//
// Stdout and Stderr are captured as raw bytes. `git log -z` separates records
// with NUL bytes, so output is never decoded or trimmed here.
//
// # Errors
//
// A non-zero exit returns both the Result and an *ExecError carrying the exit
// code and captured stderr:
//
//	res, err := git.Run("rev-parse", "--revs-only", "HEAD")
//	var execErr *exec.ExecError
//	if errors.As(err, &execErr) {
//		fmt.Println(execErr.ExitCode, string(execErr.Stderr))
//	}
//
// # Cancellation
//
// WithContext and WithTimeout bound the process lifetime; cancelling the
// context kills the process.
package exec
