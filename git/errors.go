package git

import (
	"strings"

	"github.com/jmgilman/go/revcache/errors"
	"github.com/jmgilman/go/revcache/exec"
)

const maxStderrContext = 512

// classifyExecError maps a failed git invocation to a revcache error code.
// The underlying error stays in the chain.
func classifyExecError(err error, args []string) error {
	if err == nil {
		return nil
	}

	sub := "git"
	if len(args) > 0 {
		sub = "git " + args[0]
	}

	var execErr *exec.ExecError
	if !errors.As(err, &execErr) {
		return errors.Wrapf(err, errors.CodeQueryFailed, "%s failed", sub)
	}

	stderr := strings.TrimSpace(string(execErr.Stderr))

	code := errors.CodeQueryFailed
	switch {
	case execErr.Canceled():
		code = errors.CodeCanceled
	case execErr.TimedOut():
		code = errors.CodeTimeout
	case strings.Contains(stderr, "not a git repository"):
		code = errors.CodeNotRepository
	}

	if len(stderr) > maxStderrContext {
		stderr = stderr[:maxStderrContext]
	}

	return errors.WithContextMap(
		errors.Wrapf(err, code, "%s failed", sub),
		map[string]interface{}{
			"args":      strings.Join(args, " "),
			"exit_code": execErr.ExitCode,
			"stderr":    stderr,
		},
	)
}
