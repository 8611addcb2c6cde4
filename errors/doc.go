// Package errors provides the coded error type used throughout revcache.
//
// Every failure that leaves a package carries an ErrorCode identifying the
// condition (not a repository, load already running, git query failed, ...),
// a Severity that decides how loudly callers log it, and an optional context
// map. Values stay compatible with the standard library (errors.Is, errors.As,
// errors.Unwrap).
//
// Absence is not an error in this module: cache lookups return zero values,
// so there is deliberately no not-found code.
//
// # Creating and wrapping
//
//	err := errors.New(errors.CodeNotRepository, "working directory is not a git repository")
//
//	res, err := runner.Run("rev-parse", "--show-cdup")
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeQueryFailed, "failed to resolve repository root")
//	}
//
// # Context
//
//	err = errors.WithContext(err, "work_dir", dir)
//
// # Severity
//
// Conflicts such as a second load while one is running, or a cancelled cycle,
// are expected during normal operation and carry SeverityWarning. Everything
// else defaults to SeverityError:
//
//	if errors.GetSeverity(err) == errors.SeverityWarning {
//	    log.Warn().Err(err).Msg("load rejected")
//	}
package errors
