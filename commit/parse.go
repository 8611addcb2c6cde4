package commit

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/jmgilman/go/revcache/errors"
)

// LogFormat is the --pretty format the parser expects. The trailing space
// keeps git from dropping an empty body.
const LogFormat = "%m%HX%P%n%cn<%ce>%n%an<%ae>%n%at%n%s%n%b "

// LogArgs returns the arguments of the streaming log query. revision is
// "--all" or a branch name; maxCount limits the output when positive.
func LogArgs(revision string, maxCount int) []string {
	args := []string{
		"log", "--date-order", "--no-color", "--log-size", "--parents",
		"--boundary", "-z", "--pretty=format:" + LogFormat,
	}
	if maxCount > 0 {
		args = append(args, "--max-count="+strconv.Itoa(maxCount))
	}
	if revision != "" {
		args = append(args, revision)
	}
	return args
}

const (
	logSizePrefix = "log size "
	boundaryMark  = '-'
	headerSep     = "X"
)

// Split breaks a log buffer on NUL and drops blank records.
func Split(buf []byte) []string {
	var out []string
	for _, chunk := range bytes.Split(buf, []byte{0}) {
		if len(bytes.TrimSpace(chunk)) == 0 {
			continue
		}
		out = append(out, string(chunk))
	}
	return out
}

// Parse parses one raw record.
func Parse(raw string) (Record, error) {
	raw = strings.TrimLeft(raw, "\n")
	lines := strings.Split(raw, "\n")

	if strings.HasPrefix(lines[0], logSizePrefix) {
		lines = lines[1:]
	}
	if len(lines) < 5 {
		return Record{}, errors.WithContext(
			errors.Newf(errors.CodeParseFailed, "record has %d lines, want at least 5", len(lines)),
			"record", preview(raw),
		)
	}

	header := lines[0]
	if header == "" {
		return Record{}, errors.New(errors.CodeParseFailed, "empty record header")
	}

	mark := header[0]
	sha, parents, _ := strings.Cut(header[1:], headerSep)
	if !IsObjectID(sha) {
		return Record{}, errors.WithContext(
			errors.Newf(errors.CodeParseFailed, "invalid commit hash %q", sha),
			"record", preview(raw),
		)
	}

	ts, err := strconv.ParseInt(strings.TrimSpace(lines[3]), 10, 64)
	if err != nil {
		return Record{}, errors.WithContext(
			errors.Wrap(err, errors.CodeParseFailed, "invalid author timestamp"),
			"sha", sha,
		)
	}

	rec := Record{
		SHA:        sha,
		Parents:    strings.Fields(parents),
		Committer:  ParseSignature(lines[1]),
		Author:     ParseSignature(lines[2]),
		AuthoredAt: ts,
		ShortLog:   lines[4],
		Boundary:   mark == boundaryMark,
	}
	if len(lines) > 5 {
		rec.LongLog = strings.TrimRight(strings.Join(lines[5:], "\n"), " \t\r\n")
	}

	return rec, nil
}

func preview(raw string) string {
	const limit = 80
	if len(raw) > limit {
		return raw[:limit] + "..."
	}
	return raw
}
