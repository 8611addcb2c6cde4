package exec

import (
	"context"
	"os"
	"sort"
	"time"
)

// settings is the full configuration of a Command. It is copied on every
// With* call so that Commands can be shared between goroutines.
type settings struct {
	ctx           context.Context
	env           map[string]string
	dir           string
	inheritEnv    bool
	disableColors bool
	timeout       time.Duration
}

func newSettings() *settings {
	return &settings{
		ctx: context.Background(),
		env: make(map[string]string),
	}
}

func (s *settings) clone() *settings {
	c := *s
	c.env = make(map[string]string, len(s.env))
	for k, v := range s.env {
		c.env[k] = v
	}
	return &c
}

func (s *settings) addEnv(env map[string]string) {
	for k, v := range env {
		s.env[k] = v
	}
}

// environ builds the process environment. A nil result makes os/exec use
// the parent environment, so an empty non-nil slice is returned when nothing
// should be inherited.
func (s *settings) environ() []string {
	out := []string{}
	if s.inheritEnv {
		out = append(out, os.Environ()...)
	}

	extra := make(map[string]string, len(s.env)+5)
	for k, v := range s.env {
		extra[k] = v
	}
	if s.disableColors {
		extra["NO_COLOR"] = "1"
		extra["TERM"] = "dumb"
		extra["CLICOLOR"] = "0"
		extra["CLICOLOR_FORCE"] = "0"
		extra["FORCE_COLOR"] = "0"
	}

	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out = append(out, k+"="+extra[k])
	}
	return out
}
