// Package env contains a snapshot of the environment used to
// configure a repository
package env

import (
	"os"
	"strings"
)

// Env represents the environment
type Env struct {
	env map[string]string
}

// NewFromOs builds and returns an Env using os.Environ
func NewFromOs() *Env {
	return NewFromKVList(os.Environ())
}

// NewFromKVList builds and returns an Env using a provided list of
// string in the form "key=value".
// Everything after the first "=" is part of the value
func NewFromKVList(env []string) *Env {
	e := &Env{
		make(map[string]string, len(env)),
	}
	for _, kv := range env {
		data := strings.SplitN(kv, "=", 2)
		if len(data) != 2 {
			continue
		}
		e.env[data[0]] = data[1]
	}
	return e
}

// Has returns whether the given key has a value set.
// Has is case-sensitive.
func (e *Env) Has(key string) bool {
	_, ok := e.env[key]
	return ok
}

// Get returns the value of the given key, or en empty string if the key
// has no values set.
// Get is case-sensitive.
func (e *Env) Get(key string) string {
	return e.env[key]
}

// GetBool returns whether the given key is set to a truthy value
// ("1", "yes", "true", case insensitive)
func (e *Env) GetBool(key string) bool {
	switch strings.ToLower(e.Get(key)) {
	case "yes", "1", "true":
		return true
	default:
		return false
	}
}
