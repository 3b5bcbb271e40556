// Package dbg turns opaque keys, such as edge handles, into readable names
// for debug logs. Names are handed out on first use and remembered for the
// life of the process, so only use it behind a debug-level check.
package dbg

import (
	"fmt"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

var (
	mu   sync.Mutex
	memo = make(map[interface{}]string)
)

func init() {
	// The same name does not mean the same thing across runs.
	petname.NonDeterministicMode()
}

// Name returns the readable name for key, which must be comparable.
func Name(key interface{}) string {
	if key == nil {
		return "Ø"
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", title(petname.Adjective()), title(petname.Name()))
	memo[key] = r
	return r
}

// Len reports how many names are remembered.
func Len() int {
	mu.Lock()
	defer mu.Unlock()
	return len(memo)
}

// Forget drops every remembered name. Long-running callers should call it
// once a subdivision is done with.
func Forget() {
	mu.Lock()
	defer mu.Unlock()
	memo = make(map[interface{}]string)
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
