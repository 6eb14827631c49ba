// Package debug holds the runtime tracing switches for the tableau
// engine, read once from the environment at process start.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Rules      bool
	Witness    bool
	Branch     bool
	CrossCheck bool
}

var d *debug

func init() {
	d = &debug{}
	d.Rules = boolEnv("TABLEAU_DEBUG_RULES")
	d.Witness = boolEnv("TABLEAU_DEBUG_WITNESS")
	d.Branch = boolEnv("TABLEAU_DEBUG_BRANCH")
	d.CrossCheck = boolEnv("TABLEAU_DEBUG_CROSSCHECK")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Rules reports whether individual tableau rule firings should be traced.
func Rules() bool {
	return d.Rules
}

// Witness reports whether witness allocation and resets should be traced.
func Witness() bool {
	return d.Witness
}

// Branch reports whether branch outcomes (closed when popped, open and
// saturated) should be traced.
func Branch() bool {
	return d.Branch
}

// CrossCheck reports whether the propositional SAT cross-check should run
// alongside the tableau for purely propositional formulas.
func CrossCheck() bool {
	return d.CrossCheck
}

// LogAny writes v to stderr as JSON, falling back to its default
// formatting when it cannot be marshaled.
func LogAny(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(b)
	os.Stderr.Write([]byte{'\n'})
}
