package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Schema  bool
	Compile bool
	Parse   bool
	Scope   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Schema = boolEnv("JOLI_DEBUG_SCHEMA")
	d.Compile = boolEnv("JOLI_DEBUG_COMPILE")
	d.Parse = boolEnv("JOLI_DEBUG_PARSE")
	d.Scope = boolEnv("JOLI_DEBUG_SCOPE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Schema() bool {
	return d.Schema
}
func Compile() bool {
	return d.Compile
}
func Parse() bool {
	return d.Parse
}
func Scope() bool {
	return d.Scope
}
