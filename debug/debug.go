package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse     bool
	Marshal   bool
	Unmarshal bool
	Patch     bool
	Eval      bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("CT_DEBUG_PARSE")
	d.Marshal = boolEnv("CT_DEBUG_MARSHAL")
	d.Unmarshal = boolEnv("CT_DEBUG_UNMARSHAL")
	d.Patch = boolEnv("CT_DEBUG_PATCH")
	d.Eval = boolEnv("CT_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Marshal() bool {
	return d.Marshal
}
func Unmarshal() bool {
	return d.Unmarshal
}
func Patch() bool {
	return d.Patch
}
func Eval() bool {
	return d.Eval
}
