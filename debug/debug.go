package debug

import (
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"
)

type debug struct {
	Read    bool
	Compile bool
	Match   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Read = boolEnv("SEXP_DEBUG_READ")
	d.Compile = boolEnv("SEXP_DEBUG_COMPILE")
	d.Match = boolEnv("SEXP_DEBUG_MATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Read() bool {
	return d.Read
}
func Compile() bool {
	return d.Compile
}
func Match() bool {
	return d.Match
}

func LogAny(v any) {
	d, err := yaml.MarshalWithOptions(v, yaml.JSON())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
