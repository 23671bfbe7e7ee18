package main

import (
	"context"
	"os"

	"github.com/consol-monitoring/check_icinga_rest/pkg/checkicingarest"
)

func main() {
	rc := checkicingarest.Check(context.Background(), os.Stdout, os.Stderr, os.Args[1:])
	os.Exit(rc)
}
