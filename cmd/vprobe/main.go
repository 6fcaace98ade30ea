// Command vprobe drives the virtualization engine headlessly.
//
//	vprobe run scenario.yaml
//	vprobe range --count 1000 --size 20 --offset 450 --viewport 200
package main

import (
	"os"

	"github.com/go-theft-auto/vgui/internal/probe"
)

var version = "dev"

func main() {
	if err := probe.NewRootCmd(version).Execute(); err != nil {
		os.Exit(1)
	}
}
