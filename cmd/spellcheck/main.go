package main

import (
	"os"

	"github.com/golang/glog"
)

func main() {
	defer glog.Flush()
	if err := Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
