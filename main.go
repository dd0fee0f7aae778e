package main

import (
	"context"
	"os"

	"github.com/ardnew/clog/cli"
	"github.com/ardnew/clog/log"
)

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)
	if err != nil {
		log.Errorf("run failed: %v", err)
		os.Exit(1)
	}
}
