package main

import (
	"context"
	"os"

	"github.com/vcs-tools/stage/internal/stage"
)

func main() {
	os.Exit(stage.Main(context.Background(), os.Args[1:]))
}
