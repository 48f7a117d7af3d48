package main

import (
	"fmt"
	"os"

	_ "github.com/brimdata/vlong/cmd/vlong/decode"
	_ "github.com/brimdata/vlong/cmd/vlong/encode"
	"github.com/brimdata/vlong/cmd/vlong/root"
	_ "github.com/brimdata/vlong/cmd/vlong/size"
)

func main() {
	if err := root.Vlong.ExecRoot(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
