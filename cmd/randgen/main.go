package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/BTBurke/randgen"
	"github.com/spf13/pflag"
)

func main() {

	opts, err := randgen.ParseCommandLine()
	if err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Printf("Could not parse configuration: %s\n\nUse randgen --help for options\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	cmd, errs := randgen.New(opts...)
	if len(errs) > 0 {
		fmt.Println("Error in config:")
		for _, e := range errs {
			fmt.Println(e)
		}
		os.Exit(1)
	}

	if err := cmd.Run(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Generation error:", err)
		cmd.Wait()
		os.Exit(1)
	}
	cmd.Wait()

	os.Exit(0)
}
