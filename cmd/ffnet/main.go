// Package main provides the ffnet CLI.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

const version = "v0.1.0-dev"

func main() {
	log.SetFlags(0)
	log.SetPrefix("ffnet: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, w io.Writer) error {
	if len(args) == 0 {
		usage(w)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(w, "ffnet %s\n", version)
		return nil
	case "predict":
		return runPredict(args[1:], w)
	case "inspect":
		return runInspect(args[1:], w)
	case "help", "-h", "--help":
		usage(w)
		return nil
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "ffnet - feed-forward network evaluation")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  predict    Build a network and run one input through it")
	fmt.Fprintln(w, "  inspect    Build a network and print its parameters")
}

func runPredict(args []string, w io.Writer) error {
	cfg := DefaultConfig()
	var inputStr string

	fs := flag.NewFlagSet("predict", flag.ContinueOnError)
	fs.SetOutput(w)
	cfg.registerFlags(fs)
	fs.StringVar(&inputStr, "input", "", `input vector (e.g. "0 1")`)
	if err := fs.Parse(args); err != nil {
		return err
	}

	input, err := ParseVector(inputStr)
	if err != nil {
		return err
	}
	net, err := cfg.Build()
	if err != nil {
		return err
	}

	out, err := net.PredictFloats(input)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, formatVector(out))
	return nil
}

func runInspect(args []string, w io.Writer) error {
	cfg := DefaultConfig()

	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.SetOutput(w)
	cfg.registerFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	net, err := cfg.Build()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, net)
	for _, p := range net.Parameters() {
		fmt.Fprintf(w, "%s =\n%v\n", p.Name(), mat.Formatted(p.Value(), mat.Prefix(""), mat.Squeeze()))
	}
	return nil
}

func formatVector(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}
