// Command decint does arbitrary-precision integer arithmetic on decimal text.
//
// Usage:
//
//	decint [-format text|json|bsv] [-v] <a> [<op> <b>]
//
// With a single operand the canonical form is printed. Operators are +, -, *
// (or x, to avoid shell globbing) and cmp, which prints -1, 0 or 1.
package main

import (
	"bytes"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/calebcase/decint/control"
	"github.com/calebcase/decint/integer"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// Config holds the command-line configuration.
type Config struct {
	Format  string
	Verbose bool
}

func run(args []string, stdout, stderr io.Writer) int {
	var cfg Config

	fs := flag.NewFlagSet("decint", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Format, "format", "text", "output format: text, json or bsv")
	fs.BoolVar(&cfg.Verbose, "v", false, "enable debug logging")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: decint [-format text|json|bsv] [-v] <a> [<op> <b>]")
		fs.PrintDefaults()
	}

	err := fs.Parse(separate(args))
	if err != nil {
		return exitUsage
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: level,
	}))

	switch cfg.Format {
	case "text", "json", "bsv":
	default:
		logger.Error("unknown format", "format", cfg.Format)
		fs.Usage()

		return exitUsage
	}

	operands := fs.Args()
	if len(operands) != 1 && len(operands) != 3 {
		fs.Usage()

		return exitUsage
	}

	a, err := integer.Parse(operands[0])
	if err != nil {
		logger.Error("parsing operand", "operand", operands[0], "error", err)
		return exitError
	}

	result := a

	if len(operands) == 3 {
		op := operands[1]

		b, err := integer.Parse(operands[2])
		if err != nil {
			logger.Error("parsing operand", "operand", operands[2], "error", err)
			return exitError
		}

		logger.Debug("evaluating", "a", a, "op", op, "b", b, "digits", len(a.Digits())+len(b.Digits()))

		switch op {
		case "+":
			result = a.Add(b)
		case "-":
			result = a.Sub(b)
		case "*", "x":
			result = a.Mul(b)
		case "cmp":
			result = integer.New(int64(a.Cmp(b)))
		default:
			logger.Error("unknown operator", "op", op)
			fs.Usage()

			return exitUsage
		}
	}

	out, err := render(cfg.Format, result)
	if err != nil {
		logger.Error("rendering result", "format", cfg.Format, "error", err)
		return exitError
	}

	logger.Debug("result", "digits", len(result.Digits()), "bytes", len(out))

	_, err = fmt.Fprintln(stdout, out)
	if err != nil {
		logger.Error("writing result", "error", err)
		return exitError
	}

	return exitOK
}

// separate places a "--" before the first operand so negative numbers are not
// taken for flags.
func separate(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		}

		if i > 0 && args[i-1] == "-format" {
			continue
		}

		if _, err := integer.Parse(arg); err == nil {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")

			return append(out, args[i:]...)
		}
	}

	return args
}

func render(format string, x integer.Integer) (string, error) {
	switch format {
	case "json":
		data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(x)
		if err != nil {
			return "", err
		}

		return string(data), nil
	case "bsv":
		buf := bytes.NewBuffer(nil)

		enc := integer.NewEncoder(integer.Schema{Signed: true}, control.NewEncoder(buf))

		err := enc.Encode(integer.NullInteger{Integer: x, Valid: true})
		if err != nil {
			return "", err
		}

		return hex.EncodeToString(buf.Bytes()), nil
	}

	return x.String(), nil
}
