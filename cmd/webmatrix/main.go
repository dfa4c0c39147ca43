// Command webmatrix evaluates CSS transform lists into 2d matrices.
//
//	webmatrix -transform "translate(40px, 40px) scale(1.25) translate(-40px, -40px)"
//	matrix(1.25, 0, 0, 1.25, -10, -10)
//
// Without -transform, every non empty line on stdin is evaluated.
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/dwfe/tools/gm"
	"github.com/dwfe/tools/webmatrix"
	"github.com/pkg/profile"
)

var formats = []string{"style", "string", "array", "object", "decompose"}

type options struct {
	transform string
	format    string
	invert    bool
	points    []gm.Point
	verbose   bool
	profile   string
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}

		fmt.Fprintf(os.Stderr, "webmatrix: %v\n", err)
		os.Exit(2)
	}

	if err := execute(opts); err != nil {
		fmt.Fprintf(os.Stderr, "webmatrix: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (options, error) {
	var opts options

	fs := flag.NewFlagSet("webmatrix", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: webmatrix [flags]\n")
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.transform, "transform", "", "CSS transform list to evaluate, read from stdin if empty")
	fs.StringVar(&opts.format, "format", "style", "Output format: "+strings.Join(formats, ", "))
	fs.BoolVar(&opts.invert, "invert", false, "Print the inverse of the matrix")
	fs.BoolVar(&opts.verbose, "v", false, "Enable debug logging")
	fs.StringVar(&opts.profile, "profile", "", "Write a cpu or mem profile into the working directory")
	fs.Func("point", "Map the point x,y through the matrix (repeatable)", func(value string) error {
		p, err := parsePoint(value)
		if err != nil {
			return err
		}

		opts.points = append(opts.points, p)
		return nil
	})

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if !slices.Contains(formats, opts.format) {
		return options{}, fmt.Errorf("unknown format %q, expected one of %s", opts.format, strings.Join(formats, ", "))
	}

	switch opts.profile {
	case "", "cpu", "mem":
	default:
		return options{}, fmt.Errorf("unknown profile %q, expected cpu or mem", opts.profile)
	}

	return opts, nil
}

func execute(opts options) error {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	switch opts.profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	return run(opts, os.Stdin, os.Stdout)
}

func run(opts options, in io.Reader, out io.Writer) error {
	if opts.transform != "" {
		return evaluate(opts, opts.transform, out)
	}

	scanner := bufio.NewScanner(in)

	var lineNo int
	for scanner.Scan() {
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if err := evaluate(opts, line, out); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read transforms: %w", err)
	}

	return nil
}

func evaluate(opts options, transform string, out io.Writer) error {
	m, err := webmatrix.Parse(transform)
	if err != nil {
		return err
	}

	slog.Debug("Parsed transform",
		slog.String("transform", transform),
		slog.String("matrix", m.String()),
		slog.Float64("determinant", webmatrix.Determinant(m)))

	if opts.invert {
		m, err = webmatrix.Invert(m)
		if err != nil {
			return err
		}
	}

	formatted, err := formatMatrix(m, opts.format)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(out, formatted); err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	for _, p := range opts.points {
		mapped := webmatrix.Apply(m, p)
		if _, err := fmt.Fprintf(out, "%s -> %s\n", formatPoint(p), formatPoint(mapped)); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}

	return nil
}

func formatMatrix(m webmatrix.Matrix, format string) (string, error) {
	switch format {
	case "style":
		return m.StyleValue(), nil

	case "string":
		return m.String(), nil

	case "array":
		return marshal(webmatrix.ToArray(m))

	case "object":
		return marshal(webmatrix.ToObject(m))

	case "decompose":
		d, err := webmatrix.Decompose(m)
		if err != nil {
			return "", err
		}

		return d.String(), nil

	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}

func marshal(value any) (string, error) {
	encoded, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("encode matrix: %w", err)
	}

	return string(encoded), nil
}

func parsePoint(value string) (gm.Point, error) {
	xValue, yValue, ok := strings.Cut(value, ",")
	if !ok {
		return gm.Point{}, fmt.Errorf("point %q: expected x,y", value)
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(xValue), 64)
	if err != nil {
		return gm.Point{}, fmt.Errorf("point %q: %w", value, err)
	}

	y, err := strconv.ParseFloat(strings.TrimSpace(yValue), 64)
	if err != nil {
		return gm.Point{}, fmt.Errorf("point %q: %w", value, err)
	}

	return gm.PointOf(x, y), nil
}

func formatPoint(p gm.Point) string {
	return strconv.FormatFloat(p.X, 'f', -1, 64) + "," + strconv.FormatFloat(p.Y, 'f', -1, 64)
}
