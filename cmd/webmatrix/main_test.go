package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dwfe/tools/gm"
	"github.com/dwfe/tools/webmatrix"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{
		"-transform", "rotate(45deg)",
		"-format", "object",
		"-invert",
		"-point", "1,2",
		"-point", "-3.5, 4",
	})

	require.NoError(t, err)
	require.Equal(t, options{
		transform: "rotate(45deg)",
		format:    "object",
		invert:    true,
		points:    []gm.Point{gm.PointOf(1, 2), gm.PointOf(-3.5, 4)},
	}, opts)
}

func TestParseFlags_Defaults(t *testing.T) {
	opts, err := parseFlags(nil)
	require.NoError(t, err)
	require.Equal(t, "style", opts.format)
	require.Empty(t, opts.transform)
}

func TestParseFlags_Invalid(t *testing.T) {
	for _, args := range [][]string{
		{"-format", "xml"},
		{"-profile", "block"},
		{"-point", "1"},
		{"-point", "1,y"},
		{"extra"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			_, err := parseFlags(args)
			require.Error(t, err)
		})
	}
}

func TestRun_Transform(t *testing.T) {
	var out bytes.Buffer

	opts := options{
		transform: "translate(40px, 40px) scale(1.25) translate(-40px, -40px)",
		format:    "style",
		points:    []gm.Point{gm.PointOf(40, 40), gm.PointOf(0, 0)},
	}

	require.NoError(t, run(opts, strings.NewReader(""), &out))
	require.Equal(t, "matrix(1.25, 0, 0, 1.25, -10, -10)\n40,40 -> 40,40\n0,0 -> -10,-10\n", out.String())
}

func TestRun_Stdin(t *testing.T) {
	var out bytes.Buffer

	in := strings.NewReader("translate(1px, 10px) translateX(-10px) translateY(-5px)\n\n  scale(2)  \n")
	require.NoError(t, run(options{format: "string"}, in, &out))
	require.Equal(t, "1, 0, 0, 1, -9, 5\n2, 0, 0, 2, 0, 0\n", out.String())
}

func TestRun_Formats(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"style", "matrix(1, 2, 3, 4, 5, 6)\n"},
		{"string", "1, 2, 3, 4, 5, 6\n"},
		{"array", "[1,2,3,4,5,6]\n"},
		{"object", `{"a":1,"b":2,"c":3,"d":4,"e":5,"f":6}` + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var out bytes.Buffer
			opts := options{transform: "matrix(1, 2, 3, 4, 5, 6)", format: tt.format}
			require.NoError(t, run(opts, nil, &out))
			require.Equal(t, tt.want, out.String())
		})
	}
}

func TestRun_Decompose(t *testing.T) {
	var out bytes.Buffer

	opts := options{transform: "translate(10px, 20px) rotate(30deg) scale(2, 3)", format: "decompose"}
	require.NoError(t, run(opts, nil, &out))

	parsed, err := webmatrix.Parse(out.String())
	require.NoError(t, err)

	expected, err := webmatrix.Parse(opts.transform)
	require.NoError(t, err)
	require.True(t, webmatrix.IsEqual(expected, parsed), "got %s", out.String())
}

func TestRun_Invert(t *testing.T) {
	var out bytes.Buffer

	opts := options{transform: "scale(2, 4) translate(1px, 1px)", format: "array", invert: true}
	require.NoError(t, run(opts, nil, &out))

	var values [6]float64
	require.NoError(t, json.Unmarshal(out.Bytes(), &values))
	require.Equal(t, [6]float64{0.5, 0, 0, 0.25, -1, -1}, values)
}

func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer

	err := run(options{transform: "scale(0)", format: "style", invert: true}, nil, &out)
	require.ErrorIs(t, err, webmatrix.ErrNonInvertible)

	err = run(options{transform: "rotateX(10deg)", format: "style"}, nil, &out)
	require.ErrorIs(t, err, webmatrix.ErrUnsupported3D)

	err = run(options{format: "style"}, strings.NewReader("scale(1)\nrotate(1px)\n"), &out)
	require.ErrorIs(t, err, webmatrix.ErrSyntax)
	require.ErrorContains(t, err, "line 2")
}
