// Package main provides the ndarray CLI.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"

	"github.com/born-ml/ndarray/backend/cpu"
	"github.com/born-ml/ndarray/ndarray"
	"github.com/born-ml/ndarray/random"
)

const version = "v0.1.0-dev"

var flagSeed = flag.Uint("seed", 0, "seed for the random part of the demo")

func main() {
	klog.InitFlags(nil)
	flag.Usage = usage
	flag.Parse()
	defer klog.Flush()

	switch flag.Arg(0) {
	case "version":
		fmt.Printf("ndarray %s\n", version)
	case "demo":
		demo(uint32(*flagSeed)) //nolint:gosec // G115: flag documented as a 32-bit seed.
	default:
		usage()
		if flag.NArg() > 0 {
			os.Exit(2)
		}
	}
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "ndarray %s - n-dimensional arrays for Go\n\n", version)
	fmt.Fprintln(flag.CommandLine.Output(), "Usage: ndarray [flags] <command>")
	fmt.Fprintln(flag.CommandLine.Output(), "\nCommands:")
	fmt.Fprintln(flag.CommandLine.Output(), "  version    Show version")
	fmt.Fprintln(flag.CommandLine.Output(), "  demo       Walk through views, ufuncs, reductions and random arrays")
	fmt.Fprintln(flag.CommandLine.Output(), "\nFlags:")
	flag.PrintDefaults()
}

func demo(seed uint32) {
	backend := cpu.New()
	klog.V(1).Infof("backend %s, parallel config %+v", backend.Name(), backend.ParallelConfig())

	a := must.M1(ndarray.Arange(0, 10, 1, ndarray.Int16))
	even := must.M1(a.Slice(ndarray.Step(2)))
	rev := must.M1(a.Slice(ndarray.Step(-1)))
	fmt.Println("a        =", a)
	fmt.Println("a[::2]   =", even)
	fmt.Println("a[::-1]  =", rev)

	grid := must.M1(a.Reshape(2, 5))
	fmt.Println("reshape  =", grid)
	fmt.Println("grid.T   =", must.M1(grid.Transpose()))

	fmt.Println("sin(a[::2]) =", must.M1(backend.Sin(even)))

	mask := must.M1(backend.Greater(a, ndarray.Scalar(4, ndarray.Int16)))
	out := must.M1(ndarray.Full(a.Shape(), ndarray.Float64, -1))
	must.M1(backend.Cos(a, ndarray.Where(mask), ndarray.Out(out)))
	fmt.Println("cos(a, where=a>4) =", out)

	x := must.M1(ndarray.FromNested([][]float64{{3, math.NaN(), 1}, {math.NaN(), math.NaN(), math.NaN()}}))
	fmt.Println("x        =", x)
	fmt.Println("nanmin(x, axis=1) =", must.M1(backend.NanMin(x, ndarray.Axis(1))))
	if _, err := backend.NanArgmin(x, ndarray.Axis(1)); err != nil {
		fmt.Println("nanargmin(x, axis=1) failed:", err)
	}
	fmt.Println("argmax(grid, axis=0) =", must.M1(backend.Argmax(grid, ndarray.Axis(0))))

	rs := random.NewRandomState(seed)
	fmt.Println("rand(3)  =", must.M1(rs.Rand(3)))
	fmt.Println("randn(3) =", must.M1(rs.Randn(3)))
	draws := must.M1(rs.Randint(2, 5, ndarray.Int64, 100_000))
	mean := must.M1(must.M1(backend.Mean(draws)).Item())
	fmt.Printf("randint(2, 5) mean over %s draws (%s) = %.4f\n",
		humanize.Comma(int64(draws.NumElements())), humanize.Bytes(uint64(draws.ByteSize())), mean) //nolint:gosec // G115: sizes are non-negative.
	params := must.M1(ndarray.Arange(1, 6, 1, ndarray.Float64))
	fmt.Println("beta(1..5, 1..5) =", must.M1(rs.Beta(params, params)))
}
