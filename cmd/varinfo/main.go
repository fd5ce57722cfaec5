// Command varinfo computes the variance of the smoothed linear density
// field from a tabulated power spectrum.
//
// Usage:
//
//	varinfo -ps spectrum.txt [flags] [window-name ...]
//
// Without window arguments it computes all supported kinds.
//
// Examples:
//
//	varinfo -ps plin.txt tophat
//	varinfo -ps plin.txt -nrbin 32 -rmin 0.1 -rmax 50 sharpk
//	varinfo -ps plin.txt -o sigma2.txt sharpk
//	varinfo -ps plin.txt -plot variance.png tophat gaussian
//	varinfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-cosmo/power"
	"github.com/cwbudde/algo-cosmo/variance"
	"github.com/cwbudde/algo-cosmo/window"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

var kindNames = []string{"tophat", "sharpk", "gaussian", "smoothk"}

func main() {
	ps := flag.String("ps", "", "power-spectrum source: two-column table file or registered solver name")
	nrbin := flag.Int("nrbin", 100, "number of radius bins")
	rmin := flag.Float64("rmin", 0.01, "smallest smoothing radius [Mpc/h]")
	rmax := flag.Float64("rmax", 100, "largest smoothing radius [Mpc/h]")
	beta := flag.Float64("beta", 0, "smooth-k steepness, 0 selects the default")
	out := flag.String("o", "", "write the first profile to this file (three columns)")
	plotFile := flag.String("plot", "", "write a log-log PNG of sigma^2(R) to this file")
	list := flag.Bool("list", false, "list supported window names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: varinfo -ps <spectrum> [flags] [window-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Computes sigma^2(R) profiles of the smoothed linear density field.\n")
		fmt.Fprintf(os.Stderr, "Without window arguments, computes all supported kinds.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  varinfo -ps plin.txt tophat\n")
		fmt.Fprintf(os.Stderr, "  varinfo -ps plin.txt -nrbin 32 -rmin 0.1 -rmax 50 sharpk\n")
		fmt.Fprintf(os.Stderr, "  varinfo -ps plin.txt -plot variance.png tophat gaussian\n")
		fmt.Fprintf(os.Stderr, "  varinfo -list\n")
	}
	flag.Parse()

	if *list {
		for _, n := range kindNames {
			fmt.Println(n)
		}
		return
	}

	if *ps == "" {
		fmt.Fprintf(os.Stderr, "error: -ps is required (power-spectrum file or solver name)\n\n")
		flag.Usage()
		os.Exit(2)
	}

	tbl, err := power.Load(*ps, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	names := flag.Args()
	if len(names) == 0 {
		names = kindNames
	}
	kinds := resolveKinds(names)
	if len(kinds) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching window kinds\n")
		os.Exit(1)
	}

	profiles := make([]*variance.Profile, 0, len(kinds))
	for _, kind := range kinds {
		prof, err := variance.Compute(tbl, variance.Config{
			Window: kind,
			Beta:   *beta,
			NRBin:  *nrbin,
			RMin:   *rmin,
			RMax:   *rmax,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		profiles = append(profiles, prof)
	}

	printProfiles(kinds, profiles)

	if *out != "" {
		if err := variance.WriteProfileFile(*out, profiles[0]); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	if *plotFile != "" {
		if err := savePlot(*plotFile, kinds, profiles); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

func resolveKinds(names []string) []window.Kind {
	var kinds []window.Kind
	for _, name := range names {
		k, err := window.ParseKind(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: unknown window %q (use -list to see available)\n", name)
			continue
		}
		kinds = append(kinds, k)
	}
	return kinds
}

func printProfiles(kinds []window.Kind, profiles []*variance.Profile) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for i, kind := range kinds {
		if i > 0 {
			if _, err := fmt.Fprintln(tw); err != nil {
				fmt.Fprintf(os.Stderr, "error: failed to write output: %v\n", err)
				return
			}
		}
		if _, err := fmt.Fprintf(tw, "window: %s\nR [Mpc/h]\tsigma2\tdln(sigma2)/dln(R)\n---------\t------\t------------------\n", kind); err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
			return
		}

		p := profiles[i]
		for j := range p.R {
			if _, err := fmt.Fprintf(tw, "%.6e\t%.6e\t% .6e\n",
				p.R[j], p.Sigma2[j], p.DlnSigma2DlnR[j]); err != nil {
				fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
				return
			}
		}
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func savePlot(path string, kinds []window.Kind, profiles []*variance.Profile) error {
	p := plot.New()
	p.Title.Text = "Variance of the smoothed density field"
	p.X.Label.Text = "R [Mpc/h]"
	p.Y.Label.Text = "sigma^2(R)"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Legend.Top = true

	args := make([]any, 0, 2*len(kinds))
	for i, kind := range kinds {
		pts := make(plotter.XYs, len(profiles[i].R))
		for j := range profiles[i].R {
			pts[j].X = profiles[i].R[j]
			pts[j].Y = profiles[i].Sigma2[j]
		}
		args = append(args, kind.String(), pts)
	}
	if err := plotutil.AddLines(p, args...); err != nil {
		return fmt.Errorf("add profile lines: %w", err)
	}

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
