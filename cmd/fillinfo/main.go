// Command fillinfo prints the CPU features relevant to memset, the fill
// tiers compiled into this binary, and which tier the dispatcher selects.
//
// Usage:
//
//	fillinfo [flags] [tier-name ...]
//
// Without arguments it reports every compiled-in tier. With -verify each
// listed tier that the CPU supports fills a buffer and the result is
// checked byte by byte.
//
// Examples:
//
//	fillinfo
//	fillinfo -verify
//	fillinfo -verify -size 65536 -value 0 sse2 avx
//	fillinfo -list
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/klauspost/cpuid/v2"

	"github.com/cwbudde/algo-memset/internal/cpu"
	"github.com/cwbudde/algo-memset/internal/fill/registry"
	"github.com/cwbudde/algo-memset/memset"
)

var allTiers = []memset.Tier{memset.TierAVX512, memset.TierAVX, memset.TierSSE2, memset.TierBaseline}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fillinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	size := fs.Int("size", 1<<20, "buffer length in bytes for -verify")
	value := fs.Uint("value", 0xab, "fill byte for -verify (0-255)")
	verify := fs.Bool("verify", false, "fill and check a buffer with every supported tier")
	list := fs.Bool("list", false, "list tier names")
	showCPU := fs.Bool("cpu", true, "print the CPU report")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: fillinfo [flags] [tier-name ...]\n\n")
		fmt.Fprintf(stderr, "Prints CPU features and memset fill tiers.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  fillinfo -verify\n")
		fmt.Fprintf(stderr, "  fillinfo -verify -size 65536 -value 0 sse2 avx\n")
		fmt.Fprintf(stderr, "  fillinfo -list\n")
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *list {
		for _, t := range allTiers {
			fmt.Fprintln(stdout, t)
		}
		return 0
	}

	if *value > 0xff {
		fmt.Fprintf(stderr, "error: -value %d out of range (0-255)\n", *value)
		return 2
	}
	if *size < 0 {
		fmt.Fprintf(stderr, "error: -size must not be negative\n")
		return 2
	}

	tiers := resolveTiers(fs.Args(), stderr)
	if len(tiers) == 0 {
		fmt.Fprintf(stderr, "error: no matching tiers\n")
		return 1
	}

	if *showCPU {
		if err := printCPU(stdout); err != nil {
			fmt.Fprintf(stderr, "error: failed to write CPU report: %v\n", err)
			return 1
		}
	}

	ok, err := printTiers(stdout, tiers, *verify, *size, byte(*value))
	if err != nil {
		fmt.Fprintf(stderr, "error: failed to write tier table: %v\n", err)
		return 1
	}
	if !ok {
		return 1
	}
	return 0
}

func resolveTiers(names []string, stderr io.Writer) []memset.Tier {
	if len(names) == 0 {
		return allTiers
	}

	var result []memset.Tier
	for _, name := range names {
		t, ok := memset.ParseTier(name)
		if !ok {
			fmt.Fprintf(stderr, "warning: unknown tier %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, t)
	}
	return result
}

func printCPU(w io.Writer) error {
	hw := cpu.Hardware()
	used := cpu.DetectFeatures()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"Brand", cpuid.CPU.BrandName},
		{"Vendor", cpuid.CPU.VendorString},
		{"Architecture", hw.Architecture},
		{"x86-64 level", fmt.Sprintf("v%d", cpuid.CPU.X64Level())},
		{"Cache line", bytesOrUnknown(cpuid.CPU.CacheLine)},
		{"L1D / L2 / L3", fmt.Sprintf("%s / %s / %s",
			bytesOrUnknown(cpuid.CPU.Cache.L1D), bytesOrUnknown(cpuid.CPU.Cache.L2), bytesOrUnknown(cpuid.CPU.Cache.L3))},
		{"Hardware", featureList(hw)},
		{"Usable", featureList(used)},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s:\t%s\n", r[0], r[1]); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(tw); err != nil {
		return err
	}
	return tw.Flush()
}

func printTiers(w io.Writer, tiers []memset.Tier, verify bool, size int, value byte) (bool, error) {
	features := cpu.DetectFeatures()
	selected := memset.Selected()
	allOK := true

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Tier\tWidth\tCompiled\tSupported\tSelected\tVerify\n"); err != nil {
		return false, err
	}
	if _, err := fmt.Fprintf(tw, "----\t-----\t--------\t---------\t--------\t------\n"); err != nil {
		return false, err
	}

	for _, t := range tiers {
		compiled := registry.Global.Find(cpu.SIMDLevel(t)) != nil
		supported := cpu.Supports(features, cpu.SIMDLevel(t))

		result := "-"
		if verify && compiled && supported {
			if verifyTier(t, size, value) {
				result = "ok"
			} else {
				result = "FAILED"
				allOK = false
			}
		}

		if _, err := fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\n",
			t,
			t.Width(),
			yesNo(compiled),
			yesNo(supported),
			yesNo(t == selected),
			result,
		); err != nil {
			return false, err
		}
	}
	return allOK, tw.Flush()
}

// verifyTier fills a buffer that starts one byte past a vector boundary, so
// every tier exercises its prefix, body and suffix paths.
func verifyTier(t memset.Tier, size int, value byte) bool {
	backing := make([]byte, size+1)
	for i := range backing {
		backing[i] = ^value
	}
	buf := backing[1:]

	if !memset.FillWith(t, buf, value) {
		return false
	}
	for _, b := range buf {
		if b != value {
			return false
		}
	}
	return backing[0] == ^value
}

func featureList(f cpu.Features) string {
	var names []string
	if f.HasSSE2 {
		names = append(names, "sse2")
	}
	if f.HasAVX {
		names = append(names, "avx")
	}
	if f.HasAVX512 {
		names = append(names, "avx512f")
	}
	if f.ForceGeneric {
		names = append(names, "(forced generic)")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, " ")
}

func bytesOrUnknown(n int) string {
	switch {
	case n <= 0:
		return "unknown"
	case n >= 1<<20 && n%(1<<20) == 0:
		return fmt.Sprintf("%d MiB", n>>20)
	case n >= 1<<10 && n%(1<<10) == 0:
		return fmt.Sprintf("%d KiB", n>>10)
	default:
		return fmt.Sprintf("%d B", n)
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
