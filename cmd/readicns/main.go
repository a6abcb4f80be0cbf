// Command readicns prints a table describing every element of an ICNS
// file: its OSType, framed length, recognized variant (if any), and
// whether this package can fully decode it.
//
// Usage:
//
//	readicns <file.icns>
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/julian-bruyers/icns"
)

func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()
	sugar := logger.Sugar()

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s <file.icns>\n", filepath.Base(os.Args[0]))
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	in, err := os.Open(flag.Arg(0))
	if err != nil {
		sugar.Fatalw("opening input", "path", flag.Arg(0), "error", err)
	}
	family, err := icns.ReadFamily(in)
	in.Close()
	if err != nil {
		sugar.Fatalw("reading family", "path", flag.Arg(0), "error", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintln(w, "OSTYPE\tLENGTH\tVARIANT\tDECODABLE")
	for _, element := range family.Elements {
		variant := "-"
		decodable := "no"
		if iconType, ok := icns.IconTypeFromOSType(element.OSType); ok {
			variant = iconType.String()
			if family.HasIconWithType(iconType) {
				decodable = "yes"
			}
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", element.OSType, element.TotalLength(), variant, decodable)
	}
	w.Flush()

	fmt.Printf("\n%d element(s), %d byte(s) total\n", len(family.Elements), family.TotalLength())
}
