// Command png2icns wraps a single PNG file into a one-icon ICNS family.
//
// Usage:
//
//	png2icns <file.png> [<ostype>]
//
// With no OSType given, the variant is chosen automatically from the
// PNG's dimensions and whether it carries an alpha channel. The output
// path is the input path with its extension replaced by ".icns".
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/julian-bruyers/icns"
	"github.com/julian-bruyers/icns/internal/pngio"
)

func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()
	sugar := logger.Sugar()

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s <file.png> [<ostype>]\n", filepath.Base(os.Args[0]))
	}
	flag.Parse()
	if flag.NArg() < 1 || flag.NArg() > 2 {
		flag.Usage()
		os.Exit(2)
	}

	inputPath := flag.Arg(0)
	data, err := os.ReadFile(inputPath)
	if err != nil {
		sugar.Fatalw("reading input", "path", inputPath, "error", err)
	}
	decoded, err := pngio.Decode(data)
	if err != nil {
		sugar.Fatalw("decoding PNG", "path", inputPath, "error", err)
	}
	img := icns.Image{Format: pixelFormatFor(decoded.Format), Width: decoded.Width, Height: decoded.Height, Pix: decoded.Pix}

	family := icns.NewFamily()
	if ostypeArg := flag.Arg(1); ostypeArg != "" {
		ostype, err := icns.ParseOSType(ostypeArg)
		if err != nil {
			sugar.Fatalw("parsing OSType", "ostype", ostypeArg, "error", err)
		}
		iconType, ok := icns.IconTypeFromOSType(ostype)
		if !ok {
			sugar.Fatalw("unrecognized icon type", "ostype", ostypeArg)
		}
		if err := family.AddIconWithType(img, iconType); err != nil {
			sugar.Fatalw("adding icon", "variant", iconType, "error", err)
		}
	} else {
		if err := family.AddIcon(img); err != nil {
			sugar.Fatalw("adding icon", "error", err)
		}
	}

	outputPath := strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".icns"
	out, err := os.Create(outputPath)
	if err != nil {
		sugar.Fatalw("creating output", "path", outputPath, "error", err)
	}
	defer out.Close()
	if _, err := family.WriteTo(out); err != nil {
		sugar.Fatalw("writing family", "path", outputPath, "error", err)
	}
	sugar.Infow("wrote family", "path", outputPath, "elements", len(family.Elements))
}

func pixelFormatFor(format pngio.Format) icns.PixelFormat {
	switch format {
	case pngio.RGBA:
		return icns.RGBA
	case pngio.RGB:
		return icns.RGB
	case pngio.GrayAlpha:
		return icns.GrayAlpha
	case pngio.Gray:
		return icns.Gray
	default:
		return icns.RGBA
	}
}
