// Command icns2png extracts one icon from an ICNS file and writes it as
// a PNG file beside the input.
//
// Usage:
//
//	icns2png <file.icns> [<ostype>]
//
// With no OSType given, the highest pixel-count icon available in the
// family is extracted. The output path is the input path with its
// extension replaced by ".png".
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/julian-bruyers/icns"
)

func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()
	sugar := logger.Sugar()

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s <file.icns> [<ostype>]\n", filepath.Base(os.Args[0]))
	}
	flag.Parse()
	if flag.NArg() < 1 || flag.NArg() > 2 {
		flag.Usage()
		os.Exit(2)
	}

	inputPath := flag.Arg(0)
	in, err := os.Open(inputPath)
	if err != nil {
		sugar.Fatalw("opening input", "path", inputPath, "error", err)
	}
	family, err := icns.ReadFamily(in)
	in.Close()
	if err != nil {
		sugar.Fatalw("reading family", "path", inputPath, "error", err)
	}

	iconType, err := pickIconType(family, flag.Arg(1))
	if err != nil {
		sugar.Fatalw("selecting icon", "error", err)
	}

	img, err := family.GetIconWithType(iconType)
	if err != nil {
		sugar.Fatalw("decoding icon", "variant", iconType, "error", err)
	}

	outputPath := strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".png"
	out, err := os.Create(outputPath)
	if err != nil {
		sugar.Fatalw("creating output", "path", outputPath, "error", err)
	}
	defer out.Close()
	if err := png.Encode(out, toGoImage(img)); err != nil {
		sugar.Fatalw("encoding PNG", "path", outputPath, "error", err)
	}
	sugar.Infow("wrote icon", "path", outputPath, "variant", iconType, "width", img.Width, "height", img.Height)
}

// pickIconType resolves the requested OSType, or the highest-pixel-count
// available icon if ostypeArg is empty.
func pickIconType(family icns.IconFamily, ostypeArg string) (icns.IconType, error) {
	if ostypeArg != "" {
		ostype, err := icns.ParseOSType(ostypeArg)
		if err != nil {
			return 0, err
		}
		iconType, ok := icns.IconTypeFromOSType(ostype)
		if !ok || !family.HasIconWithType(iconType) {
			return 0, fmt.Errorf("no decodable icon with OSType %q in this family", ostypeArg)
		}
		return iconType, nil
	}

	available := family.AvailableIcons()
	if len(available) == 0 {
		return 0, fmt.Errorf("no decodable icons in this family")
	}
	best := available[0]
	for _, t := range available[1:] {
		if t.PixelWidth()*t.PixelHeight() > best.PixelWidth()*best.PixelHeight() {
			best = t
		}
	}
	return best, nil
}

// toGoImage adapts an icns.Image to the standard library's image.Image
// interface for the PNG encoder, via image.NRGBA regardless of the
// source pixel format.
func toGoImage(img icns.Image) image.Image {
	rgba := img.ConvertTo(icns.RGBA)
	out := image.NewNRGBA(image.Rect(0, 0, rgba.Width, rgba.Height))
	for i := 0; i < rgba.Width*rgba.Height; i++ {
		o := 4 * i
		out.Set(i%rgba.Width, i/rgba.Width, color.NRGBA{
			R: rgba.Pix[o], G: rgba.Pix[o+1], B: rgba.Pix[o+2], A: rgba.Pix[o+3],
		})
	}
	return out
}
