package main

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"io"

	"github.com/fatih/color"
	"github.com/provide-io/pakfb/pkg/display"
	"github.com/provide-io/pakfb/pkg/lmp"
	"github.com/spf13/cobra"
)

const swatchSize = 16

func newPaletteCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Show the 256 colour palette, or write it as a PNG swatch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := openCatalog()
			if err != nil {
				return err
			}
			defer cat.Close()

			pal, err := lmp.LoadPalette(cat)
			if err != nil {
				return err
			}

			if output != "" {
				return writePNG(cmd.OutOrStdout(), output, paletteSwatch(pal))
			}
			printPalette(cmd.OutOrStdout(), pal, useColor(cmd.OutOrStdout()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write a 16x16 swatch PNG instead of printing")
	return cmd
}

// printPalette prints one row per 16 colours. Without colour support the
// hex values are printed instead of blocks.
func printPalette(w io.Writer, pal *lmp.Palette, colored bool) {
	for row := 0; row < 16; row++ {
		fmt.Fprintf(w, "%3d ", row*16)
		for col := 0; col < 16; col++ {
			c := pal.Get(uint8(row*16 + col))
			if colored {
				color.BgRGB(int(c.R), int(c.G), int(c.B)).Fprint(w, "  ")
			} else {
				fmt.Fprintf(w, " %02x%02x%02x", c.R, c.G, c.B)
			}
		}
		fmt.Fprintln(w)
	}
}

func paletteSwatch(pal *lmp.Palette) image.Image {
	colors := pal.ColorPalette()
	img := image.NewRGBA(image.Rect(0, 0, 16*swatchSize, 16*swatchSize))
	for i, c := range colors {
		x, y := (i%16)*swatchSize, (i/16)*swatchSize
		draw.Draw(img, image.Rect(x, y, x+swatchSize, y+swatchSize), image.NewUniform(c), image.Point{}, draw.Src)
	}
	return img
}

func writePNG(out io.Writer, path string, img image.Image) error {
	var buf bytes.Buffer
	if err := display.WritePNG(&buf, img); err != nil {
		return err
	}
	return writeOutput(out, path, buf.Bytes(), 0o644)
}
