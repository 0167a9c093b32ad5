package main

import (
	"fmt"
	"image"

	"github.com/nfnt/resize"
	"github.com/provide-io/pakfb/pkg/lmp"
	"github.com/spf13/cobra"
)

func newLmp2PngCmd() *cobra.Command {
	var (
		output string
		scale  float64
	)

	cmd := &cobra.Command{
		Use:   "lmp2png NAME",
		Short: "Convert an lmp bitmap to PNG using the catalog palette",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if scale <= 0 {
				return fmt.Errorf("scale must be positive, got %v", scale)
			}

			cat, err := openCatalog()
			if err != nil {
				return err
			}
			defer cat.Close()

			pal, err := lmp.LoadPalette(cat)
			if err != nil {
				return err
			}
			bitmap, err := lmp.LoadImage(cat, args[0])
			if err != nil {
				return err
			}
			logger.Debug("loaded bitmap", "name", args[0], "image", bitmap.String())

			var img image.Image = bitmap.Paletted(pal)
			if scale != 1 {
				w := uint(float64(bitmap.Width())*scale + 0.5)
				h := uint(float64(bitmap.Height())*scale + 0.5)
				if w == 0 || h == 0 {
					return fmt.Errorf("scale %v leaves an empty image", scale)
				}
				img = resize.Resize(w, h, img, resize.NearestNeighbor)
			}

			return writePNG(cmd.OutOrStdout(), output, img)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output PNG file or '-' for stdout (required)")
	cmd.Flags().Float64Var(&scale, "scale", 1, "Scale factor, nearest neighbour")
	if err := cmd.MarkFlagRequired("output"); err != nil {
		panic(err)
	}
	return cmd
}
