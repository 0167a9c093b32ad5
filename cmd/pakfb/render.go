package main

import (
	"fmt"
	"image"

	"github.com/provide-io/pakfb/internal/demo"
	"github.com/provide-io/pakfb/pkg"
	"github.com/provide-io/pakfb/pkg/display"
	"github.com/provide-io/pakfb/pkg/lmp"
	"github.com/spf13/cobra"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

func newRenderCmd() *cobra.Command {
	var (
		output  string
		width   int
		height  int
		frames  int
		caption string
		bitmap  string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the demo scene off-screen and save it as PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if frames < 1 {
				return fmt.Errorf("frames must be at least 1, got %d", frames)
			}

			cat, err := openCatalog()
			if err != nil {
				return err
			}
			defer cat.Close()

			fb, err := pkg.NewFramebuffer(width, height, cat)
			if err != nil {
				return err
			}

			scene := &demo.Scene{}
			if bitmap != "" {
				if scene.Bitmap, err = lmp.LoadImage(cat, bitmap); err != nil {
					return err
				}
			}

			surface := display.NewHeadless(width, height)
			for tick := 0; tick < frames; tick++ {
				scene.Draw(fb, uint64(tick))
				if err := surface.UpdateFrame(fb.ColorBuffer()); err != nil {
					return err
				}
			}
			logger.Debug("rendered frames", "count", surface.FrameCount())

			img := surface.Snapshot()
			if caption != "" {
				drawCaption(img, caption)
			}
			return writePNG(cmd.OutOrStdout(), output, img)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output PNG file or '-' for stdout (required)")
	cmd.Flags().IntVar(&width, "width", 800, "Framebuffer width")
	cmd.Flags().IntVar(&height, "height", 600, "Framebuffer height")
	cmd.Flags().IntVar(&frames, "frames", 1, "Number of frames to run before saving the last")
	cmd.Flags().StringVar(&caption, "caption", "", "Text drawn in the bottom left corner")
	cmd.Flags().StringVar(&bitmap, "bitmap", "", "lmp bitmap to blit in the top left corner")
	if err := cmd.MarkFlagRequired("output"); err != nil {
		panic(err)
	}
	return cmd
}

func drawCaption(img *image.RGBA, caption string) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P(4, img.Bounds().Dy()-face.Descent-2),
	}
	d.DrawString(caption)
}
