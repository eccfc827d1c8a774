package commands

import (
	"fmt"
	"image"
	"log"

	"github.com/spf13/cobra"

	"github.com/justyntemme/folderlike/internal/assets"
	"github.com/justyntemme/folderlike/internal/catalog"
)

func coverCmd() *cobra.Command {
	var (
		out           string
		width, height int
	)
	cmd := &cobra.Command{
		Use:   "cover <ref>",
		Short: "Write the cover for an image ref as PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := args[0]
			if out == "" {
				out = ref + ".png"
			}
			if width <= 0 || height <= 0 {
				return fmt.Errorf("invalid size %dx%d", width, height)
			}

			books := catalog.Default().All()
			store, err := assets.NewStore(cfgManager.Get().Assets.Dir, books)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
			}

			img, err := resolveCover(store, books, ref, width, height)
			if err != nil {
				return err
			}

			if err := assets.SavePNG(out, img); err != nil {
				return fmt.Errorf("save %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d)\n", out, img.Bounds().Dx(), img.Bounds().Dy())
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default <ref>.png)")
	cmd.Flags().IntVar(&width, "width", assets.PlaceholderWidth, "placeholder width in pixels")
	cmd.Flags().IntVar(&height, "height", assets.PlaceholderHeight, "placeholder height in pixels")
	return cmd
}

// resolveCover prefers the cover file for ref and falls back to a
// placeholder of the requested size when there is none or it does not decode.
func resolveCover(store *assets.Store, books []catalog.Book, ref string, width, height int) (image.Image, error) {
	var fileErr error
	if _, ok := store.Path(ref); ok {
		img, err := store.File(ref)
		if err == nil {
			return img, nil
		}
		fileErr = err
	}
	b, ok := bookForRef(books, ref)
	if !ok {
		if fileErr != nil {
			return nil, fileErr
		}
		return nil, fmt.Errorf("no cover for %q", ref)
	}
	if fileErr != nil {
		log.Printf("Cover: %v (using placeholder)", fileErr)
	}
	return assets.RenderPlaceholder(b, width, height), nil
}

func bookForRef(books []catalog.Book, ref string) (catalog.Book, bool) {
	for _, b := range books {
		if b.ImageRef == ref {
			return b, true
		}
	}
	return catalog.Book{}, false
}
