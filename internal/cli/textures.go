package cli

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amikos-tech/pure-granny/granny"
	"github.com/amikos-tech/pure-granny/internal/export"
)

func newTexturesCmd() *cobra.Command {
	var (
		outDir  string
		format  string
		maxSize int
	)

	cmd := &cobra.Command{
		Use:   "textures FILE",
		Short: "Decode the textures embedded in a .gr2 file to image files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			imgFormat, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			if maxSize < 0 {
				return fmt.Errorf("--max-size must not be negative, got %d", maxSize)
			}

			release, err := initRuntime()
			if err != nil {
				return err
			}
			defer release()

			file, info, err := openFile(args[0])
			if err != nil {
				return err
			}
			defer freeFile(file, args[0])

			written, err := exportTextures(info, outDir, imgFormat, maxSize)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d of %d textures to %s\n", written, info.TextureCount, outDir)
			return err
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (required)")
	cmd.Flags().StringVarP(&format, "format", "f", string(export.FormatWebP), "Output format: webp, tga or png")
	cmd.Flags().IntVar(&maxSize, "max-size", 0, "Scale textures down so neither side exceeds this size (0 = original size)")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

// exportTextures writes MIP level 0 of every texture's first image. It keeps
// going after a failed texture and reports how many were written.
func exportTextures(info *granny.FileInfo, outDir string, format export.Format, maxSize int) (int, error) {
	used := make(map[string]bool)
	written, failed := 0, 0

	for i := 0; i < int(info.TextureCount); i++ {
		tex := info.Texture(i)
		if tex == nil {
			continue
		}
		source := tex.GetFromFileName()

		img, err := granny.DecodeTexture(tex, 0, 0)
		if err != nil {
			failed++
			logger.Error().Err(err).Int("texture", i).Str("source", source).Msg("failed to decode texture")
			continue
		}
		img = export.Fit(img, maxSize)

		name := uniqueName(used, export.FileName(source, i, format), i)
		path := filepath.Join(outDir, name)
		if err := export.WriteFile(path, img, format); err != nil {
			failed++
			logger.Error().Err(err).Int("texture", i).Str("path", path).Msg("failed to write texture")
			continue
		}

		written++
		logger.Info().
			Int("texture", i).
			Str("source", source).
			Str("path", path).
			Int("width", img.Bounds().Dx()).
			Int("height", img.Bounds().Dy()).
			Msg("texture exported")
	}

	if failed > 0 {
		return written, fmt.Errorf("%d textures failed to export", failed)
	}
	return written, nil
}

// uniqueName suffixes name with the texture index when another texture
// already claimed it.
func uniqueName(used map[string]bool, name string, index int) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for n := index; used[name]; n++ {
		name = base + "_" + strconv.Itoa(n) + ext
	}
	used[name] = true
	return name
}
