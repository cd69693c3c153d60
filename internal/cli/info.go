package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/amikos-tech/pure-granny/granny"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Summarize the contents of a .gr2 file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			return writeInfo(cmd.OutOrStdout(), info)
		},
	}
}

func writeInfo(w io.Writer, info *granny.FileInfo) error {
	fmt.Fprintf(w, "Source:     %s\n", info.GetFromFileName())
	if art := info.GetArtToolInfo(); art != nil {
		fmt.Fprintf(w, "Art tool:   %s %d.%d (%.2f units/m)\n",
			art.GetName(), art.ArtToolMajorRevision, art.ArtToolMinorRevision, art.UnitsPerMeter)
	}
	if exp := info.GetExporterInfo(); exp != nil {
		fmt.Fprintf(w, "Exporter:   %s %d.%d build %d\n",
			exp.GetName(), exp.ExporterMajorRevision, exp.ExporterMinorRevision, exp.ExporterBuildNumber)
	}
	fmt.Fprintf(w, "Contents:   %d textures, %d materials, %d skeletons, %d meshes, %d models, %d track groups, %d animations\n",
		info.TextureCount, info.MaterialCount, info.SkeletonCount, info.MeshCount,
		info.ModelCount, info.TrackGroupCount, info.AnimationCount)

	for i := 0; i < int(info.ModelCount); i++ {
		if err := writeModel(w, info.Model(i)); err != nil {
			return err
		}
	}
	for i := 0; i < int(info.AnimationCount); i++ {
		writeAnimation(w, info.Animation(i))
	}
	for i := 0; i < int(info.TextureCount); i++ {
		if err := writeTexture(w, info.Texture(i)); err != nil {
			return err
		}
	}
	return nil
}

func writeModel(w io.Writer, model *granny.Model) error {
	if model == nil {
		return nil
	}

	fmt.Fprintf(w, "Model %q\n", model.GetName())
	if skel := model.GetSkeleton(); skel != nil {
		roots := 0
		for b := 0; b < int(skel.BoneCount); b++ {
			if bone := skel.Bone(b); bone != nil && bone.IsRoot() {
				roots++
			}
		}
		fmt.Fprintf(w, "  skeleton %q: %d bones, %d roots\n", skel.GetName(), skel.BoneCount, roots)
	}

	for m := 0; m < int(model.MeshBindingCount); m++ {
		mesh := model.MeshBinding(m)
		if mesh == nil {
			continue
		}
		vertices, err := granny.MeshVertexCount(mesh)
		if err != nil {
			return err
		}
		indices, err := granny.MeshIndexCount(mesh)
		if err != nil {
			return err
		}
		rigid, err := granny.MeshIsRigid(mesh)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  mesh %q: %d vertices, %d triangles, %d bone bindings, %d materials, %d morph targets, rigid=%t\n",
			mesh.GetName(), vertices, indices/3, mesh.BoneBindingCount, mesh.MaterialBindingCount, mesh.MorphTargetCount, rigid)
	}
	return nil
}

func writeAnimation(w io.Writer, anim *granny.Animation) {
	if anim == nil {
		return
	}

	fmt.Fprintf(w, "Animation %q: %.3fs, time step %.4fs, %d track groups\n",
		anim.GetName(), anim.Duration, anim.TimeStep, anim.TrackGroupCount)
	for g := 0; g < int(anim.TrackGroupCount); g++ {
		group := anim.TrackGroup(g)
		if group == nil {
			continue
		}
		fmt.Fprintf(w, "  track group %q: %d transform, %d vector, %d text tracks\n",
			group.GetName(), group.TransformTrackCount, group.VectorTrackCount, group.TextTrackCount)
	}
}

func writeTexture(w io.Writer, tex *granny.Texture) error {
	if tex == nil {
		return nil
	}

	alpha, err := granny.TextureHasAlpha(tex)
	if err != nil {
		return err
	}
	mips := 0
	if img := tex.Image(0); img != nil {
		mips = int(img.MIPLevelCount)
	}
	fmt.Fprintf(w, "Texture %q: %dx%d, %d images, %d mip levels, alpha=%t\n",
		tex.GetFromFileName(), tex.Width, tex.Height, tex.ImageCount, mips, alpha)
	return nil
}
