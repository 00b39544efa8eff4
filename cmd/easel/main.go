// easel - terminal sketching toolkit
// Inspect, render and explore 2D sketch documents, and trace 3D models
// into flat line art.
//
// Commands:
//
//	easel info <file>    - Document or model statistics
//	easel render <file>  - Render a sketch document to PNG
//	easel view <file>    - Pan and zoom a sketch in the terminal
//	easel trace <model>  - Project a GLB/STL/OBJ model to line art
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/log"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/taigrr/easel/pkg/render"
	"github.com/taigrr/easel/pkg/sketch"
	"github.com/taigrr/easel/pkg/trace"
)

var (
	renderOut string
	targetFPS float64
	startGrid bool

	traceYaw      float64
	tracePitch    float64
	traceCrease   float64
	traceSimplify float64
	traceOut      string
	traceSize     int
	traceNoSil    bool
)

func main() {
	root := &cobra.Command{
		Use:   "easel",
		Short: "2D sketching toolkit for the terminal",
		Long: `easel - 2D sketching toolkit for the terminal

Load sketch documents (YAML or JSON), inspect them, render them to
PNG, pan and zoom them interactively, and trace 3D models (GLB, STL,
OBJ) into 2D line art.`,
		SilenceUsage: true,
	}

	infoCmd := &cobra.Command{
		Use:   "info <sketch.yaml|model.glb|model.stl>",
		Short: "Show document or model statistics",
		Long:  "Show counts, bounds and dimensions for a sketch document or a 3D model file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runInfo(args[0])
		},
	}

	renderCmd := &cobra.Command{
		Use:   "render <sketch.yaml|sketch.json>",
		Short: "Render a sketch document to PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runRender(args[0])
		},
	}
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Output PNG path (default: input name with .png)")

	viewCmd := &cobra.Command{
		Use:   "view <sketch.yaml|sketch.json>",
		Short: "View a sketch interactively in the terminal",
		Long: `View a sketch interactively in the terminal.

Controls:
  Mouse drag   - Pan
  Scroll       - Zoom at the cursor
  W/A/S/D      - Pan (arrow keys too)
  +/-          - Zoom at the center
  F            - Fit the document to the window
  G            - Toggle the grid
  ?            - Toggle the HUD overlay
  Q/Esc        - Quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runView(args[0])
		},
	}
	viewCmd.Flags().Float64Var(&targetFPS, "fps", 60, "Target FPS")
	viewCmd.Flags().BoolVar(&startGrid, "grid", false, "Start with the grid shown")

	traceCmd := &cobra.Command{
		Use:   "trace <model.glb|model.stl|model.obj>",
		Short: "Project a 3D model to 2D line art",
		Long: `Project a 3D model to 2D line art: feature edges (boundaries and
creases) plus the view silhouette, orthographically projected.

With --out the projection is written to a PNG; otherwise it opens
interactively in the terminal:
  Mouse drag   - Orbit (yaw/pitch)
  Scroll       - Zoom
  W/A/S/D      - Orbit
  F            - Fit to the window
  R            - Reset the view
  ?            - Toggle the HUD overlay
  Q/Esc        - Quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runTrace(args[0])
		},
	}
	traceCmd.Flags().Float64Var(&traceYaw, "yaw", 30, "Yaw angle in degrees")
	traceCmd.Flags().Float64Var(&tracePitch, "pitch", 20, "Pitch angle in degrees")
	traceCmd.Flags().Float64Var(&traceCrease, "crease", 30, "Crease angle threshold in degrees (0 = full wireframe)")
	traceCmd.Flags().Float64Var(&traceSimplify, "simplify", 0, "Line simplification tolerance in model units")
	traceCmd.Flags().BoolVar(&traceNoSil, "no-silhouette", false, "Skip view-dependent contour edges")
	traceCmd.Flags().StringVarP(&traceOut, "out", "o", "", "Write a PNG instead of opening the viewer")
	traceCmd.Flags().IntVar(&traceSize, "size", 1024, "PNG size in pixels (longest side)")
	traceCmd.Flags().Float64Var(&targetFPS, "fps", 60, "Target FPS for the viewer")

	root.AddCommand(infoCmd, renderCmd, viewCmd, traceCmd)

	if err := fang.Execute(context.Background(), root); err != nil {
		os.Exit(1)
	}
}

func runInfo(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml", ".json":
		return sketchInfo(path, info)
	case ".glb", ".gltf", ".stl", ".obj":
		return modelInfo(path, info, ext)
	default:
		return fmt.Errorf("unsupported format: %s (use .yaml, .json, .glb, .stl, or .obj)", ext)
	}
}

func sketchInfo(path string, info os.FileInfo) error {
	doc, err := sketch.LoadFile(path)
	if err != nil {
		return err
	}
	root, err := doc.Build()
	if err != nil {
		return err
	}
	bounds := root.WorldBounds()

	fmt.Printf("File:       %s\n", filepath.Base(path))
	fmt.Printf("Format:     %s\n", strings.ToUpper(strings.TrimPrefix(filepath.Ext(path), ".")))
	fmt.Printf("Size:       %.2f KB\n", float64(info.Size())/1024)
	fmt.Println()
	if doc.Name != "" {
		fmt.Printf("Name:       %s\n", doc.Name)
	}
	fmt.Printf("Canvas:     %g x %g\n", doc.Width, doc.Height)
	fmt.Printf("Shapes:     %d\n", root.Count()-1) // without the root group
	if bounds.IsValid() {
		fmt.Printf("Bounds:     (%.3f, %.3f) .. (%.3f, %.3f)\n", bounds.MinX, bounds.MinY, bounds.MaxX, bounds.MaxY)
		fmt.Printf("Extent:     %.3f x %.3f\n", bounds.Width(), bounds.Height())
	}
	return nil
}

func modelInfo(path string, info os.FileInfo, ext string) error {
	mesh, err := loadModel(path, ext)
	if err != nil {
		return err
	}
	size := mesh.Size()
	center := mesh.Center()
	edges := mesh.Edges()
	boundary := 0
	for _, e := range edges {
		if e.IsBoundary() {
			boundary++
		}
	}

	fmt.Printf("File:       %s\n", filepath.Base(path))
	fmt.Printf("Format:     %s\n", strings.ToUpper(strings.TrimPrefix(ext, ".")))
	fmt.Printf("Size:       %.2f KB\n", float64(info.Size())/1024)
	fmt.Println()
	fmt.Printf("Vertices:   %d\n", mesh.VertexCount())
	fmt.Printf("Triangles:  %d\n", mesh.TriangleCount())
	fmt.Printf("Edges:      %d (%d boundary)\n", len(edges), boundary)
	fmt.Println()
	fmt.Printf("Bounds Min: (%.3f, %.3f, %.3f)\n", mesh.BoundsMin.X, mesh.BoundsMin.Y, mesh.BoundsMin.Z)
	fmt.Printf("Bounds Max: (%.3f, %.3f, %.3f)\n", mesh.BoundsMax.X, mesh.BoundsMax.Y, mesh.BoundsMax.Z)
	fmt.Printf("Dimensions: %.3f x %.3f x %.3f\n", size.X, size.Y, size.Z)
	fmt.Printf("Center:     (%.3f, %.3f, %.3f)\n", center.X, center.Y, center.Z)
	return nil
}

func loadModel(path, ext string) (*trace.Mesh, error) {
	var (
		mesh *trace.Mesh
		err  error
	)
	switch ext {
	case ".glb", ".gltf":
		mesh, err = trace.LoadGLTF(path)
	case ".stl":
		mesh, err = trace.LoadSTL(path)
	case ".obj":
		mesh, err = trace.LoadOBJ(path)
	default:
		return nil, fmt.Errorf("unsupported model format: %s (use .glb, .gltf, .stl, or .obj)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	return mesh, nil
}

func runRender(path string) error {
	doc, err := sketch.LoadFile(path)
	if err != nil {
		return err
	}
	root, err := doc.Build()
	if err != nil {
		return err
	}
	bg, err := doc.BackgroundColor()
	if err != nil {
		return err
	}

	canvas := render.NewCanvas(int(doc.Width+0.5), int(doc.Height+0.5))
	canvas.BG = render.FromColorful(bg)
	canvas.Clear()
	r := render.NewRenderer(canvas)
	r.RenderScene(root, render.CanvasViewport(doc.Width, doc.Height))

	out := renderOut
	if out == "" {
		out = strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
	}
	if err := canvas.SavePNG(out); err != nil {
		return err
	}
	log.Infof("Wrote %s (%dx%d, %d shapes)", out, canvas.Width, canvas.Height, root.Count()-1)
	return nil
}
