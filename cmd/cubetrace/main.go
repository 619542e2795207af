// Package main is cubetrace, a headless tool that drives the rotation
// controller and plots what it does.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/Faultbox/venture-cube/internal/config"
	"github.com/Faultbox/venture-cube/internal/cube"
	"github.com/Faultbox/venture-cube/internal/rotation"
	"github.com/Faultbox/venture-cube/internal/trace"
)

var (
	configFile string
	profile    string
	fps        float64

	dragFrames int
	dragDX     float64
	dragDY     float64
	idleFrames int
	plotWidth  int
	plotHeight int

	snapEps       float64
	snapMaxFrames int
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "cubetrace",
		Short:        "trace the cube rotation controller without a window",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&profile, "profile", "", "controller profile (showcase, compact)")
	rootCmd.PersistentFlags().Float64Var(&fps, "fps", 60, "simulated frame rate")

	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "scripted drag then idle; plots yaw and pitch",
		Args:  cobra.NoArgs,
		RunE:  runSimulate,
	}
	simulateCmd.Flags().IntVar(&dragFrames, "drag-frames", 20, "frames the pointer is dragged")
	simulateCmd.Flags().Float64Var(&dragDX, "dx", 12, "horizontal pixels per drag frame")
	simulateCmd.Flags().Float64Var(&dragDY, "dy", 0, "vertical pixels per drag frame")
	simulateCmd.Flags().IntVar(&idleFrames, "idle", 240, "idle frames after release")
	simulateCmd.Flags().IntVar(&plotWidth, "width", 72, "plot width")
	simulateCmd.Flags().IntVar(&plotHeight, "height", 10, "plot height")

	facingCmd := &cobra.Command{
		Use:   "facing <pitch-deg> <yaw-deg>",
		Short: "print face dot products for an orientation",
		Args:  cobra.ExactArgs(2),
		RunE:  runFacing,
	}

	snapCmd := &cobra.Command{
		Use:   "snap <face>",
		Short: "run a snap and report when it settles",
		Args:  cobra.ExactArgs(1),
		RunE:  runSnap,
	}
	snapCmd.Flags().Float64Var(&snapEps, "eps", 0.01, "settle tolerance in radians")
	snapCmd.Flags().IntVar(&snapMaxFrames, "max-frames", 1200, "frames to wait before giving up")

	rootCmd.AddCommand(simulateCmd, facingCmd, snapCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// controller builds a controller from the config file (or defaults) with the
// profile flag applied on top.
func controller() (*rotation.Controller, error) {
	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.LoadFile(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if profile != "" {
		cfg.Controller.Profile = profile
	}
	rot, err := cfg.Controller.Rotation()
	if err != nil {
		return nil, err
	}
	return rotation.New(rot), nil
}

func step() (float32, error) {
	if fps <= 0 {
		return 0, fmt.Errorf("fps must be positive, got %g", fps)
	}
	return float32(1 / fps), nil
}

func runSimulate(cmd *cobra.Command, args []string) error {
	c, err := controller()
	if err != nil {
		return err
	}
	dt, err := step()
	if err != nil {
		return err
	}

	samples := trace.Simulate(c, trace.Drag{Frames: dragFrames, DX: float32(dragDX), DY: float32(dragDY)}, idleFrames, dt)
	if len(samples) == 0 {
		return fmt.Errorf("nothing to simulate")
	}
	pitch, yaw := trace.Series(samples)

	fmt.Println(asciigraph.Plot(yaw,
		asciigraph.Height(plotHeight), asciigraph.Width(plotWidth), asciigraph.Caption("yaw (deg)")))
	fmt.Println()
	fmt.Println(asciigraph.Plot(pitch,
		asciigraph.Height(plotHeight), asciigraph.Width(plotWidth), asciigraph.Caption("pitch (deg)")))
	fmt.Println()

	fmt.Println("facing transitions:")
	for _, s := range trace.Transitions(samples) {
		face := "none"
		if s.Facing {
			face = s.Face.String()
		}
		fmt.Printf("  frame %4d  %-6s  pitch %7.2f  yaw %8.2f\n", s.Frame, face, trace.Degrees(s.Pitch), trace.Degrees(s.Yaw))
	}
	return nil
}

func runFacing(cmd *cobra.Command, args []string) error {
	c, err := controller()
	if err != nil {
		return err
	}
	pitch, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("pitch: %w", err)
	}
	yaw, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("yaw: %w", err)
	}

	o := rotation.Orientation{Pitch: trace.Radians(pitch), Yaw: trace.Radians(yaw)}
	dots := rotation.FaceDots(o)
	for _, f := range cube.Faces {
		fmt.Printf("  %-6s %+.4f\n", f.ID, dots[f.ID])
	}
	face, ok := c.FacingFace(o)
	if ok {
		fmt.Printf("facing: %s (threshold %.2f)\n", face, c.Config().FacingThreshold)
	} else {
		fmt.Printf("facing: none (best %s below threshold %.2f)\n", face, c.Config().FacingThreshold)
	}
	return nil
}

func runSnap(cmd *cobra.Command, args []string) error {
	face, err := cube.ParseFace(args[0])
	if err != nil {
		return err
	}
	c, err := controller()
	if err != nil {
		return err
	}
	dt, err := step()
	if err != nil {
		return err
	}

	res, ok := trace.Snap(c, face, dt, float32(snapEps), snapMaxFrames)
	if !ok {
		return fmt.Errorf("no snap preset for face %s", face)
	}
	fmt.Printf("goal: pitch %.2f deg, yaw %.2f deg\n", trace.Degrees(res.Goal.Pitch), trace.Degrees(res.Goal.Yaw))
	if !res.Settled {
		return fmt.Errorf("did not settle within %d frames", snapMaxFrames)
	}
	fmt.Printf("settled at frame %d (%.3fs)\n", res.Frame, float64(res.Frame+1)*float64(dt))
	return nil
}
