package cli

import (
	"fmt"
	"sync/atomic"

	"github.com/gogpu/deviceframe"
	"github.com/gogpu/deviceframe/recording"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func (a *app) batchCmd() *cobra.Command {
	var (
		input     string
		dir       string
		format    string
		platform  string
		typ       string
		jobs      int
		landscape bool
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Frame a screenshot on many devices",
		Example: `  deviceframe batch -i shot.png -d out
  deviceframe batch -i shot.png --platform ios --format svg --jobs 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			devs, err := filterDevices(a.catalog.All(), platform, typ)
			if err != nil {
				return err
			}
			if len(devs) == 0 {
				a.ui.Info("No devices found")
				return nil
			}

			var content deviceframe.Content
			if input != "" {
				img, err := loadImage(input)
				if err != nil {
					return err
				}
				content = deviceframe.ImageContent{Image: img}
			}

			orientation := deviceframe.Portrait
			if landscape {
				orientation = deviceframe.Landscape
			}
			queue := make([]job, 0, len(devs))
			for _, d := range devs {
				j, err := a.newJob(deviceframe.NewScreen(d, orientation), format, "", dir)
				if err != nil {
					return err
				}
				queue = append(queue, j)
			}

			if jobs <= 0 {
				jobs = a.cfg.Jobs
			}
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(jobs)

			var done atomic.Int32
			for _, j := range queue {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					if err := writeFrame(j, content); err != nil {
						return fmt.Errorf("%s: %w", j.screen.Device.ID(), err)
					}
					done.Add(1)
					a.ui.Success("Wrote %s", j.output)
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			a.ui.Info("%d frames written", done.Load())
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Screenshot to frame (png, jpeg or webp)")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Output directory (default from config)")
	cmd.Flags().StringVarP(&format, "format", "f", "", formatUsage("default from config"))
	cmd.Flags().StringVarP(&platform, "platform", "p", "", "Only devices of this platform")
	cmd.Flags().StringVarP(&typ, "type", "t", "", "Only devices of this type")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "Concurrent renders (default from config)")
	cmd.Flags().BoolVar(&landscape, "landscape", false, "Turn rotatable devices to landscape")

	return cmd
}

func (a *app) backendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, f := range recording.Formats() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", f.Name, f.MediaType)
			}
			return nil
		},
	}
}
