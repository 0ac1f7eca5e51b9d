package cli

import (
	"encoding/json"

	"github.com/gogpu/deviceframe"
	"github.com/spf13/cobra"
)

type sizeJSON struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type deviceJSON struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Platform   string   `json:"platform"`
	Type       string   `json:"type"`
	Screen     sizeJSON `json:"screen"`
	Frame      sizeJSON `json:"frame"`
	PixelRatio float64  `json:"pixel_ratio"`
	CanRotate  bool     `json:"can_rotate"`
}

func toJSON(d *deviceframe.DeviceInfo) deviceJSON {
	id := d.Identifier()
	s, f := d.ScreenSize(), d.FrameSize()
	return deviceJSON{
		ID:         d.ID(),
		Name:       d.Name(),
		Platform:   id.Platform.String(),
		Type:       id.Type.String(),
		Screen:     sizeJSON{Width: s.Width, Height: s.Height},
		Frame:      sizeJSON{Width: f.Width, Height: f.Height},
		PixelRatio: d.PixelRatio(),
		CanRotate:  d.CanRotate(),
	}
}

func (a *app) listCmd() *cobra.Command {
	var (
		platform string
		typ      string
		jsonOut  bool
	)

	cmd := &cobra.Command{
		Use:   "list [query]",
		Short: "List devices",
		Example: `  deviceframe list
  deviceframe list iphone
  deviceframe list --platform android --type tablet
  deviceframe list --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			devs, err := filterDevices(a.catalog.All(), platform, typ)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				devs = searchDevices(devs, args[0])
			}

			if jsonOut {
				out := make([]deviceJSON, len(devs))
				for i, d := range devs {
					out[i] = toJSON(d)
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			a.ui.RenderDeviceList(devs)
			return nil
		},
	}

	cmd.Flags().StringVarP(&platform, "platform", "p", "", "Filter by platform (android, ios, macos, windows, linux)")
	cmd.Flags().StringVarP(&typ, "type", "t", "", "Filter by type (phone, tablet, laptop, desktop)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")

	return cmd
}

func (a *app) infoCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "info <device>",
		Short: "Show device geometry",
		Example: `  deviceframe info ios_phone_iphone-13
  deviceframe info oneplus`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := resolveDevice(a.catalog, args[0])
			if err != nil {
				return err
			}
			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(toJSON(d))
			}
			a.ui.RenderDeviceInfo(d)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
