// Package deviceframe draws realistic device frames around content.
//
// # Overview
//
// A device is described by a [DeviceInfo]: its identity, screen and frame
// sizes, safe areas and a [Painter] that knows how to draw the bezel.
// Painters come in parametric families (phones and tablets, laptops and
// desktop monitors that emulate a floating window) and as baked artwork
// for specific models. A [Screen] composes a device and [Content]: it
// rotates for landscape, paints the frame and clips the content to the
// exact screen outline.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/deviceframe"
//	    "github.com/gogpu/deviceframe/devices"
//	    "github.com/gogpu/deviceframe/recording"
//	    _ "github.com/gogpu/deviceframe/recording/backends/raster"
//	)
//
//	catalog := devices.MustLoad()
//	phone, _ := catalog.Lookup("ios_phone_iphone-13")
//
//	screen := deviceframe.NewScreen(phone, deviceframe.Portrait)
//	err := recording.Render(f, "png", screen, deviceframe.ImageContent{Image: shot})
//
// # Coordinate System
//
// Coordinates are logical pixels with the origin at the top-left, X to the
// right and Y down. Rotations are in radians and positive angles turn
// clockwise on screen.
//
// # Drawing
//
// Painters draw through the [Canvas] interface. The recording package
// provides a Canvas that captures commands and replays them into the
// registered backends ("png" via gogpu/gg, "svg" via svgo).
//
// # Logging
//
// The package is silent by default. Use [SetLogger] to receive
// diagnostics.
package deviceframe
