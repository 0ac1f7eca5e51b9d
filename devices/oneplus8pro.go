package devices

import "github.com/gogpu/deviceframe"

// OnePlus8Pro returns the baked OnePlus 8 Pro model: curved frame with a
// punch-hole camera in the top-left corner of the display.
func OnePlus8Pro() deviceframe.FixedModel {
	rotated := deviceframe.Insets(40, 24, 40, 0)
	return deviceframe.FixedModel{
		ID:               "oneplus-8-pro",
		Name:             "OnePlus 8 Pro",
		Platform:         deviceframe.Android,
		Type:             deviceframe.Phone,
		PixelRatio:       4,
		SafeAreas:        deviceframe.Insets(0, 40, 0, 20),
		RotatedSafeAreas: &rotated,
		FrameSize:        deviceframe.Sz(852, 1865),
		ScreenSize:       deviceframe.Sz(360, 800),
		Screen:           onePlus8ProScreenOutline,
		ScreenRule:       deviceframe.FillEvenOdd,
		Artwork: []deviceframe.Shape{
			{Data: onePlus8ProFrame, Color: deviceframe.ARGB(0xFF3A4245)},
			{Data: onePlus8ProInnerFrame, Color: deviceframe.ARGB(0xFF121515)},
			oval(86.94, 67.38, 130.41, 110.85, deviceframe.ARGB(0xFF262C2D)),
			oval(95.09, 75.53, 122.26, 102.7, deviceframe.ARGB(0xFF121515)),
			oval(105.96, 80.96, 111.39, 86.4, deviceframe.ARGB(0xFF636F73)),
			{Data: onePlus8ProSpeaker, Color: deviceframe.ARGB(0xFF262C2D)},
		},
	}
}

// onePlus8ProScreenOutline is the display; the second subpath is the camera hole.
var onePlus8ProScreenOutline = deviceframe.PathData{
	moveTo, 30.3263, 75.7513,
	cubicTo, 21.7354, 91.0915, 21.7354, 111.551, 21.7354, 152.469,
	lineTo, 21.7354, 1708.02,
	cubicTo, 21.7354, 1748.94, 21.7354, 1769.4, 30.3263, 1784.74,
	cubicTo, 36.3978, 1795.58, 45.3492, 1804.53, 56.1908, 1810.6,
	cubicTo, 71.531, 1819.19, 91.9901, 1819.19, 132.908, 1819.19,
	lineTo, 719.093, 1819.19,
	cubicTo, 760.011, 1819.19, 780.47, 1819.19, 795.81, 1810.6,
	cubicTo, 806.652, 1804.53, 815.603, 1795.58, 821.675, 1784.74,
	cubicTo, 830.266, 1769.4, 830.266, 1748.94, 830.266, 1708.02,
	lineTo, 830.266, 152.469,
	cubicTo, 830.266, 111.551, 830.266, 91.0915, 821.675, 75.7513,
	cubicTo, 815.603, 64.9098, 806.652, 55.9584, 795.81, 49.8868,
	cubicTo, 780.47, 41.2959, 760.011, 41.2959, 719.093, 41.2959,
	lineTo, 132.908, 41.2959,
	cubicTo, 91.9901, 41.2959, 71.531, 41.2959, 56.1908, 49.8868,
	cubicTo, 45.3492, 55.9584, 36.3978, 64.9098, 30.3263, 75.7513,
	closePath,
	moveTo, 130.47, 88.7347,
	cubicTo, 130.47, 100.738, 120.739, 110.469, 108.736, 110.469,
	cubicTo, 96.7319, 110.469, 87.001, 100.738, 87.001, 88.7347,
	cubicTo, 87.001, 76.731, 96.7319, 67, 108.736, 67,
	cubicTo, 120.739, 67, 130.47, 76.731, 130.47, 88.7347,
	closePath,
}

var onePlus8ProFrame = deviceframe.PathData{
	moveTo, 6.52, 147.8,
	cubicTo, 6.52, 90.88, 6.52, 62.42, 19.33, 41.51,
	cubicTo, 26.5, 29.82, 36.34, 19.98, 48.03, 12.81,
	cubicTo, 68.94, 0, 97.4, 0, 154.32, 0,
	lineTo, 697.68, 0,
	cubicTo, 754.6, 0, 783.06, 0, 803.97, 12.81,
	cubicTo, 815.66, 19.98, 825.5, 29.82, 832.67, 41.51,
	cubicTo, 845.48, 62.42, 845.48, 90.88, 845.48, 147.8,
	lineTo, 845.48, 1717.04,
	cubicTo, 845.48, 1773.96, 845.48, 1802.42, 832.67, 1823.32,
	cubicTo, 825.5, 1835.02, 815.66, 1844.86, 803.97, 1852.03,
	cubicTo, 783.06, 1864.84, 754.6, 1864.84, 697.68, 1864.84,
	lineTo, 154.32, 1864.84,
	cubicTo, 97.4, 1864.84, 68.94, 1864.84, 48.03, 1852.03,
	cubicTo, 36.34, 1844.86, 26.5, 1835.02, 19.33, 1823.32,
	cubicTo, 6.52, 1802.42, 6.52, 1773.96, 6.52, 1717.04,
	closePath,
}

var onePlus8ProInnerFrame = deviceframe.PathData{
	moveTo, 10.87, 142.36,
	cubicTo, 10.87, 92.56, 10.87, 67.66, 22.08, 49.37,
	cubicTo, 28.35, 39.13, 36.96, 30.52, 47.19, 24.25,
	cubicTo, 65.48, 13.04, 90.39, 13.04, 140.19, 13.04,
	lineTo, 711.81, 13.04,
	cubicTo, 761.61, 13.04, 786.52, 13.04, 804.81, 24.25,
	cubicTo, 815.04, 30.52, 823.65, 39.13, 829.92, 49.37,
	cubicTo, 841.13, 67.66, 841.13, 92.56, 841.13, 142.36,
	lineTo, 841.13, 1722.47,
	cubicTo, 841.13, 1772.28, 841.13, 1797.18, 829.92, 1815.47,
	cubicTo, 823.65, 1825.71, 815.04, 1834.31, 804.81, 1840.59,
	cubicTo, 786.52, 1851.8, 761.61, 1851.8, 711.81, 1851.8,
	lineTo, 140.19, 1851.8,
	cubicTo, 90.39, 1851.8, 65.48, 1851.8, 47.19, 1840.59,
	cubicTo, 36.96, 1834.31, 28.35, 1825.71, 22.08, 1815.47,
	cubicTo, 10.87, 1797.18, 10.87, 1772.28, 10.87, 1722.47,
	closePath,
}

var onePlus8ProSpeaker = deviceframe.PathData{
	moveTo, 319.5, 26.08,
	cubicTo, 315.53, 26.08, 315.19, 20.64, 311.85, 19.7,
	cubicTo, 311.47, 19.59, 311.3, 19.11, 311.6, 18.88,
	cubicTo, 312.43, 18.24, 313.79, 17.39, 315.15, 17.39,
	lineTo, 536.85, 17.39,
	cubicTo, 538.21, 17.39, 539.57, 18.24, 540.4, 18.88,
	cubicTo, 540.7, 19.11, 540.53, 19.59, 540.15, 19.7,
	cubicTo, 536.81, 20.64, 536.47, 26.08, 532.5, 26.08,
	closePath,
}
