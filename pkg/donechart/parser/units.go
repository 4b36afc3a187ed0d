// Package parser reads charts and their data blocks back out of .xlsx
// workbooks written by the workbook renderer.
package parser

// EMUPerPixel is the number of EMUs (English Metric Units) per pixel at 96 DPI.
// 1 inch = 914400 EMU, 1 inch = 96 pixels at 96 DPI
// Therefore: 914400 / 96 = 9525 EMU per pixel
const EMUPerPixel = 9525

// EMUToPixels converts EMU to pixels at 96 DPI.
func EMUToPixels(emu int64) int {
	return int(emu / EMUPerPixel)
}

// PixelsToEMU converts pixels at 96 DPI to EMU.
func PixelsToEMU(px int) int64 {
	return int64(px) * EMUPerPixel
}

// drawingFontScale is the factor between DrawingML sz attributes
// (hundredths of a point) and points.
const drawingFontScale = 100

// fontSizeFromSz converts a DrawingML sz attribute to points.
func fontSizeFromSz(sz float64) float64 {
	return sz / drawingFontScale
}
