package main

import "gonum.org/v1/plot/vg"

const (
	DefaultFormat   = "png"
	DefaultSize     = 6 * vg.Inch
	OutputSuffix    = "_evaluation"
	OutputDateStamp = "20060102"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

var SupportedFormats = []string{"png", "jpg", "jpeg", "svg", "pdf", "eps", "tif", "tiff", "tex"}
