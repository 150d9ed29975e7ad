// Package memory estimates peak RAM usage of a poster run so oversized jobs
// can be flagged before any pixels are allocated.
package memory

import (
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/smaxiso/poster-maker/internal/imaging"
	"github.com/smaxiso/poster-maker/internal/layout"
)

// Thresholds for classifying an estimate, in MB and percent of system RAM.
const (
	HighMemoryMB     = 2000
	VeryHighMemoryMB = 4000
	HighPercent      = 50
	ConfirmPercent   = 70
)

// Estimate is the predicted peak RAM cost of a run.
type Estimate struct {
	// MB is the estimated peak usage in megabytes.
	MB float64

	// SystemPercent is MB as a share of total system RAM, or 0 when the
	// system total could not be read.
	SystemPercent float64
}

// High reports whether the run is worth warning about.
func (e Estimate) High() bool {
	return e.MB > HighMemoryMB || e.SystemPercent > HighPercent
}

// NeedsConfirmation reports whether the run is large enough that the user
// should explicitly approve it.
func (e Estimate) NeedsConfirmation() bool {
	return e.MB > VeryHighMemoryMB || e.SystemPercent > ConfirmPercent
}

// EstimateUsage predicts peak RAM for resizing and splitting a srcW×srcH
// source under the given layout at the target DPI.
//
// The model tracks the two non-overlapping pipeline phases and takes their
// maximum: resize holds source + canvas (+20% resampler buffers), split
// holds canvas + two parts in flight. Pixels cost 4 bytes (RGBA), and the
// final figure carries a 30% safety margin for decoder internals.
func EstimateUsage(srcW, srcH, dpi int, spec layout.Spec, page imaging.PageSize) Estimate {
	targetW, targetH, err := imaging.PlanCanvas(srcW, srcH, dpi, spec, page)
	if err != nil {
		return Estimate{}
	}
	parts := spec.Tiles()

	const bytesPerPixel = 4
	sourceBytes := float64(srcW) * float64(srcH) * bytesPerPixel
	canvasBytes := float64(targetW) * float64(targetH) * bytesPerPixel
	largestPartBytes := float64(targetW/parts+1) * float64(targetH) * bytesPerPixel

	resizePhase := sourceBytes + canvasBytes*1.2
	splitPhase := canvasBytes + largestPartBytes*2

	peak := max(resizePhase, splitPhase)
	mb := peak / (1024 * 1024) * 1.3

	est := Estimate{MB: mb}
	if vm, err := mem.VirtualMemory(); err == nil && vm.Total > 0 {
		systemMB := float64(vm.Total) / (1024 * 1024)
		est.SystemPercent = mb / systemMB * 100
	}
	return est
}
