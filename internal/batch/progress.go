package batch

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
)

// Progress tracks how many files of a batch are done.
type Progress interface {
	// Add increments the progress by n
	Add(n int) error
	// Close cleans up any resources used by the progress tracker
	Close()
}

// NoopProgress is a progress tracker that does nothing
type NoopProgress struct{}

func (p *NoopProgress) Add(int) error { return nil }
func (p *NoopProgress) Close()        {}

// NewNoopProgress creates a new no-op progress tracker
func NewNoopProgress() *NoopProgress {
	return &NoopProgress{}
}

// BarProgress wraps a progressbar.ProgressBar to implement the Progress interface
type BarProgress struct {
	bar *progressbar.ProgressBar
	w   io.Writer
}

func (p *BarProgress) Add(n int) error {
	return p.bar.Add(n)
}

// Close clears the bar line.
func (p *BarProgress) Close() {
	_ = p.bar.Finish()
	fmt.Fprint(p.w, "\r\033[K")
}

// NewBarProgress creates a progress bar over total files drawn on w.
func NewBarProgress(total int, w io.Writer) *BarProgress {
	return &BarProgress{
		w: w,
		bar: progressbar.NewOptions(total,
			progressbar.OptionSetDescription("Parsing statements"),
			progressbar.OptionSetWriter(w),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			})),
	}
}
