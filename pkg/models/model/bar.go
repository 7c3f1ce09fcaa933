package model

import (
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/schollz/progressbar/v3"
)

type Bar progressbar.ProgressBar

func NewBar(len int, description string) *Bar {
	return newBar(len, description)
}

// NewBarTo draws the bar on w instead of stdout.
func NewBarTo(w io.Writer, len int, description string) *Bar {
	return newBar(len, description, progressbar.OptionSetWriter(w))
}

func newBar(len int, description string, options ...progressbar.Option) *Bar {
	options = append([]progressbar.Option{
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        aurora.Yellow("█").String(),
			SaucerHead:    aurora.Yellow("█").String(),
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	}, options...)
	return (*Bar)(progressbar.NewOptions(len, options...))
}

func (b *Bar) Add(i int) {
	_ = (*progressbar.ProgressBar)(b).Add(i)
}

func (b *Bar) Describe(description string) {
	(*progressbar.ProgressBar)(b).Describe(description)
}

func (b *Bar) Current() int {
	return int((*progressbar.ProgressBar)(b).State().CurrentBytes)
}

func (b *Bar) Close() {
	_ = (*progressbar.ProgressBar)(b).Finish()
	_ = (*progressbar.ProgressBar)(b).Close()
}
