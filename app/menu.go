package app

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/text/message"

	"github.com/wojtekolesinski/seabattle/i18n"
)

const (
	bannerWidth = 20
	helpWidth   = 40
)

var rule = strings.Repeat("-", bannerWidth)

// greeting returns the banner shown before the first move: the centred
// welcome text framed by rules, then the wrapped input help.
func greeting(p *message.Printer) []string {
	lines := []string{rule}
	for _, l := range wrap(p.Sprintf(i18n.Greeting), bannerWidth) {
		lines = append(lines, center(l, bannerWidth))
	}
	lines = append(lines, rule)
	return append(lines, wrap(p.Sprintf(i18n.InputFormat), helpWidth)...)
}

func wrap(text string, width uint) []string {
	return strings.Split(wordwrap.WrapString(text, width), "\n")
}

func center(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	pad := (width - n) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-n-pad)
}
