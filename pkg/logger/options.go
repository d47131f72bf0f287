package logger

import "io"

type options struct {
	format string
	output io.Writer
}

type Option func(o *options)

func Format(format string) Option {
	return func(o *options) {
		if format != "" {
			o.format = format
		}
	}
}

func Output(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}
