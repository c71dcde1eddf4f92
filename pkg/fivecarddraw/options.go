package fivecarddraw

import "errors"

// Options configures a game of five-card draw
type Options struct {
	SmallBlind int `json:"smallBlind"`
	BigBlind   int `json:"bigBlind"`
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		SmallBlind: 25,
		BigBlind:   50,
	}
}

func validateOptions(opts Options) error {
	if opts.SmallBlind <= 0 {
		return errors.New("small blind must be greater than zero")
	}

	if opts.BigBlind < opts.SmallBlind {
		return errors.New("big blind must be at least the small blind")
	}

	return nil
}
