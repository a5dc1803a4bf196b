package cli

import (
	"errors"
	"fmt"
)

var errCanceled = errors.New("canceled")

type invalidFlagError struct {
	flag  string
	value string
	err   error
}

func (e *invalidFlagError) Error() string {
	return fmt.Sprintf("invalid --%s %q: %v", e.flag, e.value, e.err)
}

func (e *invalidFlagError) Unwrap() error { return e.err }

type configFileError struct {
	path string
	err  error
}

func (e *configFileError) Error() string {
	return fmt.Sprintf("read config %s: %v", e.path, e.err)
}

func (e *configFileError) Unwrap() error { return e.err }

type limitsOrderError struct {
	min, max string
}

func (e *limitsOrderError) Error() string {
	return fmt.Sprintf("--min %s is after --max %s", e.min, e.max)
}

type unknownTopicError struct {
	topic string
}

func (e *unknownTopicError) Error() string {
	return fmt.Sprintf("unknown docs topic: %q (run `datefield docs` to list topics)", e.topic)
}

type segmentCountError struct {
	want, got   int
	placeholder string
}

func (e *segmentCountError) Error() string {
	return fmt.Sprintf("layout %q has %d segments, got %d", e.placeholder, e.want, e.got)
}
