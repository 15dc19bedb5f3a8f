// Package loggable provides an embeddable set of optional leveled
// loggers.  A level that has no logger installed is silent.
package loggable

import "log"

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
	levelCount
)

type LoggableOption func(*Loggable) error

type Loggable struct {
	loggers [levelCount]*log.Logger
}

func (c *Loggable) logf(l level, msg string, args ...interface{}) {
	if c.loggers[l] == nil {
		return
	}

	c.loggers[l].Printf(msg, args...)
}

func (c *Loggable) Debugf(msg string, args ...interface{}) {
	c.logf(levelDebug, msg, args...)
}
func (c *Loggable) Infof(msg string, args ...interface{}) {
	c.logf(levelInfo, msg, args...)
}
func (c *Loggable) Warnf(msg string, args ...interface{}) {
	c.logf(levelWarn, msg, args...)
}
func (c *Loggable) Errorf(msg string, args ...interface{}) {
	c.logf(levelError, msg, args...)
}

func withLogger(lvl level, l *log.Logger) LoggableOption {
	return func(c *Loggable) error {
		c.loggers[lvl] = l
		return nil
	}
}

func WithDebugLogger(l *log.Logger) LoggableOption {
	return withLogger(levelDebug, l)
}
func WithInfoLogger(l *log.Logger) LoggableOption {
	return withLogger(levelInfo, l)
}
func WithWarnLogger(l *log.Logger) LoggableOption {
	return withLogger(levelWarn, l)
}
func WithErrorLogger(l *log.Logger) LoggableOption {
	return withLogger(levelError, l)
}
