// Package errors provides the structured error taxonomy used across
// viewforge and a collector for per-node issues raised while a layout
// document is built.
package errors

import (
	"fmt"
	"sync"
	"time"
)

// BuildIssue represents a problem with one node of a layout document.
type BuildIssue struct {
	Path      string
	Class     string
	Message   string
	Severity  ErrorSeverity
	Cause     error
	Timestamp time.Time
}

// ErrorSeverity represents the severity of an issue
type ErrorSeverity int

const (
	ErrorSeverityInfo ErrorSeverity = iota
	ErrorSeverityWarning
	ErrorSeverityError
)

// String returns the string representation of the severity
func (s ErrorSeverity) String() string {
	switch s {
	case ErrorSeverityInfo:
		return "info"
	case ErrorSeverityWarning:
		return "warning"
	case ErrorSeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Error implements the error interface
func (bi *BuildIssue) Error() string {
	msg := fmt.Sprintf("%s: %s: %s: %s", bi.Path, bi.Class, bi.Severity, bi.Message)
	if bi.Cause != nil {
		msg += ": " + bi.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (bi *BuildIssue) Unwrap() error {
	return bi.Cause
}

// Collector collects issues without aborting the document being built.
type Collector struct {
	issues []BuildIssue
	mutex  sync.RWMutex
}

// NewCollector creates a new issue collector
func NewCollector() *Collector {
	return &Collector{
		issues: make([]BuildIssue, 0),
	}
}

// Add adds an issue to the collector
func (c *Collector) Add(issue BuildIssue) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	issue.Timestamp = time.Now()
	c.issues = append(c.issues, issue)
}

// Issues returns all collected issues
func (c *Collector) Issues() []BuildIssue {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	// Return a copy to avoid race conditions
	result := make([]BuildIssue, len(c.issues))
	copy(result, c.issues)
	return result
}

// HasErrors returns true if any issue has error severity
func (c *Collector) HasErrors() bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	for _, issue := range c.issues {
		if issue.Severity >= ErrorSeverityError {
			return true
		}
	}
	return false
}

// Len returns the number of collected issues
func (c *Collector) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.issues)
}

// Clear clears all issues
func (c *Collector) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.issues = c.issues[:0]
}

// IssuesByClass returns issues raised for a specific type tag
func (c *Collector) IssuesByClass(class string) []BuildIssue {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	var classIssues []BuildIssue
	for _, issue := range c.issues {
		if issue.Class == class {
			classIssues = append(classIssues, issue)
		}
	}
	return classIssues
}
