package entities

import (
	"errors"
	"fmt"
)

// Stage identifies one step of a pipeline. Each stage has a fixed failure message.
type Stage int

const (
	StageClone Stage = iota
	StageCompress
	StageUpload
	StageDownload
	StageUncompress
	StageRestore
)

// ErrStageFailed matches every *StageError through errors.Is.
var ErrStageFailed = errors.New("pipeline stage failed")

//nolint:gochecknoglobals // closed lookup table
var stageMessages = map[Stage]string{
	StageClone:      "Unable to clone repository.",
	StageCompress:   "Unable to compress repository.",
	StageUpload:     "Unable to upload archived repository to S3.",
	StageDownload:   "Unable to download archived repository.",
	StageUncompress: "Unable to un-compress repository.",
	StageRestore:    "Unable to restore repository.",
}

//nolint:gochecknoglobals // closed lookup table
var stageNames = map[Stage]string{
	StageClone:      "clone",
	StageCompress:   "compress",
	StageUpload:     "upload",
	StageDownload:   "download",
	StageUncompress: "uncompress",
	StageRestore:    "restore",
}

// Message returns the fixed, human-readable failure message of the stage.
func (s Stage) Message() string {
	if msg, ok := stageMessages[s]; ok {
		return msg
	}
	return fmt.Sprintf("Unknown stage %d failed.", int(s))
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// StageError reports that a step ran to completion but did not succeed.
type StageError struct {
	Stage Stage
	Cause error
}

// NewStageError creates a StageError for the given stage.
func NewStageError(stage Stage, cause error) *StageError {
	return &StageError{Stage: stage, Cause: cause}
}

// Error returns only the stage's fixed message; the cause is kept for logging.
func (e *StageError) Error() string {
	return e.Stage.Message()
}

func (e *StageError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrStageFailed}
	}
	return []error{ErrStageFailed, e.Cause}
}

// LaunchError reports that a step could not even be started: a missing
// executable, a failed spawn or a scratch directory that could not be created.
// It is unrecoverable and never reported as a stage failure.
type LaunchError struct {
	Op  string
	Err error
}

// NewLaunchError creates a LaunchError for the given operation.
func NewLaunchError(op string, err error) *LaunchError {
	return &LaunchError{Op: op, Err: err}
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}
