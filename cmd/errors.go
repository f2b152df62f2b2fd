package cmd

import "errors"

var (
	errInvalidUTF8      = errors.New("transcript is not valid UTF-8")
	errNotInteractive   = errors.New("--interactive needs a terminal on stdin and stdout")
	errSQLiteNeedsFile  = errors.New("sqlite output needs --output")
	errSenderAndPicker  = errors.New("--sender and --interactive are mutually exclusive")
	errHealthcheckFails = errors.New("health check failed")
)
