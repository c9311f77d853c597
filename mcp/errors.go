package mcp

import "errors"

var (
	// ErrCreateDir means the destination directory could not be created.
	ErrCreateDir = errors.New("failed to create config directory")
	// ErrRead means an existing config file could not be read.
	ErrRead = errors.New("failed to read config file")
	// ErrParse means an existing config file is not valid JSON.
	ErrParse = errors.New("failed to parse config file")
	// ErrInvalidDocument means the file is JSON but not shaped like an MCP config.
	ErrInvalidDocument = errors.New("invalid config document")
	// ErrWrite means the merged config could not be written.
	ErrWrite = errors.New("failed to write config file")
	// ErrLocked means another run holds the config lock.
	ErrLocked = errors.New("config file is locked")
)
