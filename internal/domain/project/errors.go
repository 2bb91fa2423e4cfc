package project

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrNameRequired    = errors.New("project name is required")
	ErrNoUpdates       = errors.New("no updates were found")
)
