package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption    = goerr.New("invalid option")
	ErrInvalidEventData = goerr.New("invalid event data")
	ErrGitCommand       = goerr.New("git command failed")
)
