package model

import "github.com/m-mizutani/goerr/v2"

// Tags classifying why a reclaim run stopped before any remote call
var (
	ErrTagInvalidArguments = goerr.NewTag("invalid_arguments")
	ErrTagSourceNotFound   = goerr.NewTag("source_not_found")
	ErrTagDeclined         = goerr.NewTag("declined")
)
