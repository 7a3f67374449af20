package service

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrStaleLoad     = errors.New("load superseded by a newer request")
	ErrSamePage      = errors.New("already on this page")
	ErrNoBrowse      = errors.New("chat has no open catalog")
	ErrRelayDisabled = errors.New("contact relay is not configured")
)
