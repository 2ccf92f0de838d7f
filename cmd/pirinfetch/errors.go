package main

import "errors"

var (
	ErrConfigExists  = errors.New("config file already exists")
	ErrInvalidConfig = errors.New("invalid configuration")
)
