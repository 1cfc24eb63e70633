package main

import "github.com/JaimeStill/climate-atlas/internal/countries"

// Domain holds the domain systems shared by the API and the pages.
type Domain struct {
	Countries countries.System
}

func NewDomain() *Domain {
	return &Domain{
		Countries: countries.New(),
	}
}
