package main

import (
	"github.com/pkg/profile"
)

// ProfileStart starts a CPU profile written into dir and returns the function
// that stops it.
func ProfileStart(dir string) func() {
	return profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.Quiet).Stop
}
