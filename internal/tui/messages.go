package tui

import (
	"github.com/matheuskafuri/campusnews/internal/content"
)

type libraryLoadedMsg struct {
	lib *content.Library
	err error
}

type reportOpenedMsg struct {
	err error
}

// scrollFrameMsg fires once per scheduled scroll recompute.
type scrollFrameMsg struct{}

// springFrameMsg advances the detail view's scroll-to-top animation.
type springFrameMsg struct{}
