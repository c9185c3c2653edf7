package handler

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RootPath is the root path of the route group.
	RootPath = "/"

	// ErrNilACDFatalLogMsg is used if the app, cfg or deps pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or deps is nil"
)
