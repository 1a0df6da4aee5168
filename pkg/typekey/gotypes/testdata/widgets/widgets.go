package widgets

// Widget is a sample constructed type for loader tests
type Widget struct {
	Name string
	Size int
}

// Handle is an alias spelling of Widget
type Handle = Widget

// ID is a distinct named type over string
type ID string
