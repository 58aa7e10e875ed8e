package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// PlatformTag marks a static solid rectangle.
type PlatformTag struct{}

var PlatformTagComponent = NewComponent[PlatformTag]()

// ScreenClamp keeps a kinematic body inside the screen and stops it on the
// bottom edge.
type ScreenClamp struct{}

var ScreenClampComponent = NewComponent[ScreenClamp]()
