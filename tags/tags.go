package tags

import "github.com/yohamta/donburi"

var (
	Level = donburi.NewTag().SetName("Level")
	Wall  = donburi.NewTag().SetName("Wall")
	Ramp  = donburi.NewTag().SetName("Ramp")
)

// Resolv tags for physics collision
const (
	ResolvSolid = "solid"
	ResolvRamp  = "ramp"

	// Slope type tags
	Slope45UpRight = "45_up_right"
	Slope45UpLeft  = "45_up_left"
)
