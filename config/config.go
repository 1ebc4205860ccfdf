package config

import "github.com/yohamta/donburi/ecs"

// Default is the ECS layer every collision entity is created on.
const Default ecs.LayerID = 0
