package component

// AppleComponent marks the single consumable entity
type AppleComponent struct{}
