package component

// WallComponent marks a border cell that occupies the plane but is neither snake nor apple
type WallComponent struct{}
