package physics

// StandingOn reports whether body stands on top of block: its bottom edge is
// within [block.Y-above, block.Y+below] and it overlaps the block
// horizontally. The result depends only on the two rects.
func StandingOn(body, block Rect, above, below float64) bool {
	bottom := body.Bottom()
	onTop := bottom >= block.Y-above && bottom <= block.Y+below
	horizontal := body.Right() > block.X && body.X < block.Right()
	return onTop && horizontal
}
