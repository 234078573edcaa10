package urlbuilder

// GravityOptions selects the region an operation anchors to.
type GravityOptions struct {
	// Type is the anchor region.
	Type GravityType

	// Offset optionally shifts the anchor point, in pixels.
	Offset *Offset
}

// subToken renders the gravity as an embeddable argument sequence
// ("nowe" or "nowe:10:20") for tokens that nest a gravity, such as crop.
func (o GravityOptions) subToken() string {
	if o.Offset != nil {
		return stringifyArgs(string(o.Type), o.Offset.X, o.Offset.Y)
	}
	return string(o.Type)
}

// Gravity appends a gravity token ("g:type[:x:y]") setting the default
// anchor for subsequent server-side operations.
func (c *Chain) Gravity(o GravityOptions) *Chain {
	if o.Offset != nil {
		return c.push(kindGravity, stringifyArgs("g", string(o.Type), o.Offset.X, o.Offset.Y))
	}
	return c.push(kindGravity, stringifyArgs("g", string(o.Type)))
}
