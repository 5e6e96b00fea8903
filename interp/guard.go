package interp

// Frame brackets render with Before and After. After runs on every exit
// path, including a panic in render, so the live state can never stay
// blended past the frame.
func (c *Controller) Frame(frameTime float64, render func()) (err error) {
	if err := c.Before(frameTime); err != nil {
		return err
	}
	defer func() {
		if afterErr := c.After(); afterErr != nil && err == nil {
			err = afterErr
		}
	}()
	render()
	return nil
}

// Scope is an open frame returned by Begin. End must be called exactly once,
// typically with defer.
type Scope struct {
	c *Controller
}

// Begin runs Before and returns a Scope whose End runs After.
func (c *Controller) Begin(frameTime float64) (Scope, error) {
	if err := c.Before(frameTime); err != nil {
		return Scope{}, err
	}
	return Scope{c: c}, nil
}

// End restores the live state. The zero Scope does nothing.
func (s Scope) End() error {
	if s.c == nil {
		return nil
	}
	return s.c.After()
}
