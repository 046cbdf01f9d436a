package model

// Viewer is the identity a request acts as. A zero ID means anonymous.
type Viewer struct {
	ID    int64
	Name  string
	Email string
	URL   string
}

func (v Viewer) Authenticated() bool {
	return v.ID > 0
}
