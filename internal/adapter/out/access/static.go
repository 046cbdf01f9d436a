package access

import "blogd/internal/model"

// StaticChecker answers permission checks from a fixed grant table: a set of
// permissions everyone holds plus per-user grants. It stands in for a real
// access-control backend, which the service only sees through the
// AccessChecker interface.
type StaticChecker struct {
	everyone map[string]struct{}
	users    map[int64]map[string]struct{}
}

func NewStaticChecker(everyone []string, users map[int64][]string) *StaticChecker {
	c := &StaticChecker{
		everyone: make(map[string]struct{}, len(everyone)),
		users:    make(map[int64]map[string]struct{}, len(users)),
	}
	for _, p := range everyone {
		c.everyone[p] = struct{}{}
	}
	for id, perms := range users {
		set := make(map[string]struct{}, len(perms))
		for _, p := range perms {
			set[p] = struct{}{}
		}
		c.users[id] = set
	}
	return c
}

func (c *StaticChecker) HasAccess(viewer model.Viewer, permission string) bool {
	if _, ok := c.everyone[permission]; ok {
		return true
	}
	if !viewer.Authenticated() {
		return false
	}
	_, ok := c.users[viewer.ID][permission]
	return ok
}
