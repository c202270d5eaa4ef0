package gate

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/GinjaNinja32/ultracolor/prefs"
)

// Permission namespaces
const (
	NameColor  = "ultracolor.namecolor"
	ChatColor  = "ultracolor.chatcolor"
	NameFormat = "ultracolor.nameformat"
	ChatFormat = "ultracolor.chatformat"
	Gradient   = "ultracolor.gradient"
)

// Wildcard returns the permission granting everything under `namespace`
func Wildcard(namespace string) string {
	return namespace + ".*"
}

// GradientPermission returns the permission to pick a custom gradient
func GradientPermission(ctx prefs.Context) string {
	return Gradient + "." + ctx.String()
}

// PermissionSet is an in-memory Permissions implementation. Grants may use
// "*" for everything or a "prefix.*" wildcard.
type PermissionSet struct {
	mu     sync.RWMutex
	grants map[uuid.UUID]map[string]bool
}

// NewPermissionSet returns a set with no grants
func NewPermissionSet() *PermissionSet {
	return &PermissionSet{grants: map[uuid.UUID]map[string]bool{}}
}

// Grant gives `perms` to `id`
func (p *PermissionSet) Grant(id uuid.UUID, perms ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	g, ok := p.grants[id]
	if !ok {
		g = map[string]bool{}
		p.grants[id] = g
	}
	for _, perm := range perms {
		g[perm] = true
	}
}

// Revoke takes `perms` away from `id`
func (p *PermissionSet) Revoke(id uuid.UUID, perms ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, perm := range perms {
		delete(p.grants[id], perm)
	}
}

// HasPermission implements Permissions
func (p *PermissionSet) HasPermission(id uuid.UUID, want string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for have := range p.grants[id] {
		if matchPermission(have, want) {
			return true
		}
	}
	return false
}

// matchPermission checks a held permission against a wanted one
func matchPermission(have, want string) bool {
	if have == "*" || have == want {
		return true
	}
	// "ultracolor.*" matches "ultracolor.namecolor.c"
	if strings.HasSuffix(have, ".*") {
		return strings.HasPrefix(want, strings.TrimSuffix(have, "*"))
	}
	return false
}
