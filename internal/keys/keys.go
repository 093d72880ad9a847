// Package keys derives tenant-scoped store keys and checks key ownership.
// It is the single choke point for namespacing: every repository read and
// write goes through Derive/Prefix, and every mutation is guarded by
// BelongsToTenant first.
package keys

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Entity kinds stored under a tenant's namespace.
const (
	KindProduct      = "product"
	KindNotification = "notification"
)

const tenantPrefix = "user:"

// Derive maps (tenant, kind, entity id) to the flat store key
// "user:<tenant>:<kind>:<id>". Pure function.
func Derive(tenantID, kind, entityID string) string {
	return fmt.Sprintf("%s%s:%s:%s", tenantPrefix, tenantID, kind, entityID)
}

// Prefix returns the scan prefix covering every entity of the given kind
// owned by the tenant.
func Prefix(tenantID, kind string) string {
	return fmt.Sprintf("%s%s:%s:", tenantPrefix, tenantID, kind)
}

// BelongsToTenant reports whether key lies inside the tenant's namespace
// for the given kind. A mismatch must be treated as "does not exist" by
// callers so that foreign keys never leak existence.
func BelongsToTenant(key, tenantID, kind string) bool {
	return strings.HasPrefix(key, Prefix(tenantID, kind))
}

// NewEntityID generates an entity id from the current unix-millisecond
// timestamp and a random suffix. The suffix alone carries 64 bits of
// entropy, so collisions under concurrent creates are negligible.
func NewEntityID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
	return fmt.Sprintf("%d_%s", time.Now().UnixMilli(), suffix)
}
