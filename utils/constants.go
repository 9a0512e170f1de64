// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// WizardSessionPrefix namespaces wizard session keys in Redis.
const WizardSessionPrefix = "wizard:"

// WizardSessionTTL is how long an abandoned booking draft survives.
const WizardSessionTTL = 30 * time.Minute
