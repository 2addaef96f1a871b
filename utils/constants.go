// File: utils/constants.go
package utils

// DateLayout is the wire format for calendar dates, tenant-local.
const DateLayout = "2006-01-02"

// AvailabilityCachePrefix is the prefix used for Redis availability cache keys.
const AvailabilityCachePrefix = "availability:"
