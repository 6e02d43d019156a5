// Package pool implements a bounded, self-replenishing pool of live database
// connections shared across concurrent callers.
//
// Callers check connections out as Leases and hand them back by closing the
// Lease. Two background loops run for the pool's lifetime: the replenisher
// dials new connections whenever demand drains the idle set and capacity
// remains, and the reaper periodically drops connections that have sat idle
// past maxIdleTime (down to the initSize floor) or stopped answering their
// health probe. All of idle set, live counter and state are guarded by one
// mutex; at all times 0 <= idle <= live <= maxSize, and live-idle equals the
// number of outstanding leases.
package pool
