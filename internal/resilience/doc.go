// Package resilience groups fault-tolerance helpers for calls into the
// record store.
//
// circuitbreaker wraps the *sql.DB handle so that a failing database trips
// the breaker and requests fail fast instead of piling up on dead
// connections:
//
//	dcb := circuitbreaker.NewDBCircuitBreaker(db)
//	repo := postgres.NewNewsRepo(dcb)
//
// retry re-runs connection attempts with exponential backoff; db.Open uses
// it for the startup ping.
package resilience
