// File: internal/concurrency/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Low-level concurrency helpers for constvec: bounded CAS backoff and
// CPU pinning for stress workloads. Affinity is implemented with
// golang.org/x/sys/unix on Linux and is a reported no-op elsewhere.
package concurrency
