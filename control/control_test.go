// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// control_test.go - metrics registry and debug probe coverage.
package control_test

import (
	"testing"

	"github.com/momentics/constvec"
	"github.com/momentics/constvec/api"
	"github.com/momentics/constvec/control"
)

func TestMetricsRegistry_Basic(t *testing.T) {
	reg := control.NewMetricsRegistry()
	reg.Set("foo.count", int64(42))
	reg.Set("bar.status", "ok")

	metrics := reg.GetSnapshot()
	if metrics["foo.count"] != int64(42) {
		t.Error("MetricsRegistry: value mismatch")
	}
	if metrics["bar.status"] != "ok" {
		t.Error("MetricsRegistry: string value mismatch")
	}
	if reg.Updated().IsZero() {
		t.Error("MetricsRegistry: update time not recorded")
	}
}

func TestMetricsRegistry_ObserveVec(t *testing.T) {
	v := constvec.New[int](4)
	_ = v.Push(1)
	_ = v.Push(2)
	_ = v.Push(3)
	_ = v.Push(4)
	_ = v.Push(5)

	reg := control.NewMetricsRegistry()
	reg.Observe("ingest", v)
	m := reg.GetSnapshot()
	if m["ingest.capacity"] != int64(4) || m["ingest.len"] != int64(4) {
		t.Fatalf("unexpected occupancy metrics: %v", m)
	}
	if m["ingest.rejected"] != int64(1) {
		t.Fatalf("rejected = %v", m["ingest.rejected"])
	}
	if m["ingest.utilization"] != 1.0 {
		t.Fatalf("utilization = %v", m["ingest.utilization"])
	}
}

func TestDebugProbes_StatsAndPlatform(t *testing.T) {
	v := constvec.New[string](8)
	dp := control.NewDebugProbes()
	dp.RegisterStatsProbe("vec", v)
	control.RegisterPlatformProbes(dp)

	_ = v.Push("x")
	state := dp.DumpState()
	st, ok := state["vec"].(api.VecStats)
	if !ok {
		t.Fatalf("vec probe returned %T", state["vec"])
	}
	if st.Len != 1 || st.Capacity != 8 {
		t.Fatalf("probe stats %+v", st)
	}
	if n, ok := state["platform.cpus"].(int); !ok || n < 1 {
		t.Fatalf("platform.cpus = %v", state["platform.cpus"])
	}
	if n, ok := state["platform.allowed_cpus"].(int); !ok || n < 1 {
		t.Fatalf("platform.allowed_cpus = %v", state["platform.allowed_cpus"])
	}
}
