// Package config loads deployment configuration for the software timer
// library from YAML.
//
// The core library is configured in code; this package exists for
// applications that want to select the precondition violation policy and
// the diagnostic event sinks from a config file instead of recompiling,
// mirroring the compile-time configuration header of classic embedded
// deployments.
//
// Example configuration:
//
//	tick_unit: ms
//	violation_policy: log   # panic | log | ignore
//	event_log: /var/log/app/timers.tlog
//	console_events: true
package config
