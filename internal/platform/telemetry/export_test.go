package telemetry

var HostPort = hostPort
