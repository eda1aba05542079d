package logging

import "log/slog"

// Field keys shared by every log line so queries work across packages.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldRound      = "round"
	FieldKind       = "kind"
	FieldTool       = "tool"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
)

// CommonAttrs returns the service and version attrs attached to every record, skipping empty values.
func CommonAttrs(service, version string) []slog.Attr {
	var attrs []slog.Attr
	if service != "" {
		attrs = append(attrs, slog.String(FieldService, service))
	}
	if version != "" {
		attrs = append(attrs, slog.String(FieldVersion, version))
	}
	return attrs
}
