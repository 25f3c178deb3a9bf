// Package api serves layout editing over HTTP.
//
// A client opens an editing session, selects a widget and sends edit
// requests; every response carries the session's [editor.View]. Changes are
// persisted by the session's writer exactly as in the CLI and the TUI.
//
// # Routes
//
//	POST   /v1/sessions                       open a session in editing mode
//	GET    /v1/sessions/{id}                  view
//	DELETE /v1/sessions/{id}                  stop editing, flush writes
//	PUT    /v1/sessions/{id}/selection        {"widget": "time"}
//	DELETE /v1/sessions/{id}/selection
//	POST   /v1/sessions/{id}/move             {"dx": 1, "dy": 0}
//	POST   /v1/sessions/{id}/span             {"axis": "row"}
//	PUT    /v1/sessions/{id}/align            {"box": "end", "text": "left"}
//	PUT    /v1/sessions/{id}/density          {"density": "triple"}
//	PUT    /v1/sessions/{id}/widgets/{widget} {"enabled": true}
//	POST   /v1/sessions/{id}/reset
//	GET    /v1/sessions/{id}/layout.css       live stylesheet of the session
//	GET    /v1/layout                         stored active layout
//	GET    /v1/layout.css                     stored stylesheet
//	GET    /healthz
//
// # Errors
//
// Failures are JSON objects {"code", "message"} with the [errors.Code] of the
// failure. The status follows the code: 409 for NO_SELECTION and
// NOT_EDITING, 400 for invalid input, 404 for missing widgets and sessions,
// 422 for UNSUPPORTED, 500 otherwise.
//
// [editor.View]: github.com/matzehuels/tabgrid/pkg/core/editor#View
// [errors.Code]: github.com/matzehuels/tabgrid/pkg/errors#Code
package api
