// Package server exposes a session over HTTP.
//
// The server is the control socket of a simulated window manager: clients
// spawn and close windows, send layout messages and read the resulting
// layout as JSON, SVG or a Graphviz tree. All requests are serialized, so
// the layout algorithm never sees concurrent calls.
//
// Routes:
//
//	GET    /healthz
//	GET    /layout               layout snapshot (JSON)
//	GET    /layout.svg           drawing of the work area
//	GET    /layout.dot           column tree in DOT; ?format=svg renders it
//	GET    /predict              size of the next spawned window
//	PUT    /workarea             {"x","y","w","h"}
//	POST   /windows              {"title"}
//	DELETE /windows/{id}         ?kill=true destroys without notifying the layout
//	POST   /windows/{id}/focus
//	POST   /windows/{id}/move    {"direction"}
//	POST   /windows/{id}/drop    {"x","y"}
//	POST   /swap                 {"a","b"}
//	POST   /layoutmsg            {"message"}
//
// Windows may be addressed by id or title. Errors are JSON objects with
// "error" and "code" fields. Every successful mutation publishes an
// [events.Event].
package server
