// Package stream bridges runs to renderers over HTTP and WebSocket.
//
// Routes:
//
//	GET  /runs          list of runs: id, algorithm, status, steps
//	POST /runs          start a catalog run (requires WithCatalog)
//	GET  /runs/{id}     one run summary
//	GET  /runs/{id}/ws  WebSocket step stream
//
// The WebSocket sends every step of the run as a JSON text frame starting at
// sequence 0, then one final frame {"status": ..., "result": ...} and a close
// frame. The client may send control frames at any time:
//
//	{"op":"cancel"}
//	{"op":"pacing","ms":120}
//	{"op":"pause"}
//	{"op":"resume"}
//	{"op":"advance"}
//
// Renderers never mutate a run except through these controls.
//
// Finished runs stay addressable for the retention period (WithRetention,
// ten minutes by default) and are then dropped from the Runner.
package stream
