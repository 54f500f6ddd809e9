/*
Package server implements msgpack IPC for fuzzy-match services.

The server provides a minimal request/response interface over stdin/stdout
using binary msgpack encoding. Clients send one structured message at a
time and receive one response; messages are processed synchronously with
microsecond timing info included in match responses.

A match request looks like:

	{"id": "req_001", "op": "match", "p": "stauts", "l": 10}

and yields suggestions ranked by similarity:

	{"id": "req_001", "r": [{"w": "status", "s": 0.82}], "c": 1, "t": 145}

Dictionary management uses the same envelope with op "add", "remove" or
"count":

	{"id": "dict_001", "op": "add", "w": "rebase", "g": "git command"}
	{"id": "dict_002", "op": "remove", "w": "rebase"}

Failures come back as an error message carrying the request ID and a
protocol code in the 4xx/5xx convention.
*/
package server

// Request is the envelope for every incoming message.
type Request struct {
	ID            string  `msgpack:"id"`
	Op            string  `msgpack:"op"`           // "match", "add", "remove", "count"
	Pattern       string  `msgpack:"p,omitempty"`  // match pattern
	Word          string  `msgpack:"w,omitempty"`  // add/remove target
	Tag           string  `msgpack:"g,omitempty"`  // optional tag for "add"
	Limit         int     `msgpack:"l,omitempty"`  // max results
	MinSimilarity float64 `msgpack:"m,omitempty"`  // score threshold
	NoTags        bool    `msgpack:"nt,omitempty"` // omit tags from results
}

// MatchEntry is one ranked suggestion in a match response.
type MatchEntry struct {
	Word       string  `msgpack:"w"`
	Similarity float64 `msgpack:"s"`
	Tag        string  `msgpack:"g,omitempty"`
}

// MatchResponse answers a match request.
type MatchResponse struct {
	ID        string       `msgpack:"id"`
	Matches   []MatchEntry `msgpack:"r"`
	Count     int          `msgpack:"c"`
	TimeTaken int64        `msgpack:"t"` // microseconds
}

// DictResponse answers add/remove/count requests.
type DictResponse struct {
	ID      string `msgpack:"id"`
	Status  string `msgpack:"status"`
	Removed bool   `msgpack:"removed,omitempty"`
	Count   int    `msgpack:"count,omitempty"`
}

// ErrorResponse reports a failed request.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
