// SPDX-License-Identifier: MIT

// Package report renders routes for humans (text) and machines (JSON).
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/safepath/route"
)

// Namer resolves a vertex ID to its display name. *core.Graph implements it.
type Namer interface {
	Label(id string) string
}

type idNamer struct{}

func (idNamer) Label(id string) string { return id }

// Text writes the route in the classic console layout:
//
//	Safest Path:
//	=========================
//	From <A> to <B> | Distance: <d> | Safety Score: <s>
//	...
//
//	Total Distance: <d>
//	Total Safety Score: <s>
//
// A nil names prints raw vertex IDs.
func Text(w io.Writer, rt *route.Route, names Namer) error {
	if names == nil {
		names = idNamer{}
	}
	ew := &errWriter{w: w}

	ew.printf("Safest Path:\n")
	ew.printf("=========================\n")
	for _, h := range rt.Hops {
		ew.printf("From %s to %s | Distance: %.2f | Safety Score: %.2f\n",
			names.Label(h.From), names.Label(h.To), h.Distance, h.SafetyScore)
	}
	ew.printf("\nTotal Distance: %.2f\n", rt.TotalDistance)
	ew.printf("Total Safety Score: %.2f\n", rt.TotalSafetyScore)

	return ew.err
}

// jsonRoute decorates a Route with display names.
type jsonRoute struct {
	*route.Route
	Labels map[string]string `json:"labels,omitempty"`
}

// JSON writes the route as one indented JSON document.
func JSON(w io.Writer, rt *route.Route, names Namer) error {
	out := jsonRoute{Route: rt}
	if names != nil {
		out.Labels = make(map[string]string, len(rt.Nodes))
		for _, id := range rt.Nodes {
			out.Labels[id] = names.Label(id)
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// errWriter remembers the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
