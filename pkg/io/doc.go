// Package io provides JSON import and export for recorded traversals.
//
// # Overview
//
// A [dance.Trace] holds every snapshot of a run in memory. This package
// writes such a trace to a simple JSON document so a run can be inspected
// with external tools or replayed later without rebuilding the ring.
//
// # JSON Format
//
//	{
//	  "nodes": 3,
//	  "steps": [
//	    {"depth": 0, "phase": "remove",  "value": 0, "values": [0, 1, 2]},
//	    {"depth": 1, "phase": "remove",  "value": 1, "values": [1, 2]},
//	    {"depth": 1, "phase": "restore", "value": 1, "values": [1, 2]},
//	    {"depth": 0, "phase": "restore", "value": 0, "values": [0, 1, 2]}
//	  ]
//	}
//
// "nodes" is the size of the ring the trace was recorded from. Each step
// carries its recursion depth, its phase ("remove" or "restore"), the value
// removed or restored at that level, and the ring contents in a forward
// walk from that node.
//
// # Import
//
// Use [ImportJSON] to read a trace from a file path, or [ReadJSON] to read
// from any io.Reader:
//
//	tr, err := io.ImportJSON[int]("run.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Both check that the steps describe a well-formed traversal: phases pair
// up, and every snapshot starts at the node it reports.
//
// # Export
//
// Use [ExportJSON] to write a trace to a file, or [WriteJSON] to write to
// any io.Writer.
package io
