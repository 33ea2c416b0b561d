// Package remote runs the scenario exchange over UDP.
//
// A Client asks a controller for a scenario, solves it with a tsp.Engine and
// submits the optimal distance:
//
//	client                     controller
//	  ScenarioRequest   ───▶
//	                    ◀───   ScenarioDelivery (or SolveAck: unknown scenario)
//	  SolveSubmission   ───▶
//	                    ◀───   SolveAck
//
// Requests are retransmitted when no matching reply arrives within the
// timeout. Datagrams that fail to decode or do not match the pending request
// are dropped with a logged diagnostic and never reach the engine.
//
// A Server plays the controller: it derives scenarios deterministically with
// builder.ScenarioFor and verifies submissions against its own engine run.
package remote
