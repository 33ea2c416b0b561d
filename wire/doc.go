// Package wire is the datagram codec spoken between a solver and a remote
// scenario controller. Every message starts with a one-byte kind, a one-byte
// node count and a big-endian u32 scenario id:
//
//	0x01 ScenarioRequest   kind | nodes | scenario                 6 bytes
//	0x02 ScenarioDelivery  kind | nodes | scenario | nodes² bytes  6+n² bytes
//	0x03 SolveSubmission   kind | nodes | scenario | distance u32  10 bytes
//	0x04 SolveAck          kind | nodes | scenario | status u8     7 bytes
//
// Unmarshal tolerates trailing bytes and rejects anything shorter than the
// layout of its kind.
package wire
