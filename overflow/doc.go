// Package overflow
// Author: momentics <momentics@gmail.com>
//
// Caller-side policies for pushes rejected by a full ConstVec. A ConstVec
// never grows; Redirector keeps the rejected values in a FIFO backlog
// (github.com/eapache/queue) until they are drained into another vector.
package overflow
