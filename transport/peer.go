package transport

import "github.com/railyard-signalling/interlocking/sci"

// Peer is the remote side of a RaSTA connection: something that accepts
// encoded SCI telegrams. A real implementation would hold an
// rasta-equivalent safety-transport session; that transport is outside
// this repository's scope, so Peer is the seam a real driver plugs into.
type Peer interface {
	Send(tg *sci.Telegram) error
}
