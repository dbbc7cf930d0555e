package transport

import "net"

// Bind resolves the address and opens a plain TCP listener on it. A failure
// here is fatal to the caller: there is nothing to serve without a socket.
func Bind(addr string) (net.Listener, error) {
	tcpaddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return nil, err
	}

	return net.ListenTCP("tcp", tcpaddr)
}
