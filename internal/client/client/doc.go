// Package client implements the transport layer of the FileKeeper CLI.
//
// It maintains one TCP connection to the server and exchanges JSON request
// and response documents over it. The client remembers the session token the
// server hands out on register/login and attaches it to every subsequent
// request, so callers only deal with actions and bodies.
package client
