// Package models holds the server-side data records.
package models

// User is one identity record in the registry. ID doubles as the session
// token: authenticating a request is nothing more than looking its token up
// among the user ids.
//
// Password is stored verbatim. That mirrors the protocol this server is
// compatible with and is a known weakness of the contract, kept deliberately
// rather than silently replaced with a hash.
//
// Dir is the user's home directory, fixed at registration. CWD is the user's
// current directory and is always Dir or a descendant of it. The JSON tags
// follow the on-disk registry document; the id lives in the document key, not
// in the record.
type User struct {
	ID       string `json:"-"`
	UserName string `json:"username"`
	Password string `json:"password"`
	Dir      string `json:"dir"`
	CWD      string `json:"cwd"`
}
