// Package protocol defines the wire envelope spoken between the FileKeeper
// client and server: one JSON object per logical request or response over a
// plain TCP connection. There is no length prefix or framing beyond JSON
// itself; the connection layer is responsible for delivering one complete
// decodable value per call.
package protocol

import "encoding/json"

// Actions understood by the server. Register and login are the only two that
// do not require a token.
const (
	ActionRegister     = "register"
	ActionLogin        = "login"
	ActionList         = "list"
	ActionCreateFolder = "create_folder"
	ActionChangeFolder = "change_folder"
	ActionReadFile     = "read_file"
	ActionWriteFile    = "write_file"
)

// Response status codes. The protocol has no finer-grained taxonomy:
// everything that is not a success is a 500 with a message.
const (
	StatusOK    = 200
	StatusError = 500
)

// Messages returned to the peer. These are part of the wire contract and
// must stay byte-for-byte stable, misspellings included.
const (
	MsgRegistered       = "Registration successfull"
	MsgLoggedIn         = "Login successfull"
	MsgUserExists       = "User already exists"
	MsgAlreadyLoggedIn  = "Already Logged in"
	MsgUserNotFound     = "User not found"
	MsgInvalidCreds     = "Invalid credentials"
	MsgInvalidArguments = "Invalid arguments"
	MsgNotAuthenticated = "Not Authenticated! Please login"
	MsgInvalidFolder    = "Invalid folder name"
	MsgInvalidFile      = "Invalid file name"
	MsgFolderExists     = "Directory already exists"
	MsgFolderNotFound   = "Directory not exists"
	MsgFileNotFound     = "File doesn't exists"
	MsgCreatedFolder    = "Created Directory"
	MsgChangedFolder    = "Changed Directory"
	MsgWritten          = "Written to file"
	MsgFileClosed       = "Current file closed"
	MsgInvalidAction    = "Invalid action"
)

// Body carries the action-specific request fields. Fields a given action does
// not use are left empty; for read_file an absent filename and an empty one
// mean the same thing (close the cursor).
type Body struct {
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	Folder   string `json:"folder,omitempty"`
	Filename string `json:"filename,omitempty"`
	Content  string `json:"content,omitempty"`
}

// Request is the envelope sent by the client. Token is the bearer credential
// issued by register/login (it is the user's id); the client attaches it to
// every request after the first success.
type Request struct {
	Action string `json:"action"`
	Body   Body   `json:"body"`
	Token  string `json:"token,omitempty"`
}

// FileInfo is one row of a list response.
type FileInfo struct {
	Name  string `json:"name"`
	Size  int64  `json:"size"`
	CTime int64  `json:"ctime"`
}

// Response is the envelope written back by the server. Data holds either a
// chunk string (read_file) or an array of FileInfo (list); it is kept raw so
// each side decodes it against the action it issued. Token is present only on
// successful register/login.
type Response struct {
	Status  int             `json:"status"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Token   string          `json:"token,omitempty"`
}

// OK builds a success response carrying only a message.
func OK(message string) Response {
	return Response{Status: StatusOK, Message: message}
}

// Err builds an error response. All recoverable failures travel this way;
// the connection stays open.
func Err(message string) Response {
	return Response{Status: StatusError, Message: message}
}
