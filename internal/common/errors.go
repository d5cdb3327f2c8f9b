// Package common defines the sentinel errors shared by the client and server
// layers of FileKeeper. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// repository-level errors
	ErrorNotFound = errors.New("not found")

	// auth-specific errors
	ErrorNotAuthenticated   = errors.New("not authenticated")
	ErrorAlreadyLoggedIn    = errors.New("already logged in")
	ErrorUserExists         = errors.New("user already exists")
	ErrorUserNotFound       = errors.New("user not found")
	ErrorInvalidCredentials = errors.New("invalid credentials")
	ErrorInvalidArguments   = errors.New("invalid arguments")

	// sandbox / filesystem errors
	ErrorInvalidFolderName = errors.New("invalid folder name")
	ErrorInvalidFileName   = errors.New("invalid file name")
	ErrorFolderExists      = errors.New("directory already exists")
	ErrorFolderNotFound    = errors.New("directory does not exist")
	ErrorFileNotFound      = errors.New("file does not exist")
)
