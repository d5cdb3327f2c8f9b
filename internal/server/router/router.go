// Package router turns raw request payloads into service calls and shapes
// the results back into response envelopes. It owns the authentication gate:
// every action except register and login must present a valid token.
package router

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/filekeeper/internal/common"
	"github.com/dmitrijs2005/filekeeper/internal/logging"
	"github.com/dmitrijs2005/filekeeper/internal/protocol"
	"github.com/dmitrijs2005/filekeeper/internal/server/models"
	"github.com/dmitrijs2005/filekeeper/internal/server/services"
)

type Router struct {
	users    *services.UserService
	nav      *services.NavigatorService
	transfer *services.TransferService
	logger   logging.Logger
}

func New(users *services.UserService, nav *services.NavigatorService, transfer *services.TransferService, l logging.Logger) *Router {
	return &Router{
		users:    users,
		nav:      nav,
		transfer: transfer,
		logger:   l.With("module", "router"),
	}
}

// Handle processes one raw request payload and returns the encoded response.
//
// A payload that does not decode is a protocol failure: the error is handed
// back to the connection worker, which terminates that connection's loop.
// The same goes for backing-store failures mid-operation. Every other
// failure is recoverable and travels to the peer inside the response
// envelope; the connection stays open.
func (r *Router) Handle(ctx context.Context, payload []byte) ([]byte, error) {
	var req protocol.Request
	if err := json.Unmarshal(payload, &req); err != nil {
		return nil, fmt.Errorf("decoding request: %w", err)
	}

	resp, err := r.route(ctx, &req)
	if err != nil {
		return nil, err
	}

	out, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("encoding response: %w", err)
	}
	return out, nil
}

func (r *Router) route(ctx context.Context, req *protocol.Request) (protocol.Response, error) {

	// register and login are the only actions that bypass the gate
	switch req.Action {
	case protocol.ActionRegister:
		return r.register(ctx, req)
	case protocol.ActionLogin:
		return r.login(ctx, req)
	}

	user, err := r.users.Authenticate(ctx, req.Token)
	if err != nil {
		return protocol.Err(protocol.MsgNotAuthenticated), nil
	}

	switch req.Action {
	case protocol.ActionList:
		return r.list(ctx, user)
	case protocol.ActionCreateFolder:
		return r.createFolder(ctx, user, req.Body.Folder)
	case protocol.ActionChangeFolder:
		return r.changeFolder(ctx, user, req.Body.Folder)
	case protocol.ActionReadFile:
		return r.readFile(ctx, user, req.Body.Filename)
	case protocol.ActionWriteFile:
		return r.writeFile(ctx, user, req.Body.Filename, req.Body.Content)
	default:
		return protocol.Err(protocol.MsgInvalidAction), nil
	}
}

func (r *Router) register(ctx context.Context, req *protocol.Request) (protocol.Response, error) {
	user, err := r.users.Register(ctx, req.Body.Username, req.Body.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUserExists):
			return protocol.Err(protocol.MsgUserExists), nil
		case errors.Is(err, common.ErrorInvalidArguments):
			return protocol.Err(protocol.MsgInvalidArguments), nil
		}
		return protocol.Response{}, err
	}

	r.logger.Info(ctx, "Registered", "username", user.UserName)

	resp := protocol.OK(protocol.MsgRegistered)
	resp.Token = user.ID
	return resp, nil
}

func (r *Router) login(ctx context.Context, req *protocol.Request) (protocol.Response, error) {
	user, err := r.users.Login(ctx, req.Token, req.Body.Username, req.Body.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorAlreadyLoggedIn):
			return protocol.Err(protocol.MsgAlreadyLoggedIn), nil
		case errors.Is(err, common.ErrorUserNotFound):
			return protocol.Err(protocol.MsgUserNotFound), nil
		case errors.Is(err, common.ErrorInvalidCredentials):
			return protocol.Err(protocol.MsgInvalidCreds), nil
		case errors.Is(err, common.ErrorInvalidArguments):
			return protocol.Err(protocol.MsgInvalidArguments), nil
		}
		return protocol.Response{}, err
	}

	resp := protocol.OK(protocol.MsgLoggedIn)
	resp.Token = user.ID
	return resp, nil
}

func (r *Router) list(ctx context.Context, user *models.User) (protocol.Response, error) {
	files, err := r.nav.List(ctx, user)
	if err != nil {
		return protocol.Response{}, err
	}

	data, err := json.Marshal(files)
	if err != nil {
		return protocol.Response{}, fmt.Errorf("encoding listing: %w", err)
	}
	return protocol.Response{Status: protocol.StatusOK, Data: data}, nil
}

func (r *Router) createFolder(ctx context.Context, user *models.User, folder string) (protocol.Response, error) {
	if err := r.nav.CreateFolder(ctx, user, folder); err != nil {
		switch {
		case errors.Is(err, common.ErrorInvalidFolderName):
			return protocol.Err(protocol.MsgInvalidFolder), nil
		case errors.Is(err, common.ErrorFolderExists):
			return protocol.Err(protocol.MsgFolderExists), nil
		}
		return protocol.Response{}, err
	}
	return protocol.OK(protocol.MsgCreatedFolder), nil
}

func (r *Router) changeFolder(ctx context.Context, user *models.User, folder string) (protocol.Response, error) {
	if err := r.nav.ChangeFolder(ctx, user, folder); err != nil {
		switch {
		case errors.Is(err, common.ErrorInvalidFolderName):
			return protocol.Err(protocol.MsgInvalidFolder), nil
		case errors.Is(err, common.ErrorFolderNotFound):
			return protocol.Err(protocol.MsgFolderNotFound), nil
		}
		return protocol.Response{}, err
	}
	return protocol.OK(protocol.MsgChangedFolder), nil
}

func (r *Router) readFile(ctx context.Context, user *models.User, filename string) (protocol.Response, error) {

	// an empty filename terminates the read session
	if filename == "" {
		r.transfer.CloseCursor(user.ID)
		return protocol.OK(protocol.MsgFileClosed), nil
	}

	chunk, err := r.transfer.ReadChunk(ctx, user, filename)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorInvalidFileName):
			return protocol.Err(protocol.MsgInvalidFile), nil
		case errors.Is(err, common.ErrorFileNotFound):
			return protocol.Err(protocol.MsgFileNotFound), nil
		}
		return protocol.Response{}, err
	}

	data, err := json.Marshal(chunk)
	if err != nil {
		return protocol.Response{}, fmt.Errorf("encoding chunk: %w", err)
	}
	return protocol.Response{Status: protocol.StatusOK, Data: data}, nil
}

func (r *Router) writeFile(ctx context.Context, user *models.User, filename, content string) (protocol.Response, error) {
	if err := r.transfer.WriteFile(ctx, user, filename, content); err != nil {
		if errors.Is(err, common.ErrorInvalidFileName) {
			return protocol.Err(protocol.MsgInvalidFile), nil
		}
		return protocol.Response{}, err
	}
	return protocol.OK(protocol.MsgWritten), nil
}
