package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/filekeeper/internal/protocol"
)

type fakeAPI struct {
	responses []*protocol.Response
	errs      []error
	requests  []protocol.Request
	loggedIn  bool
	closed    bool
}

func (f *fakeAPI) Do(action string, body protocol.Body) (*protocol.Response, error) {
	f.requests = append(f.requests, protocol.Request{Action: action, Body: body})
	i := len(f.requests) - 1
	var resp *protocol.Response
	var err error
	if i < len(f.responses) {
		resp = f.responses[i]
	}
	if i < len(f.errs) {
		err = f.errs[i]
	}
	return resp, err
}

func (f *fakeAPI) IsLoggedIn() bool { return f.loggedIn }
func (f *fakeAPI) Logout()          { f.loggedIn = false }
func (f *fakeAPI) Close() error {
	f.closed = true
	return nil
}

func newTestApp(api *fakeAPI, input string) *App {
	return &App{api: api, reader: bufio.NewReader(strings.NewReader(input))}
}

func stubPrompts(t *testing.T, text, password string) {
	t.Helper()

	origText, origPassword, origPrintln := getSimpleText, getPassword, printlnFn
	t.Cleanup(func() {
		getSimpleText, getPassword, printlnFn = origText, origPassword, origPrintln
	})

	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) { return text, nil }
	getPassword = func(io.Writer) (string, error) { return password, nil }
	printlnFn = func(...any) (int, error) { return 0, nil }
}

func TestApp_Register(t *testing.T) {
	stubPrompts(t, "alice", "pw")

	api := &fakeAPI{responses: []*protocol.Response{
		{Status: protocol.StatusOK, Message: protocol.MsgRegistered, Token: "tok-1"},
	}}
	a := newTestApp(api, "")

	require.NoError(t, a.Register(context.Background()))

	require.Len(t, api.requests, 1)
	assert.Equal(t, protocol.ActionRegister, api.requests[0].Action)
	assert.Equal(t, "alice", api.requests[0].Body.Username)
	assert.Equal(t, "pw", api.requests[0].Body.Password)
}

func TestApp_LoginFailurePropagates(t *testing.T) {
	stubPrompts(t, "alice", "nope")

	wantErr := errors.New("server error: Invalid credentials")
	api := &fakeAPI{
		responses: []*protocol.Response{{Status: protocol.StatusError, Message: protocol.MsgInvalidCreds}},
		errs:      []error{wantErr},
	}
	a := newTestApp(api, "")

	err := a.Login(context.Background())
	require.ErrorIs(t, err, wantErr)
}

func TestApp_CreateFolderUsesArgument(t *testing.T) {
	stubPrompts(t, "should-not-be-used", "")

	api := &fakeAPI{responses: []*protocol.Response{
		{Status: protocol.StatusOK, Message: protocol.MsgCreatedFolder},
	}}
	a := newTestApp(api, "")

	require.NoError(t, a.CreateFolder(context.Background(), "docs"))

	require.Len(t, api.requests, 1)
	assert.Equal(t, protocol.ActionCreateFolder, api.requests[0].Action)
	assert.Equal(t, "docs", api.requests[0].Body.Folder)
}

func TestApp_ChangeFolderPromptsWhenArgumentMissing(t *testing.T) {
	stubPrompts(t, "docs", "")

	api := &fakeAPI{responses: []*protocol.Response{
		{Status: protocol.StatusOK, Message: protocol.MsgChangedFolder},
	}}
	a := newTestApp(api, "")

	require.NoError(t, a.ChangeFolder(context.Background(), ""))

	require.Len(t, api.requests, 1)
	assert.Equal(t, "docs", api.requests[0].Body.Folder)
}

func TestApp_ReadFileDrainsAndClosesCursor(t *testing.T) {
	stubPrompts(t, "", "")

	chunk1, _ := json.Marshal("hel")
	chunk2, _ := json.Marshal("lo")
	empty, _ := json.Marshal("")

	api := &fakeAPI{responses: []*protocol.Response{
		{Status: protocol.StatusOK, Data: chunk1},
		{Status: protocol.StatusOK, Data: chunk2},
		{Status: protocol.StatusOK, Data: empty},
		{Status: protocol.StatusOK, Message: protocol.MsgFileClosed},
	}}
	a := newTestApp(api, "")

	require.NoError(t, a.ReadFile(context.Background(), "notes.txt"))

	require.Len(t, api.requests, 4)
	for _, req := range api.requests {
		assert.Equal(t, protocol.ActionReadFile, req.Action)
	}
	assert.Equal(t, "notes.txt", api.requests[0].Body.Filename)
	assert.Equal(t, "notes.txt", api.requests[2].Body.Filename)
	assert.Equal(t, "", api.requests[3].Body.Filename, "the final request releases the cursor")
}

func TestApp_WriteFile(t *testing.T) {
	stubPrompts(t, "notes.txt", "")

	api := &fakeAPI{responses: []*protocol.Response{
		{Status: protocol.StatusOK, Message: protocol.MsgWritten},
	}}
	// multiline content ends on the blank line
	a := newTestApp(api, "hello\nworld\n\n")

	require.NoError(t, a.WriteFile(context.Background(), ""))

	require.Len(t, api.requests, 1)
	assert.Equal(t, protocol.ActionWriteFile, api.requests[0].Action)
	assert.Equal(t, "notes.txt", api.requests[0].Body.Filename)
	assert.Equal(t, "hello\nworld", api.requests[0].Body.Content)
}

func TestApp_List(t *testing.T) {
	stubPrompts(t, "", "")

	data, _ := json.Marshal([]protocol.FileInfo{
		{Name: "notes.txt", Size: 6, CTime: 1700000000},
	})
	api := &fakeAPI{responses: []*protocol.Response{
		{Status: protocol.StatusOK, Data: data},
	}}
	a := newTestApp(api, "")

	require.NoError(t, a.List(context.Background()))
	require.Len(t, api.requests, 1)
	assert.Equal(t, protocol.ActionList, api.requests[0].Action)
}

func TestApp_Logout(t *testing.T) {
	stubPrompts(t, "", "")

	api := &fakeAPI{loggedIn: true}
	a := newTestApp(api, "")

	require.NoError(t, a.Logout(context.Background()))
	assert.False(t, api.loggedIn)
}
