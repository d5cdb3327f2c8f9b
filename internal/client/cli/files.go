package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/dmitrijs2005/filekeeper/internal/protocol"
)

// askName returns the given name, prompting for one when it is empty.
func (a *App) askName(name, prompt string) (string, error) {
	if name != "" {
		return name, nil
	}
	return getSimpleText(a.reader, prompt, os.Stdout)
}

// List fetches the current folder's listing and renders it as a table.
func (a *App) List(ctx context.Context) error {
	resp, err := a.api.Do(protocol.ActionList, protocol.Body{})
	if err != nil {
		printOutcome(resp, err)
		return err
	}

	var files []protocol.FileInfo
	if err := json.Unmarshal(resp.Data, &files); err != nil {
		errorColor.Println(err.Error())
		return err
	}

	if len(files) == 0 {
		printlnFn("No files")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "Size", "Created")
	for _, f := range files {
		table.Append([]string{
			f.Name,
			strconv.FormatInt(f.Size, 10),
			time.Unix(f.CTime, 0).Format(time.DateTime),
		})
	}
	return table.Render()
}

// CreateFolder creates a folder inside the current one.
func (a *App) CreateFolder(ctx context.Context, name string) error {
	name, err := a.askName(name, "Enter folder name")
	if err != nil {
		return err
	}

	resp, err := a.api.Do(protocol.ActionCreateFolder, protocol.Body{Folder: name})
	printOutcome(resp, err)
	return err
}

// ChangeFolder switches the current folder; ".." goes up one level.
func (a *App) ChangeFolder(ctx context.Context, name string) error {
	name, err := a.askName(name, "Enter folder name")
	if err != nil {
		return err
	}

	resp, err := a.api.Do(protocol.ActionChangeFolder, protocol.Body{Folder: name})
	printOutcome(resp, err)
	return err
}

// ReadFile streams a file from the server chunk by chunk and prints it.
// After the final chunk it sends an empty filename so the server releases
// its read cursor.
func (a *App) ReadFile(ctx context.Context, name string) error {
	name, err := a.askName(name, "Enter file name")
	if err != nil {
		return err
	}

	for {
		resp, err := a.api.Do(protocol.ActionReadFile, protocol.Body{Filename: name})
		if err != nil {
			printOutcome(resp, err)
			return err
		}

		var chunk string
		if err := json.Unmarshal(resp.Data, &chunk); err != nil {
			errorColor.Println(err.Error())
			return err
		}
		if chunk == "" {
			break
		}
		fmt.Print(chunk)
	}
	fmt.Println()

	// release the server-side cursor
	resp, err := a.api.Do(protocol.ActionReadFile, protocol.Body{})
	if err != nil {
		printOutcome(resp, err)
	}
	return err
}

// WriteFile prompts for text and appends it to the named file.
func (a *App) WriteFile(ctx context.Context, name string) error {
	name, err := a.askName(name, "Enter file name")
	if err != nil {
		return err
	}

	content, err := GetMultiline(a.reader, "Enter content", os.Stdout)
	if err != nil {
		return err
	}

	resp, err := a.api.Do(protocol.ActionWriteFile, protocol.Body{Filename: name, Content: content})
	printOutcome(resp, err)
	return err
}
