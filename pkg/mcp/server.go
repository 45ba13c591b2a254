// Copyright 2026 cloudygreybeard
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package mcp exposes favorites over the Model Context Protocol.
//
// The server runs over stdio and offers tools that mirror the CLI commands
// plus the favorites://tree resource, a JSON export of the active group.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/cloudygreybeard/favorites/pkg/export"
	exportjson "github.com/cloudygreybeard/favorites/pkg/export/json"
	"github.com/cloudygreybeard/favorites/pkg/favorite"
	"github.com/cloudygreybeard/favorites/pkg/logging"
	"github.com/cloudygreybeard/favorites/pkg/service"
)

// TreeURI is the URI of the tree resource.
const TreeURI = "favorites://tree"

// DefaultDepth is how deep directory favorites are listed by default.
const DefaultDepth = 1

// Server serves a Manager over MCP.
type Server struct {
	manager *service.Manager
	mcp     *server.MCPServer
	log     *logging.Logger
}

// NewServer creates a server for manager and registers its tools and
// resources.
func NewServer(manager *service.Manager, version string) *Server {
	s := &Server{
		manager: manager,
		mcp: server.NewMCPServer(
			"favorites",
			version,
			server.WithToolCapabilities(true),
			server.WithResourceCapabilities(false, false),
		),
		log: logging.Get("mcp"),
	}

	s.mcp.AddTool(listTool(), s.handleList)
	s.mcp.AddTool(addTool(), s.handleAdd)
	s.mcp.AddTool(createFolderTool(), s.handleCreateFolder)
	s.mcp.AddTool(renameFolderTool(), s.handleRenameFolder)
	s.mcp.AddTool(deleteFavoriteTool(), s.handleDeleteFavorite)
	s.mcp.AddTool(deleteFolderTool(), s.handleDeleteFolder)
	s.mcp.AddTool(moveTool(), s.handleMove)
	s.mcp.AddTool(sortTool(), s.handleSort)
	s.mcp.AddTool(groupTool(), s.handleGroup)

	s.mcp.AddResource(
		mcp.NewResource(TreeURI, "Favorites tree",
			mcp.WithResourceDescription("The active group as a JSON tree"),
			mcp.WithMIMEType("application/json"),
		),
		s.handleTree,
	)

	return s
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// Run serves requests from in and writes responses to out until ctx is
// done or in is closed.
func (s *Server) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	s.log.Info("serving MCP over stdio")
	return server.NewStdioServer(s.mcp).Listen(ctx, in, out)
}

// --- list_favorites ---

func listTool() mcp.Tool {
	return mcp.NewTool("list_favorites",
		mcp.WithDescription("List the favorites of the active group as an indented tree."),
		mcp.WithNumber("depth",
			mcp.Description("How many levels of directory favorites to list (default 1)."),
		),
	)
}

func (s *Server) handleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	nodes, view, err := s.manager.Tree(ctx, req.GetInt("depth", DefaultDepth))
	if err != nil {
		return toolError(err)
	}
	if len(nodes) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No favorites in group %s.", view.GroupOrDefault())), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "group: %s  sort: %s\n", view.GroupOrDefault(), view.Sort)
	renderNodes(&sb, nodes, "")
	return mcp.NewToolResultText(sb.String()), nil
}

func renderNodes(sb *strings.Builder, nodes []*favorite.Node, prefix string) {
	for _, n := range nodes {
		switch export.Kind(n.Item) {
		case "folder":
			fmt.Fprintf(sb, "%s%s/  [folder %s]\n", prefix, n.Item.Label, n.Item.ID)
		case "directory":
			fmt.Fprintf(sb, "%s%s/  %s\n", prefix, n.Item.Label, n.Item.Location)
		default:
			fmt.Fprintf(sb, "%s%s  %s\n", prefix, n.Item.Label, n.Item.Location)
		}
		renderNodes(sb, n.Children, prefix+"  ")
	}
}

// --- add_favorite ---

func addTool() mcp.Tool {
	return mcp.NewTool("add_favorite",
		mcp.WithDescription("Add a file, directory or URI to the active group."),
		mcp.WithString("location",
			mcp.Description("Path (absolute or workspace-relative) or URI"),
			mcp.Required(),
		),
		mcp.WithString("folder",
			mcp.Description("Folder ID or name to add into. Omit for the group root."),
		),
		mcp.WithString("title",
			mcp.Description("Optional display title"),
		),
	)
}

func (s *Server) handleAdd(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	location := req.GetString("location", "")
	if location == "" {
		return toolError(fmt.Errorf("location is required"))
	}

	e, err := s.manager.AddResource(ctx, location, req.GetString("folder", ""), req.GetString("title", ""))
	if err != nil {
		return result(err, "")
	}
	return mcp.NewToolResultText(fmt.Sprintf("Added %s (%s) to group %s.", e.FilePath, e.ID, e.Group)), nil
}

// --- create_folder ---

func createFolderTool() mcp.Tool {
	return mcp.NewTool("create_folder",
		mcp.WithDescription("Create a folder in the active group. Folder names are unique within a group."),
		mcp.WithString("name",
			mcp.Description("Folder name"),
			mcp.Required(),
		),
		mcp.WithString("parent",
			mcp.Description("Parent folder ID or name. Omit for the group root."),
		),
	)
}

func (s *Server) handleCreateFolder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	if name == "" {
		return toolError(fmt.Errorf("name is required"))
	}

	e, err := s.manager.AddFolder(ctx, name, req.GetString("parent", ""))
	if err != nil {
		return result(err, "")
	}
	return mcp.NewToolResultText(fmt.Sprintf("Created folder %s (%s).", e.Name, e.ID)), nil
}

// --- rename_folder ---

func renameFolderTool() mcp.Tool {
	return mcp.NewTool("rename_folder",
		mcp.WithDescription("Rename a folder of the active group."),
		mcp.WithString("folder",
			mcp.Description("Folder ID or current name"),
			mcp.Required(),
		),
		mcp.WithString("name",
			mcp.Description("New name"),
			mcp.Required(),
		),
	)
}

func (s *Server) handleRenameFolder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	folder, name := req.GetString("folder", ""), req.GetString("name", "")
	if folder == "" || name == "" {
		return toolError(fmt.Errorf("folder and name are required"))
	}
	err := s.manager.RenameFolder(ctx, folder, name)
	return result(err, fmt.Sprintf("Renamed %s to %s.", folder, name))
}

// --- delete_favorite ---

func deleteFavoriteTool() mcp.Tool {
	return mcp.NewTool("delete_favorite",
		mcp.WithDescription("Remove a favorite from the active group."),
		mcp.WithString("location",
			mcp.Description("Entry ID, path or URI of the favorite"),
			mcp.Required(),
		),
		mcp.WithString("folder",
			mcp.Description("Folder ID or name the favorite is in. Omit for the group root."),
		),
	)
}

func (s *Server) handleDeleteFavorite(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	location := req.GetString("location", "")
	if location == "" {
		return toolError(fmt.Errorf("location is required"))
	}
	err := s.manager.DeleteResource(ctx, location, req.GetString("folder", ""))
	return result(err, fmt.Sprintf("Removed %s.", location))
}

// --- delete_folder ---

func deleteFolderTool() mcp.Tool {
	return mcp.NewTool("delete_folder",
		mcp.WithDescription("Delete a folder with all of its subfolders and favorites."),
		mcp.WithString("folder",
			mcp.Description("Folder ID or name"),
			mcp.Required(),
		),
	)
}

func (s *Server) handleDeleteFolder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	folder := req.GetString("folder", "")
	if folder == "" {
		return toolError(fmt.Errorf("folder is required"))
	}
	err := s.manager.DeleteFolder(ctx, folder)
	return result(err, fmt.Sprintf("Deleted folder %s.", folder))
}

// --- move_favorite ---

func moveTool() mcp.Tool {
	return mcp.NewTool("move_favorite",
		mcp.WithDescription("Move a favorite among its siblings. Switches the sort order to manual."),
		mcp.WithString("location",
			mcp.Description("Entry ID, path or URI of the favorite"),
			mcp.Required(),
		),
		mcp.WithString("direction",
			mcp.Description("Where to move it"),
			mcp.Enum("up", "down", "top", "bottom"),
			mcp.Required(),
		),
		mcp.WithString("folder",
			mcp.Description("Folder ID or name the favorite is in. Omit for the group root."),
		),
	)
}

func (s *Server) handleMove(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	location := req.GetString("location", "")
	if location == "" {
		return toolError(fmt.Errorf("location is required"))
	}
	dir, err := favorite.ParseDirection(req.GetString("direction", ""))
	if err != nil {
		return toolError(err)
	}
	err = s.manager.Move(ctx, location, req.GetString("folder", ""), dir)
	return result(err, fmt.Sprintf("Moved %s %s.", location, dir))
}

// --- set_sort ---

func sortTool() mcp.Tool {
	return mcp.NewTool("set_sort",
		mcp.WithDescription("Set how favorites are ordered."),
		mcp.WithString("order",
			mcp.Description("manual keeps stored order; asc and desc sort folders first, then by label"),
			mcp.Enum("manual", "asc", "desc"),
			mcp.Required(),
		),
	)
}

func (s *Server) handleSort(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mode, err := favorite.ParseSortMode(req.GetString("order", ""))
	if err != nil {
		return toolError(err)
	}
	err = s.manager.SetSort(ctx, mode)
	return result(err, fmt.Sprintf("Sort order is now %s.", mode))
}

// --- use_group ---

func groupTool() mcp.Tool {
	return mcp.NewTool("use_group",
		mcp.WithDescription("Switch the active group, creating it when new."),
		mcp.WithString("group",
			mcp.Description("Group name"),
			mcp.Required(),
		),
	)
}

func (s *Server) handleGroup(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	group := req.GetString("group", "")
	err := s.manager.UseGroup(ctx, group)
	return result(err, fmt.Sprintf("Active group is now %s.", group))
}

// --- favorites://tree ---

func (s *Server) handleTree(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	nodes, view, err := s.manager.Tree(ctx, DefaultDepth)
	if err != nil {
		return nil, err
	}

	data, err := exportjson.New().Render(export.NewDocument(nodes, view), export.DefaultOptions())
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      TreeURI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// result reports err as a tool error, a no-op as plain text, and success
// as msg.
func result(err error, msg string) (*mcp.CallToolResult, error) {
	switch {
	case err == nil:
		return mcp.NewToolResultText(msg), nil
	case errors.Is(err, favorite.ErrNoOp):
		return mcp.NewToolResultText("Nothing to do: " + err.Error()), nil
	default:
		return toolError(err)
	}
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
