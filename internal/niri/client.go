package niri

import (
	"encoding/json"
	"fmt"
	"net"
	"os"

	"niri-app-hotkey/pkg/logger"
)

// SocketEnv is the environment variable niri sets to its IPC socket path.
const SocketEnv = "NIRI_SOCKET"

// Client is a connection to the niri IPC socket. Requests are JSON values,
// one per line; every request gets exactly one reply. The client performs
// no retries: a failed call fails the invocation.
type Client struct {
	conn net.Conn
	enc  *json.Encoder
	dec  *json.Decoder
	log  *logger.Logger
}

// Connect dials the niri socket advertised via NIRI_SOCKET.
func Connect(log *logger.Logger) (*Client, error) {
	path := os.Getenv(SocketEnv)
	if path == "" {
		return nil, fmt.Errorf("%s is not set, is niri running?", SocketEnv)
	}

	conn, err := net.Dial("unix", path)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to niri socket at %s: %w", path, err)
	}
	log.Debug("Connected to niri socket", "path", path)

	return &Client{
		conn: conn,
		enc:  json.NewEncoder(conn),
		dec:  json.NewDecoder(conn),
		log:  log,
	}, nil
}

// Close releases the compositor connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// reply is the {"Ok": ...} / {"Err": "..."} envelope niri answers with.
type reply struct {
	Ok  json.RawMessage `json:"Ok"`
	Err *string         `json:"Err"`
}

func (c *Client) send(request interface{}) (json.RawMessage, error) {
	if err := c.enc.Encode(request); err != nil {
		return nil, fmt.Errorf("failed to send request to niri: %w", err)
	}

	var rep reply
	if err := c.dec.Decode(&rep); err != nil {
		return nil, fmt.Errorf("failed to read reply from niri: %w", err)
	}
	if rep.Err != nil {
		return nil, fmt.Errorf("niri returned an error: %s", *rep.Err)
	}
	if rep.Ok == nil {
		return nil, fmt.Errorf("malformed reply from niri: neither Ok nor Err present")
	}
	return rep.Ok, nil
}

// Windows queries all toplevel windows.
func (c *Client) Windows() ([]Window, error) {
	raw, err := c.send("Windows")
	if err != nil {
		return nil, err
	}

	var resp struct {
		Windows []Window `json:"Windows"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse windows reply: %w", err)
	}
	c.log.Debug("Queried windows", "count", len(resp.Windows))
	return resp.Windows, nil
}

// Workspaces queries all workspaces, including hidden ones.
func (c *Client) Workspaces() ([]Workspace, error) {
	raw, err := c.send("WorkspacesWithHidden")
	if err != nil {
		return nil, err
	}

	var resp struct {
		Workspaces []Workspace `json:"Workspaces"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse workspaces reply: %w", err)
	}
	c.log.Debug("Queried workspaces", "count", len(resp.Workspaces))
	return resp.Workspaces, nil
}

func (c *Client) sendAction(name string, payload interface{}) error {
	request := map[string]interface{}{
		"Action": map[string]interface{}{name: payload},
	}
	if _, err := c.send(request); err != nil {
		return fmt.Errorf("action %s failed: %w", name, err)
	}
	return nil
}

// FocusWindow brings the window to the front of its workspace and gives it
// keyboard focus.
func (c *Client) FocusWindow(windowID uint64) error {
	c.log.Debug("Focusing window", "window_id", windowID)

	return c.sendAction("FocusWindow", struct {
		ID uint64 `json:"id"`
	}{ID: windowID})
}

// MoveWindowToWorkspace moves the window to the given workspace, optionally
// focusing it there.
func (c *Client) MoveWindowToWorkspace(windowID, workspaceID uint64, focus bool) error {
	c.log.Debug("Moving window to workspace",
		"window_id", windowID,
		"workspace_id", workspaceID,
		"focus", focus)

	return c.sendAction("MoveWindowToWorkspace", struct {
		WindowID  uint64             `json:"window_id"`
		Reference workspaceReference `json:"reference"`
		Focus     bool               `json:"focus"`
	}{
		WindowID:  windowID,
		Reference: workspaceReference{ID: workspaceID},
		Focus:     focus,
	})
}

type workspaceReference struct {
	ID uint64 `json:"Id"`
}

// Spawn asks the compositor to start the given argv, so the child outlives
// this short-lived invocation.
func (c *Client) Spawn(command []string) error {
	c.log.Debug("Spawning", "command", command)

	return c.sendAction("Spawn", struct {
		Command []string `json:"command"`
	}{Command: command})
}

// SpawnShell hands a command string to a shell interpreter.
func (c *Client) SpawnShell(command string) error {
	return c.Spawn([]string{"sh", "-c", command})
}
