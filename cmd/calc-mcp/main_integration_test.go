//go:build integration

package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const integrationPolicy = `
users:
  user_1:
    name: Ada
experiences:
  exp_1:
    name: Calculator
    members:
      user_1: admin
`

// MCPRequest represents a JSON-RPC 2.0 request
type MCPRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      any    `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

// MCPResponse represents a JSON-RPC 2.0 response
type MCPResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *MCPError       `json:"error,omitempty"`
}

// MCPError represents a JSON-RPC 2.0 error
type MCPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// MCPServerProcess manages the MCP server process for testing
type MCPServerProcess struct {
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	stdout  io.ReadCloser
	stderr  io.ReadCloser
	scanner *bufio.Scanner
	nextID  int
}

// startMCPServer starts the MCP server process
func startMCPServer(t *testing.T, userID string) *MCPServerProcess {
	policyPath := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(policyPath, []byte(integrationPolicy), 0o644))

	cmd := exec.Command("go", "run", "main.go",
		"-config", "",
		"-policy", policyPath,
		"-user-id", userID,
		"-experience-id", "exp_1",
		"-log-level", "debug",
	)

	stdin, err := cmd.StdinPipe()
	require.NoError(t, err, "Failed to create stdin pipe")

	stdout, err := cmd.StdoutPipe()
	require.NoError(t, err, "Failed to create stdout pipe")

	stderr, err := cmd.StderrPipe()
	require.NoError(t, err, "Failed to create stderr pipe")

	require.NoError(t, cmd.Start(), "Failed to start MCP server")

	go func() {
		stderrScanner := bufio.NewScanner(stderr)
		for stderrScanner.Scan() {
			t.Logf("Server stderr: %s", stderrScanner.Text())
		}
	}()

	s := &MCPServerProcess{
		cmd:     cmd,
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
		scanner: bufio.NewScanner(stdout),
		nextID:  1,
	}
	t.Cleanup(func() { _ = s.stop() })

	s.sendRequest(t, "initialize", map[string]any{
		"protocolVersion": "2024-11-05",
		"capabilities":    map[string]any{},
		"clientInfo":      map[string]any{"name": "integration-test", "version": "1.0.0"},
	})

	return s
}

// stop terminates the MCP server process
func (s *MCPServerProcess) stop() error {
	s.stdin.Close()
	return s.cmd.Process.Kill()
}

// sendRequest sends a JSON-RPC request to the server and waits for the response
func (s *MCPServerProcess) sendRequest(t *testing.T, method string, params any) MCPResponse {
	req := MCPRequest{JSONRPC: "2.0", ID: s.nextID, Method: method, Params: params}
	s.nextID++

	reqJSON, err := json.Marshal(req)
	require.NoError(t, err, "Failed to marshal request")

	_, err = s.stdin.Write(append(reqJSON, '\n'))
	require.NoError(t, err, "Failed to write request")

	// go run compiles first, so the first response can be slow
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	done := make(chan MCPResponse, 1)
	errChan := make(chan error, 1)

	go func() {
		if s.scanner.Scan() {
			var resp MCPResponse
			if err := json.Unmarshal(s.scanner.Bytes(), &resp); err != nil {
				errChan <- fmt.Errorf("failed to unmarshal response: %v", err)
				return
			}
			done <- resp
		} else if err := s.scanner.Err(); err != nil {
			errChan <- fmt.Errorf("scanner error: %v", err)
		} else {
			errChan <- fmt.Errorf("server closed stdout")
		}
	}()

	select {
	case resp := <-done:
		return resp
	case err := <-errChan:
		require.Fail(t, "Error reading response", err.Error())
	case <-ctx.Done():
		require.Fail(t, "Timeout waiting for response")
	}

	return MCPResponse{}
}

// callTool calls a tool and returns its text content and error flag
func (s *MCPServerProcess) callTool(t *testing.T, name string, arguments map[string]any) (string, bool) {
	resp := s.sendRequest(t, "tools/call", map[string]any{"name": name, "arguments": arguments})
	require.Nil(t, resp.Error, "Unexpected JSON-RPC error")

	var result struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
		IsError bool `json:"isError"`
	}
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	require.NotEmpty(t, result.Content, "Content array should not be empty")

	return result.Content[0].Text, result.IsError
}

func TestIntegrationCalculatorSession(t *testing.T) {
	s := startMCPServer(t, "user_1")

	text, isError := s.callTool(t, "calculator.welcome", map[string]any{})
	require.False(t, isError, text)
	var welcome results.WelcomeToolResult
	require.NoError(t, json.Unmarshal([]byte(text), &welcome))
	assert.Equal(t, "Welcome Ada! You have admin access to Calculator", welcome.Message)

	text, isError = s.callTool(t, "calculator.press_keys", map[string]any{"keys": "5 + 3 + 2 Enter"})
	require.False(t, isError, text)
	var pressed results.PressKeysToolResult
	require.NoError(t, json.Unmarshal([]byte(text), &pressed))
	assert.Equal(t, "10", pressed.State.Display)
	assert.Equal(t, []string{"5 + 3 = 8", "8 + 2 = 10"}, pressed.State.History)

	text, isError = s.callTool(t, "calculator.press_buttons", map[string]any{"buttons": "M+ clear 9 sqrt"})
	require.False(t, isError, text)
	var buttons results.PressButtonsToolResult
	require.NoError(t, json.Unmarshal([]byte(text), &buttons))
	assert.Equal(t, "3", buttons.State.Display)
	assert.Equal(t, float64(10), buttons.State.Memory)

	text, isError = s.callTool(t, "calculator.clear_history", map[string]any{})
	require.False(t, isError, text)
	var cleared results.GetStateToolResult
	require.NoError(t, json.Unmarshal([]byte(text), &cleared))
	assert.Empty(t, cleared.State.History)
	assert.Equal(t, "3", cleared.State.Display)
}

func TestIntegrationAccessDenied(t *testing.T) {
	s := startMCPServer(t, "user_stranger")

	text, isError := s.callTool(t, "calculator.press_keys", map[string]any{"keys": "1"})
	assert.True(t, isError)
	assert.Equal(t, "You do not have access to this experience.", text)
}
