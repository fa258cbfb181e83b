package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/simidle/simidle/internal/store"
)

// serverTimeout bounds requests to a running serve instance
const serverTimeout = 5 * time.Second

// readActivePort reads the port of a running serve instance, 0 if none
func readActivePort() int {
	data, err := os.ReadFile(portFilePath())
	if err != nil {
		return 0
	}
	port, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0
	}
	return port
}

// sendImport forwards a share code to the serve instance at baseURL.
// Rejections and invalid codes come back as a response, not an error.
func sendImport(baseURL, code string) (ImportResponse, error) {
	jsonData, err := json.Marshal(ImportRequest{Code: code})
	if err != nil {
		return ImportResponse{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	client := &http.Client{Timeout: serverTimeout}
	resp, err := client.Post(baseURL+"/import", "application/json", bytes.NewReader(jsonData))
	if err != nil {
		return ImportResponse{}, fmt.Errorf("failed to connect to server: %w", err)
	}
	defer resp.Body.Close()

	var out ImportResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return ImportResponse{}, fmt.Errorf("server error: %s", resp.Status)
	}
	return out, nil
}

// serverURL is the base URL of the serve instance on port
func serverURL(port int) string {
	return fmt.Sprintf("http://127.0.0.1:%d", port)
}

// parseIndex parses a palette position given as a CLI argument
func parseIndex(arg string, s *store.ColorStore) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q", arg)
	}
	if index < 0 || index >= s.Count() {
		return 0, fmt.Errorf("index %d out of range (palette has %d colors)", index, s.Count())
	}
	return index, nil
}
