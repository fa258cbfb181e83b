package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/simidle/simidle/internal/clipboard"
	"github.com/simidle/simidle/internal/config"
	"github.com/simidle/simidle/internal/palette"
	"github.com/simidle/simidle/internal/share"
	"github.com/simidle/simidle/internal/store"
	"github.com/simidle/simidle/internal/utils"
)

// ImportRequest carries a share code to a running instance
type ImportRequest struct {
	Code string `json:"code"`
}

// ImportResponse reports what happened to an imported code
type ImportResponse struct {
	Status  string `json:"status"` // imported, rejected or invalid
	Code    string `json:"code,omitempty"`
	Count   int    `json:"count"`
	Message string `json:"message,omitempty"`
}

// PaletteResponse is the current palette as a share code
type PaletteResponse struct {
	Code  string `json:"code"`
	Count int    `json:"count"`
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the palette to other local tools",
	Long: `Run a local HTTP server that exposes the palette as a share code and
accepts codes from other tools. 'simidle import' forwards here when it is running.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initializeGlobalState()

		settings := loadSettings()
		portFlag, _ := cmd.Flags().GetInt("port")
		if portFlag == 0 {
			portFlag = settings.Server.Port
		}
		exitOnError(runServe(portFlag, settings))
	},
}

// runServe holds the lock and serves the palette until interrupted
func runServe(portFlag int, settings *config.Settings) error {
	isMaster, err := AcquireLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !isMaster {
		return errors.New("SimIdle is already running")
	}
	defer ReleaseLock()

	var port int
	var listener net.Listener
	if portFlag > 0 {
		port = portFlag
		listener, err = net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
		if err != nil {
			return fmt.Errorf("could not bind to port %d: %w", port, err)
		}
	} else {
		port, listener = findAvailablePort(8080)
		if listener == nil {
			return errors.New("could not find available port")
		}
	}

	s, closeStore, err := openStore(false)
	if err != nil {
		listener.Close()
		return fmt.Errorf("failed to open palette: %w", err)
	}
	defer closeStore()

	saveActivePort(port)
	defer removeActivePort()

	server := newPaletteServer(s, share.NewImportLogic(settings.General.MaxImportElements))
	httpServer := &http.Server{Handler: server.Handler()}
	go func() {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Debug("HTTP server error: %v", err)
		}
	}()

	fmt.Printf("SimIdle %s serving the palette on port %d\n", Version, port)
	fmt.Println("Press Ctrl+C to exit.")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	fmt.Println("\nShutting down...")
	return httpServer.Close()
}

// paletteServer guards the store for concurrent HTTP handlers
type paletteServer struct {
	mu       sync.Mutex
	store    *store.ColorStore
	importer share.ImportLogic
}

func newPaletteServer(s *store.ColorStore, importer share.ImportLogic) *paletteServer {
	return &paletteServer{store: s, importer: importer}
}

// Handler routes the server's endpoints
func (ps *paletteServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", handleHealth)
	mux.HandleFunc("/palette", ps.handlePalette)
	mux.HandleFunc("/import", ps.handleImport)
	return corsMiddleware(mux)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (ps *paletteServer) handlePalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ps.mu.Lock()
	resp := PaletteResponse{Code: ps.store.ShareCode(), Count: ps.store.Count()}
	ps.mu.Unlock()

	writeJSON(w, http.StatusOK, resp)
}

func (ps *paletteServer) handleImport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	defer r.Body.Close()

	var req ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	incoming, err := clipboard.ParseCodes(req.Code)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ImportResponse{Status: "invalid", Message: err.Error()})
		return
	}

	ps.mu.Lock()
	result, applied := importElements(ps.store, ps.importer, incoming)
	ps.mu.Unlock()

	if !result.Accepted() {
		writeJSON(w, http.StatusConflict, ImportResponse{Status: "rejected", Message: result.Reason.Message()})
		return
	}

	utils.Debug("Imported %d colors over HTTP", len(result.Elements))
	writeJSON(w, http.StatusOK, ImportResponse{
		Status: "imported",
		Code:   palette.ColorCodesString(applied),
		Count:  len(applied),
	})
}

// importElements runs the import rules against the store and places the
// accepted colors after the existing ones until the palette is full.
// applied is the resulting palette, nil when the import was rejected.
func importElements(s *store.ColorStore, importer share.ImportLogic, incoming []palette.ColorElement) (share.ImportResult, []palette.ColorElement) {
	existing := s.Elements()
	result := importer.Handle(share.ImportEvent{Existing: existing, Imported: incoming})
	if !result.Accepted() {
		return result, nil
	}

	applied, leftover := share.PlaceReceived(existing, result.Elements)
	if len(leftover) > 0 {
		utils.Debug("Palette full, %d imported colors left out", len(leftover))
	}
	s.ReplaceAll(applied)
	return result, applied
}

// corsMiddleware lets browser pages on other origins read the palette
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		utils.Debug("Failed to encode response: %v", err)
	}
}

func init() {
	serveCmd.Flags().IntP("port", "p", 0, "Port to listen on (default: settings, then 8080 or first available)")
	rootCmd.AddCommand(serveCmd)
}
