// Package transport exposes the HTTP/JSON status API.
package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockreader7000-backend/internal/blockindex"
	"github.com/goodnatureofminers/blockreader7000-backend/internal/reader"
)

// StatusHandler serves chain state queries over HTTP. Responses are always
// JSON; negative lookups are 404, an uninitialized reader is 503 and any
// other failure is 502.
type StatusHandler struct {
	reader ChainReader
	logger *zap.Logger
}

// NewStatusHandler returns a StatusHandler backed by the given reader.
func NewStatusHandler(chainReader ChainReader, logger *zap.Logger) *StatusHandler {
	return &StatusHandler{reader: chainReader, logger: logger}
}

// Register installs the API routes on mux.
func (h *StatusHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/status", h.handleStatus)
	mux.HandleFunc("GET /v1/tip", h.handleTip)
	mux.HandleFunc("GET /v1/blocks/{id}", h.handleBlock)
	mux.HandleFunc("POST /v1/refresh", h.handleRefresh)
}

type statusResponse struct {
	Status       string        `json:"status"`
	HeaderHeight int32         `json:"header_height"`
	ChainHeight  int32         `json:"chain_height"`
	Tip          *blockSummary `json:"tip,omitempty"`
}

type blockSummary struct {
	Hash          string `json:"hash"`
	Parent        string `json:"parent,omitempty"`
	Height        int32  `json:"height"`
	Time          int64  `json:"time"`
	TxCount       uint64 `json:"tx_count"`
	Status        string `json:"status"`
	HasData       bool   `json:"has_data"`
	HasUndo       bool   `json:"has_undo"`
	OnActiveChain bool   `json:"on_active_chain"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *StatusHandler) handleStatus(w http.ResponseWriter, r *http.Request) {
	resp, err := h.currentStatus()
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *StatusHandler) handleTip(w http.ResponseWriter, r *http.Request) {
	tip, err := h.reader.Tip()
	if err != nil {
		h.writeError(w, err)
		return
	}
	if tip == nil {
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: "no validated chain"})
		return
	}
	h.writeJSON(w, http.StatusOK, h.summarize(tip))
}

func (h *StatusHandler) handleBlock(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var (
		entry *blockindex.Entry
		err   error
	)
	if height, parseErr := strconv.ParseInt(id, 10, 32); parseErr == nil {
		entry, err = h.reader.ByHeight(int32(height))
	} else if hash, hashErr := parseBlockHash(id); hashErr == nil {
		entry, err = h.reader.ByHash(hash)
	} else {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "id must be a height or a block hash"})
		return
	}
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, h.summarize(entry))
}

func (h *StatusHandler) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := h.reader.Refresh(r.Context()); err != nil {
		h.writeError(w, err)
		return
	}
	resp, err := h.currentStatus()
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *StatusHandler) currentStatus() (*statusResponse, error) {
	status, err := h.reader.Status()
	if err != nil {
		return nil, err
	}
	headerHeight, err := h.reader.HeaderHeight()
	if err != nil {
		return nil, err
	}
	chainHeight, err := h.reader.ChainHeight()
	if err != nil {
		return nil, err
	}
	tip, err := h.reader.Tip()
	if err != nil {
		return nil, err
	}

	resp := &statusResponse{
		Status:       status.String(),
		HeaderHeight: headerHeight,
		ChainHeight:  chainHeight,
	}
	if tip != nil {
		resp.Tip = h.summarize(tip)
	}
	return resp, nil
}

func (h *StatusHandler) summarize(entry *blockindex.Entry) *blockSummary {
	onChain, err := h.reader.IsOnActiveChain(entry)
	if err != nil {
		onChain = false
	}

	summary := &blockSummary{
		Hash:          entry.Hash.String(),
		Height:        entry.Height,
		Time:          entry.Header.Timestamp.Unix(),
		TxCount:       entry.TxCount,
		Status:        entry.Status.String(),
		HasData:       entry.Status.HasData(),
		HasUndo:       entry.Status.HasUndo(),
		OnActiveChain: onChain,
	}
	if parent := entry.Parent(); parent != (chainhash.Hash{}) {
		summary.Parent = parent.String()
	}
	return summary
}

func (h *StatusHandler) writeError(w http.ResponseWriter, err error) {
	code := http.StatusBadGateway
	switch {
	case errors.Is(err, reader.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, reader.ErrNotInitialized):
		code = http.StatusServiceUnavailable
	}
	h.writeJSON(w, code, errorResponse{Error: err.Error()})
}

func (h *StatusHandler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("write response failed", zap.Error(err))
	}
}

// parseBlockHash accepts only the canonical 64-character hex form.
func parseBlockHash(id string) (*chainhash.Hash, error) {
	if len(id) != chainhash.MaxHashStringSize {
		return nil, errors.New("block hash must be 64 hex characters")
	}
	return chainhash.NewHashFromStr(id)
}
