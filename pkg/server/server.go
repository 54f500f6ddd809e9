package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/seanofw/dym/internal/logger"
	"github.com/seanofw/dym/pkg/config"
	"github.com/seanofw/dym/pkg/match"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for fuzzy-match requests.
type Server struct {
	dict *match.Dictionary
	cfg  *config.Config
	dec  *msgpack.Decoder
	enc  *msgpack.Encoder
	log  *log.Logger
}

// NewServer creates a match server using stdin/stdout for IPC.
func NewServer(dict *match.Dictionary, cfg *config.Config) *Server {
	return NewServerIO(dict, cfg, bufio.NewReader(os.Stdin), os.Stdout)
}

// NewServerIO creates a match server over explicit streams.
func NewServerIO(dict *match.Dictionary, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		dict: dict,
		cfg:  cfg,
		dec:  msgpack.NewDecoder(r),
		enc:  msgpack.NewEncoder(w),
		log:  logger.New("ipc"),
	}
}

// Start processes requests until the input stream ends. Each request is
// handled synchronously; a malformed message terminates the loop since the
// stream can no longer be trusted to be aligned.
func (s *Server) Start() error {
	s.log.Debug("Starting match server")
	for {
		var request Request
		if err := s.dec.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to decode request: %w", err)
		}
		s.handleRequest(request)
	}
}

func (s *Server) handleRequest(request Request) {
	switch request.Op {
	case "match":
		s.handleMatch(request)
	case "add":
		s.handleAdd(request)
	case "remove":
		s.send(DictResponse{
			ID:      request.ID,
			Status:  "ok",
			Removed: s.dict.Remove(request.Word),
			Count:   s.dict.Len(),
		})
	case "count":
		s.send(DictResponse{ID: request.ID, Status: "ok", Count: s.dict.Len()})
	default:
		s.sendError(request.ID, fmt.Sprintf("unknown op: %q", request.Op), 400)
	}
}

func (s *Server) handleMatch(request Request) {
	opts := s.cfg.Options()
	if request.Limit > 0 {
		opts.MaxWords = request.Limit
	}
	if opts.MaxWords > s.cfg.Server.MaxLimit {
		opts.MaxWords = s.cfg.Server.MaxLimit
	}
	if request.MinSimilarity > 0 {
		opts.MinSimilarity = request.MinSimilarity
	}
	if request.NoTags {
		opts.IncludeTags = false
	}
	if len(request.Pattern) > s.cfg.Server.MaxPatternLen {
		s.sendError(request.ID, "pattern too long", 400)
		return
	}

	start := time.Now()
	results, err := s.dict.MatchWith(request.Pattern, opts)
	if err != nil {
		s.sendError(request.ID, err.Error(), 400)
		return
	}
	elapsed := time.Since(start).Microseconds()

	matches := make([]MatchEntry, len(results))
	for i, r := range results {
		matches[i] = MatchEntry{Word: r.Word, Similarity: r.Similarity}
		if tag, ok := r.Tag.(string); ok {
			matches[i].Tag = tag
		}
	}
	s.send(MatchResponse{
		ID:        request.ID,
		Matches:   matches,
		Count:     len(matches),
		TimeTaken: elapsed,
	})
}

func (s *Server) handleAdd(request Request) {
	var tag any
	if request.Tag != "" {
		tag = request.Tag
	}
	if err := s.dict.Add(request.Word, tag); err != nil {
		code := 500
		switch {
		case errors.Is(err, match.ErrDuplicateWord):
			code = 409
		case errors.Is(err, match.ErrEmptyWord):
			code = 400
		}
		s.sendError(request.ID, err.Error(), code)
		return
	}
	s.send(DictResponse{ID: request.ID, Status: "ok", Count: s.dict.Len()})
}

func (s *Server) send(response any) {
	if err := s.enc.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.log.Debugf("Request %s failed: %s", id, message)
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
