package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jvlp/md-parser/markdown"
	"github.com/jvlp/md-parser/tmpstore"
	"github.com/rs/zerolog/log"
)

type TokenizeRequest struct {
	// Lines is the document split into lines, without line terminators.
	Lines []string `json:"lines" binding:"required"`
}

type TokenizeResponse struct {
	Cached bool                  `json:"cached"`
	Lines  []tmpstore.LineTokens `json:"lines"`
}

func (s *Service) tokenize(ctx *gin.Context) {
	var req TokenizeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	if s.config.MaxLines > 0 && len(req.Lines) > s.config.MaxLines {
		errField := ErrorField{
			"lines",
			fmt.Sprintf("Document exceeds the maximum of %d lines", s.config.MaxLines),
		}
		ctx.JSON(http.StatusRequestEntityTooLarge, NewErrorResponse(ErrTooManyLines, errField))
		return
	}

	if s.config.MaxLineLength > 0 {
		for i, line := range req.Lines {
			if len(line) > s.config.MaxLineLength {
				errField := ErrorField{
					"lines",
					fmt.Sprintf("Line %d exceeds the maximum length of %d bytes", i, s.config.MaxLineLength),
				}
				ctx.JSON(http.StatusRequestEntityTooLarge, NewErrorResponse(ErrLineTooLong, errField))
				return
			}
		}
	}

	key := tmpstore.ResultKey(req.Lines)

	// the cache is best effort: a miss and a lookup error both fall through to a scan
	cached, err := s.store.GetResult(ctx, key)
	if err == nil {
		ctx.JSON(http.StatusOK, TokenizeResponse{Cached: true, Lines: cached.Lines})
		return
	}
	if err != tmpstore.ErrNotFound {
		log.Warn().
			Err(err).
			Str(requestIDKey, ctx.GetString(requestIDKey)).
			Msg("result cache lookup failed")
	}

	streams := markdown.TokenizeLines(req.Lines)

	lines := make([]tmpstore.LineTokens, len(req.Lines))
	for i, line := range req.Lines {
		lines[i] = tmpstore.LineTokens{Line: line, Tokens: streams[i]}
	}

	doc := tmpstore.TokenizedDocument{
		Lines:     lines,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.SaveResult(ctx, key, doc, s.config.CacheTTL); err != nil {
		log.Warn().
			Err(err).
			Str(requestIDKey, ctx.GetString(requestIDKey)).
			Msg("failed to cache tokenization result")
	}

	ctx.JSON(http.StatusOK, TokenizeResponse{Lines: lines})
}
