// Package rounddelivery manages delivery layer of rounded transactions.
package rounddelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-rounds/internal/domain"
	"github.com/go-petr/pet-rounds/pkg/errorspkg"
	"github.com/go-petr/pet-rounds/pkg/messagepkg"
	"github.com/go-petr/pet-rounds/pkg/web"
)

// Service provides service layer interface needed by round delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package rounddelivery
type Service interface {
	RoundedTransactions(ctx context.Context, creds domain.Credentials, filters domain.TransactionFilters) (domain.ResourceSet, error)
	AggregatedRoundedTransactions(ctx context.Context, since, until string) (domain.ResourceSet, error)
}

// Handler facilitates round delivery layer logic.
type Handler struct {
	service      Service
	trans        ut.Translator
	exposeErrors bool
}

// NewHandler returns round handler. When exposeErrors is set, internal
// errors are reported in the exception field of the error envelope.
func NewHandler(s Service, trans ut.Translator, exposeErrors bool) *Handler {
	return &Handler{
		service:      s,
		trans:        trans,
		exposeErrors: exposeErrors,
	}
}

type roundRequest struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required,min=6,max=255"`
	After    string `form:"after"`
	Before   string `form:"before"`
	Limit    string `form:"limit"`
}

// Round handles http request to get the rounded transactions of one user.
func (h *Handler) Round(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)
	path := gctx.Request.URL.Path

	var req roundRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.NewErrorMessage(http.StatusBadRequest, path, h.validationMessage(err)))

		return
	}

	creds := domain.Credentials{Email: req.Email, Password: req.Password}
	filters := domain.TransactionFilters{After: req.After, Before: req.Before, Limit: req.Limit}

	rs, err := h.service.RoundedTransactions(ctx, creds, filters)
	if err != nil {
		h.handleError(gctx, err)
		return
	}

	if rs.Pagination != nil {
		p, err := RewritePagination(*rs.Pagination, path)
		if err != nil {
			l.Warn().Str("cause", causeOf(err)).Msg("cannot map provider pagination uri with current path")
		} else {
			rs.Pagination = &p
		}
	}

	gctx.JSON(http.StatusOK, rs)
}

type roundsRequest struct {
	Since string `form:"since" binding:"required,datetime=2006-1-2"`
	Until string `form:"until" binding:"required,datetime=2006-1-2"`
}

// Rounds handles http request to get the rounded transactions of all configured users.
func (h *Handler) Rounds(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)
	path := gctx.Request.URL.Path

	var req roundsRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.NewErrorMessage(http.StatusBadRequest, path, h.validationMessage(err)))

		return
	}

	rs, err := h.service.AggregatedRoundedTransactions(ctx, req.Since, req.Until)
	if err != nil {
		h.handleError(gctx, err)
		return
	}

	rs.Pagination = nil

	gctx.JSON(http.StatusOK, rs)
}

// handleError relays provider failures verbatim, reports invalid dates as bad
// requests and hides anything else behind an internal error.
func (h *Handler) handleError(gctx *gin.Context, err error) {
	l := zerolog.Ctx(gctx.Request.Context())
	path := gctx.Request.URL.Path

	switch {
	case errors.Is(err, domain.ErrInvalidSinceDate):
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.NewErrorMessage(http.StatusBadRequest, path, messagepkg.Get(h.trans, messagepkg.KeySinceDateFormat)))

		return
	case errors.Is(err, domain.ErrInvalidUntilDate):
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.NewErrorMessage(http.StatusBadRequest, path, messagepkg.Get(h.trans, messagepkg.KeyUntilDateFormat)))

		return
	}

	var failure *domain.UpstreamFailure
	if errors.As(err, &failure) {
		l.Warn().Int("upstream_status", failure.Status).Msg("unable to fetch rounded transactions")
		gctx.Data(failure.Status, failure.ContentType, []byte(failure.Body))

		return
	}

	l.Error().Err(err).Msg("unable to fetch rounded transactions")

	res := web.NewErrorMessage(http.StatusInternalServerError, path, errorspkg.ErrInternal.Error())
	if h.exposeErrors {
		res.Exception = err.Error()
	}

	gctx.JSON(http.StatusInternalServerError, res)
}

func (h *Handler) validationMessage(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return err.Error()
	}

	field := ve[0]

	switch field.StructField() {
	case "Password":
		return messagepkg.Get(h.trans, messagepkg.KeyPasswordLength)
	case "Email":
		return messagepkg.Get(h.trans, messagepkg.KeyEmailRequired)
	case "Since":
		return messagepkg.Get(h.trans, messagepkg.KeySinceDateFormat)
	case "Until":
		return messagepkg.Get(h.trans, messagepkg.KeyUntilDateFormat)
	}

	return field.Translate(h.trans)
}
