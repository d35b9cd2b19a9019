// Package accountdelivery manages delivery layer of accounts.
package accountdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/go-petr/bankmodel/internal/domain"
	"github.com/go-petr/bankmodel/pkg/errorspkg"
	"github.com/go-petr/bankmodel/pkg/web"
)

// Service provides service layer interface needed by account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	Create(ctx context.Context, arg domain.CreateAccountParams) (domain.AccountInfo, error)
	Get(ctx context.Context, id uuid.UUID) (domain.AccountInfo, error)
	List(ctx context.Context, owner string) ([]domain.AccountInfo, error)
	Update(ctx context.Context, id uuid.UUID, arg domain.UpdateAccountParams) (domain.AccountInfo, error)
	Debit(ctx context.Context, id uuid.UUID, amount string) (domain.AccountInfo, error)
	Credit(ctx context.Context, id uuid.UUID, amount string) (domain.AccountInfo, error)
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns account handler.
func NewHandler(as Service) Handler {
	return Handler{service: as}
}

type data struct {
	Account domain.AccountInfo `json:"account"`
}

type response struct {
	Data data `json:"data,omitempty"`
}

type dataAccounts struct {
	Accounts []domain.AccountInfo `json:"accounts"`
}

type responseAccounts struct {
	Data dataAccounts `json:"data,omitempty"`
}

func writeError(gctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		gctx.JSON(http.StatusNotFound, web.Error(err))
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInsufficientFunds):
		gctx.JSON(http.StatusBadRequest, web.Error(err))
	default:
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}

type createRequest struct {
	Owner   string `json:"owner" binding:"max=255"`
	Balance string `json:"balance" binding:"required,decimal"`
}

// Create handles http request to create account.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingErrorMsg(err)})

		return
	}

	arg := domain.CreateAccountParams{
		Owner:   req.Owner,
		Balance: req.Balance,
	}

	account, err := h.service.Create(ctx, arg)
	if err != nil {
		l.Info().Err(err).Send()
		writeError(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{account}})
}

type uriRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

func bindID(gctx *gin.Context) (uuid.UUID, bool) {
	var req uriRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		zerolog.Ctx(gctx.Request.Context()).Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingErrorMsg(err)})

		return uuid.Nil, false
	}

	return uuid.MustParse(req.ID), true
}

// Get handles http request to get account.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	id, ok := bindID(gctx)
	if !ok {
		return
	}

	account, err := h.service.Get(ctx, id)
	if err != nil {
		writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{account}})
}

type listRequest struct {
	Owner string `form:"owner" binding:"max=255"`
}

// List handles http request to list accounts, optionally filtered by owner.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingErrorMsg(err)})

		return
	}

	accounts, err := h.service.List(ctx, req.Owner)
	if err != nil {
		l.Error().Err(err).Send()
		writeError(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, responseAccounts{Data: dataAccounts{accounts}})
}

type updateRequest struct {
	Owner   *string `json:"owner" binding:"omitempty,max=255"`
	Balance *string `json:"balance" binding:"omitempty,decimal"`
}

// Update handles http request to overwrite the owner and/or the balance of an account.
func (h *Handler) Update(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	id, ok := bindID(gctx)
	if !ok {
		return
	}

	var req updateRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingErrorMsg(err)})

		return
	}

	arg := domain.UpdateAccountParams{
		Owner:   req.Owner,
		Balance: req.Balance,
	}

	account, err := h.service.Update(ctx, id, arg)
	if err != nil {
		writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{account}})
}

type amountRequest struct {
	Amount string `json:"amount" binding:"required,decimal"`
}

func (h *Handler) changeBalance(gctx *gin.Context, change func(ctx context.Context, id uuid.UUID, amount string) (domain.AccountInfo, error)) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	id, ok := bindID(gctx)
	if !ok {
		return
	}

	var req amountRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingErrorMsg(err)})

		return
	}

	account, err := change(ctx, id, req.Amount)
	if err != nil {
		l.Info().Err(err).Send()
		writeError(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{account}})
}

// Debit handles http request to debit an account.
func (h *Handler) Debit(gctx *gin.Context) {
	h.changeBalance(gctx, h.service.Debit)
}

// Credit handles http request to credit an account.
func (h *Handler) Credit(gctx *gin.Context) {
	h.changeBalance(gctx, h.service.Credit)
}
