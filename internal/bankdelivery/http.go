// Package bankdelivery manages delivery layer of banks.
package bankdelivery

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

// Service provides service layer interface needed by bank delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package bankdelivery
type Service interface {
	Create(ctx context.Context, name string) (domain.BankInfo, error)
	Get(ctx context.Context, name string) (domain.BankInfo, error)
	List(ctx context.Context) ([]domain.BankInfo, error)
	AddAccount(ctx context.Context, bankName string, accountID uuid.UUID) (domain.BankInfo, error)
	Accounts(ctx context.Context, bankName, owner string) ([]domain.AccountInfo, error)
}

// Handler facilitates bank delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns bank handler.
func NewHandler(bs Service) *Handler {
	return &Handler{service: bs}
}

type data struct {
	Bank domain.BankInfo `json:"bank"`
}

type response struct {
	Data data `json:"data,omitempty"`
}

type dataBanks struct {
	Banks []domain.BankInfo `json:"banks"`
}

type responseBanks struct {
	Data dataBanks `json:"data,omitempty"`
}

type dataAccounts struct {
	Accounts []domain.AccountInfo `json:"accounts"`
}

type responseAccounts struct {
	Data dataAccounts `json:"data,omitempty"`
}

func writeError(gctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrBankNotFound),
		errors.Is(err, domain.ErrAccountNotFound):
		gctx.JSON(http.StatusNotFound, web.Error(err))
	case errors.Is(err, domain.ErrBankAlreadyExists):
		gctx.JSON(http.StatusConflict, web.Error(err))
	default:
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}

type createRequest struct {
	Name string `json:"name" binding:"required,max=64"`
}

// Create handles http request to create a bank.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingErrorMsg(err)})

		return
	}

	bank, err := h.service.Create(ctx, req.Name)
	if err != nil {
		l.Info().Err(err).Send()
		writeError(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{bank}})
}

type uriRequest struct {
	Name string `uri:"name" binding:"required,max=64"`
}

func bindName(gctx *gin.Context) (string, bool) {
	var req uriRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		zerolog.Ctx(gctx.Request.Context()).Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingErrorMsg(err)})

		return "", false
	}

	return req.Name, true
}

// Get handles http request to get a bank.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	name, ok := bindName(gctx)
	if !ok {
		return
	}

	bank, err := h.service.Get(ctx, name)
	if err != nil {
		writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{bank}})
}

// List handles http request to list banks.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	banks, err := h.service.List(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Send()
		writeError(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, responseBanks{Data: dataBanks{banks}})
}

type addAccountRequest struct {
	AccountID string `json:"account_id" binding:"required,uuid"`
}

// AddAccount handles http request to register an account with a bank.
func (h *Handler) AddAccount(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	name, ok := bindName(gctx)
	if !ok {
		return
	}

	var req addAccountRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingErrorMsg(err)})

		return
	}

	bank, err := h.service.AddAccount(ctx, name, uuid.MustParse(req.AccountID))
	if err != nil {
		l.Info().Err(err).Send()
		writeError(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{bank}})
}

type accountsRequest struct {
	Owner string `form:"owner" binding:"max=255"`
}

// Accounts handles http request to list the accounts of a bank, optionally filtered by owner.
func (h *Handler) Accounts(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	name, ok := bindName(gctx)
	if !ok {
		return
	}

	var req accountsRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindingErrorMsg(err)})

		return
	}

	accounts, err := h.service.Accounts(ctx, name, req.Owner)
	if err != nil {
		writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseAccounts{Data: dataAccounts{accounts}})
}
