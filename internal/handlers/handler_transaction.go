package handlers

import (
	"net/http"

	portssvc "github.com/fincontrol/fincontrol_backend/internal/core/ports/services"
	"github.com/fincontrol/fincontrol_backend/internal/dto"
	"github.com/fincontrol/fincontrol_backend/internal/metrics"
	"github.com/fincontrol/fincontrol_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests for the transaction ledger.
type transactionHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newTransactionHandler(ls portssvc.LedgerSvcFacade) *transactionHandler {
	return &transactionHandler{ledgerService: ls}
}

// registerTransactionRoutes registers ledger routes. Every route requires an
// authenticated session; the dashboard shows nothing before login.
func registerTransactionRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newTransactionHandler(ledgerService)

	transactions := rg.Group("/transactions", middleware.RequireSession())
	{
		transactions.GET("", h.listTransactions)
		transactions.POST("", h.addTransaction)
		transactions.GET("/:id", h.getTransaction)
		transactions.PUT("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
	}

	rg.GET("/stats", middleware.RequireSession(), h.getStats)
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists the ledger newest-first, optionally filtered by type and a case-insensitive search over name and content.
// @Tags transactions
// @Produce json
// @Param type query string false "Filter by type" Enums(income, expense)
// @Param search query string false "Substring match on name or content"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 401 {object} ErrorResponse
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	txns, err := h.ledgerService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns))
}

// addTransaction godoc
// @Summary Add a transaction
// @Description Records a new income or expense at the head of the ledger.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction fields"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /transactions [post]
func (h *transactionHandler) addTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	actor, _ := middleware.GetUserFromCtx(c.Request.Context())
	txn, err := h.ledgerService.AddTransaction(c.Request.Context(), req, actor)
	metrics.ObserveOperation("add_transaction", err)
	if err != nil {
		respondError(c, err, "Failed to add transaction")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// getTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} ErrorResponse
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	txn, err := h.ledgerService.GetTransactionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Replaces all mutable fields; id, date and creator are preserved.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "Replacement fields"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	actor, _ := middleware.GetUserFromCtx(c.Request.Context())
	txn, err := h.ledgerService.UpdateTransaction(c.Request.Context(), c.Param("id"), req, actor)
	metrics.ObserveOperation("update_transaction", err)
	if err != nil {
		respondError(c, err, "Failed to update transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Removes a transaction. The dashboard asks the user to confirm before calling this.
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	actor, _ := middleware.GetUserFromCtx(c.Request.Context())
	err := h.ledgerService.DeleteTransaction(c.Request.Context(), c.Param("id"), actor)
	metrics.ObserveOperation("delete_transaction", err)
	if err != nil {
		respondError(c, err, "Failed to delete transaction")
		return
	}
	c.Status(http.StatusNoContent)
}

// getStats godoc
// @Summary Dashboard statistics
// @Description Returns totals recomputed from the full ledger.
// @Tags transactions
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Failure 401 {object} ErrorResponse
// @Router /stats [get]
func (h *transactionHandler) getStats(c *gin.Context) {
	stats, err := h.ledgerService.GetStats(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to compute stats")
		return
	}
	c.JSON(http.StatusOK, dto.ToStatsResponse(stats))
}
