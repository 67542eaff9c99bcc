package http

// CreateTransaction godoc
// @Summary Check out the cart
// @Description Reduces stock for every cart line and records a transaction atomically, then clears the cart
// @Tags Transactions
// @Security SessionCookie
// @Produce json
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string,redirect=string}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /transaction [post]
func (h *TransactionHandler) CreateTransactionDoc() {}

// ListTransactions godoc
// @Summary List my transactions
// @Description Purchase history of the signed-in user, newest first
// @Tags Transactions
// @Security SessionCookie
// @Produce json
// @Success 200 {object} object{success=bool,message=string,data=array}
// @Failure 401 {object} object{success=bool,error=string,redirect=string}
// @Router /transaction [get]
func (h *TransactionHandler) ListTransactionsDoc() {}

// GetTransaction godoc
// @Summary Get transaction by ID
// @Description Only the buyer may read a transaction
// @Tags Transactions
// @Security SessionCookie
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string,redirect=string}
// @Router /transaction/{id} [get]
func (h *TransactionHandler) GetTransactionDoc() {}
