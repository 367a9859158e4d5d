package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/psepay/pse_api/internal/models"
	"github.com/psepay/pse_api/internal/service"
	"github.com/psepay/pse_api/internal/utils"
)

// BankHandler handles bank HTTP requests.
type BankHandler struct {
	svc *service.BankService
}

// NewBankHandler creates a new BankHandler.
func NewBankHandler(svc *service.BankService) *BankHandler {
	return &BankHandler{svc: svc}
}

// GetBanks godoc
// @Summary List banks
// @Description Returns all banks, optionally filtered by bank id
// @Tags banks
// @Produce json
// @Param bankId query int false "Bank ID to filter by"
// @Success 200 {object} utils.Response{data=[]models.BankResponse}
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /banks [get]
func (h *BankHandler) GetBanks(c *gin.Context) {
	var bankID int
	if raw := c.Query("bankId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Bank ID must be a number.")
			return
		}
		bankID = id
	}

	banks, err := h.svc.GetBanks(c.Request.Context(), bankID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, http.StatusOK, "Banks retrieved successfully", banks)
}

// CreateBank godoc
// @Summary Create a bank
// @Description Creates a new bank; the bank code must not be in use
// @Tags banks
// @Accept json
// @Produce json
// @Param bank body models.BankRequest true "Bank to create"
// @Success 201 {object} utils.Response
// @Failure 400 {object} utils.Response "Missing or invalid field"
// @Failure 409 {object} utils.Response "Bank code already exists"
// @Failure 500 {object} utils.Response
// @Router /banks [post]
func (h *BankHandler) CreateBank(c *gin.Context) {
	var req models.BankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_REQUEST", bindingMessage(err))
		return
	}
	if msg := missingFieldMessage(&req, "Bank code is required."); msg != "" {
		utils.Error(c, http.StatusBadRequest, "INVALID_REQUEST", msg)
		return
	}

	result, err := h.svc.CreateBank(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, http.StatusCreated, result, nil)
}

// UpdateBank godoc
// @Summary Update a bank
// @Description Updates the name, active flag and API URL of the bank with the given bank code
// @Tags banks
// @Accept json
// @Produce json
// @Param bank body models.BankRequest true "Updated bank"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response "Missing or invalid field"
// @Failure 404 {object} utils.Response "Bank code not found"
// @Failure 500 {object} utils.Response
// @Router /banks [put]
func (h *BankHandler) UpdateBank(c *gin.Context) {
	var req models.BankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_REQUEST", bindingMessage(err))
		return
	}
	if msg := missingFieldMessage(&req, "Bank code is required for update operations."); msg != "" {
		utils.Error(c, http.StatusBadRequest, "INVALID_REQUEST", msg)
		return
	}

	result, err := h.svc.UpdateBank(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, http.StatusOK, result, nil)
}

// DeleteBank godoc
// @Summary Delete a bank
// @Description Physically deletes the bank with the given id
// @Tags banks
// @Produce json
// @Param bankId path int true "Bank ID"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response "Invalid bank id"
// @Failure 404 {object} utils.Response "Bank not found"
// @Failure 500 {object} utils.Response
// @Router /banks/{bankId} [delete]
func (h *BankHandler) DeleteBank(c *gin.Context) {
	bankID, err := strconv.Atoi(c.Param("bankId"))
	if err != nil || bankID <= 0 {
		utils.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Bank ID must be greater than zero.")
		return
	}

	result, err := h.svc.DeleteBank(c.Request.Context(), bankID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, http.StatusOK, result, nil)
}

// missingFieldMessage performs the shallow field-presence checks done before
// the service is invoked. Each missing or whitespace-only required field has
// its own message; codeMsg varies between create and update.
func missingFieldMessage(req *models.BankRequest, codeMsg string) string {
	if strings.TrimSpace(req.BankCode) == "" {
		return codeMsg
	}
	if strings.TrimSpace(req.BankName) == "" {
		return "Bank name is required."
	}
	if strings.TrimSpace(req.APIURL) == "" {
		return "API URL is required."
	}
	return ""
}

// bindingMessage maps a binding failure to a client message. Field length
// violations get their own message; anything else is a malformed body.
func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Field() {
		case "BankCode":
			return "Bank code must be at most 50 characters."
		case "BankName":
			return "Bank name must be at most 255 characters."
		case "APIURL":
			return "API URL must be at most 500 characters."
		}
	}
	return "Invalid request body."
}

// respondError translates service failures into API responses. Business
// errors carry their own status and code; everything else is a 500 whose
// message is already opaque (the service guard replaced it).
func respondError(c *gin.Context, err error) {
	var be *utils.BusinessError
	if errors.As(err, &be) {
		utils.Error(c, be.StatusCode, be.Code, be.Message)
		return
	}
	utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
}
