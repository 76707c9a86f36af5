package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ME-Tii/customer-list/internal/customer"
	"github.com/ME-Tii/customer-list/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// CustomerHandler exposes the customer registry and its exports.
type CustomerHandler struct {
	Registry *customer.Registry
}

func NewCustomerHandler(registry *customer.Registry) *CustomerHandler {
	return &CustomerHandler{Registry: registry}
}

// List returns every registry record as JSON.
func (h *CustomerHandler) List(c *gin.Context) {
	util.Success(c, util.Response{"customers": h.Registry.All()})
}

type addCustomerReq struct {
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	Email      string `json:"email"`
	Newsletter bool   `json:"newsletter"`
}

// Add registers a customer and returns the stored record with its id.
func (h *CustomerHandler) Add(c *gin.Context) {
	var req addCustomerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid customer body")
		return
	}

	stored, err := h.Registry.Add(customer.Customer{
		Name:       req.Name,
		Surname:    req.Surname,
		Email:      req.Email,
		Newsletter: req.Newsletter,
	})
	if err != nil {
		util.Fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"message":  "Customer registered successfully",
		"customer": stored,
	})
}

// ServeXML serves the registry in its on-disk XML form.
func (h *CustomerHandler) ServeXML(c *gin.Context) {
	raw, err := h.Registry.XML()
	if err != nil {
		util.Fail(c, err)
		return
	}
	c.Data(http.StatusOK, "application/xml", raw)
}

// ExportCSV streams the registry as a CSV download.
func (h *CustomerHandler) ExportCSV(c *gin.Context) {
	customers := h.Registry.All()

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"customers_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"ID", "Name", "Surname", "Email", "Newsletter", "Registered"})
	for _, cust := range customers {
		writer.Write([]string{
			strconv.Itoa(cust.ID),
			cust.Name,
			cust.Surname,
			cust.Email,
			strconv.FormatBool(cust.Newsletter),
			cust.Timestamp,
		})
	}
}

// ExportXLSX streams the registry as an XLSX download.
func (h *CustomerHandler) ExportXLSX(c *gin.Context) {
	customers := h.Registry.All()

	f := excelize.NewFile()
	sheetName := "Customers"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create sheet failed")
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"ID", "Name", "Surname", "Email", "Newsletter", "Registered"}
	for i, h := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, h)
	}

	for idx, cust := range customers {
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), cust.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), cust.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), cust.Surname)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), cust.Email)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), cust.Newsletter)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), cust.Timestamp)
	}

	f.SetColWidth(sheetName, "A", "A", 6)
	f.SetColWidth(sheetName, "B", "D", 20)
	f.SetColWidth(sheetName, "E", "E", 10)
	f.SetColWidth(sheetName, "F", "F", 24)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"customers_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "export failed")
	}
}
