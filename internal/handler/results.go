package handler

import (
	"fmt"

	"github.com/ME-Tii/customer-list/internal/results"
	"github.com/ME-Tii/customer-list/internal/util"

	"github.com/gin-gonic/gin"
)

// ResultsHandler exposes the test-result folder scan.
type ResultsHandler struct {
	Scanner *results.Scanner
}

func NewResultsHandler(scanner *results.Scanner) *ResultsHandler {
	return &ResultsHandler{Scanner: scanner}
}

// Scan reports the latest score per known test.
func (h *ResultsHandler) Scan(c *gin.Context) {
	found := h.Scanner.Scan()
	util.Success(c, util.Response{
		"results": found,
		"message": fmt.Sprintf("Scanned %d test folders", len(found)),
	})
}
