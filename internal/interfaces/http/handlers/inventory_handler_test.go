package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func medicine(outletID string, stock int) gin.H {
	return gin.H{
		"pharmacyOutletId": outletID,
		"medicineName":     "Dolo 650",
		"medicineBrand":    "Micro Labs",
		"category":         "Analgesic",
		"stock":            stock,
		"threshold":        20,
		"price":            "30.50",
		"expiry":           "2027-12-31T00:00:00Z",
	}
}

func TestInventoryHandler_AddThenRestock(t *testing.T) {
	s := newTestServer(t)
	_, _, pharmacistToken, outletID := s.parties(t)

	code, body := s.do(t, http.MethodPost, "/api/inventory", pharmacistToken, medicine(outletID, 100))
	require.Equal(t, http.StatusCreated, code, body)
	assert.Equal(t, "New inventory item added", body["message"])
	itemID := dataID(t, body)

	code, body = s.do(t, http.MethodPost, "/api/inventory", pharmacistToken, medicine(outletID, 20))
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "Inventory restocked", body["message"])
	item := body["data"].(map[string]interface{})
	assert.Equal(t, itemID, item["id"])
	assert.EqualValues(t, 120, item["stock"])

	code, list := s.doList(t, "/api/inventory/"+outletID, pharmacistToken)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, list, 1)
}

func TestInventoryHandler_Errors(t *testing.T) {
	s := newTestServer(t)
	_, _, pharmacistToken, outletID := s.parties(t)

	code, body := s.do(t, http.MethodPost, "/api/inventory", pharmacistToken, medicine(uuid.NewString(), 5))
	assert.Equal(t, http.StatusNotFound, code, body)

	missingName := medicine(outletID, 5)
	delete(missingName, "medicineName")
	code, body = s.do(t, http.MethodPost, "/api/inventory", pharmacistToken, missingName)
	assert.Equal(t, http.StatusBadRequest, code, body)
	assert.Contains(t, body["message"], "medicineName")

	code, _ = s.do(t, http.MethodPost, "/api/inventory", "", medicine(outletID, 5))
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = s.doList(t, "/api/inventory/"+uuid.NewString(), pharmacistToken)
	assert.Equal(t, http.StatusNotFound, code)
}
