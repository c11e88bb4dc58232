package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type sample struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name" binding:"required"`
}

func newTestContext(body string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c
}

func TestToDetailsRequiredFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	Init()

	var s sample
	err := newTestContext(`{"email":"a@x.com"}`).ShouldBindJSON(&s)
	if err == nil {
		t.Fatal("expected binding error")
	}
	details := ToDetails(err)
	if details["name"] != "is required" {
		t.Fatalf("unexpected details: %v", details)
	}
}

func TestToDetailsWrongType(t *testing.T) {
	gin.SetMode(gin.TestMode)
	Init()

	var s sample
	err := newTestContext(`{"email":123,"name":"A"}`).ShouldBindJSON(&s)
	if err == nil {
		t.Fatal("expected binding error")
	}
	if details := ToDetails(err); details["email"] == "" {
		t.Fatalf("expected a type error for email, got %v", details)
	}
}

func TestToDetailsNil(t *testing.T) {
	if ToDetails(nil) != nil {
		t.Fatal("expected nil details for nil error")
	}
}
