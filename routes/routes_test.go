package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sentipay/sentipay/controllers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// The paths encoded into QR images must resolve to registered routes. An
// unauthenticated request hits the auth wall (401), never a 404.
func TestQRLinkTargetsAreRoutable(t *testing.T) {
	router := SetupRouter()

	targets := []string{
		controllers.VoucherRedeemPath("SOMECODE"),
		controllers.MerchantPayPath("SOMECODE"),
	}
	for _, path := range targets {
		req := httptest.NewRequest("POST", path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "expected %s to be routable", path)
	}
}
