package api

import (
	"os"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/jvlp/md-parser/tmpstore"
	"github.com/jvlp/md-parser/util"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Configure the validator to use json tags for field names in errors
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}

	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

var testConfig = util.Config{
	Environment:       "test",
	HTTPServerAddress: "0.0.0.0:8080",
	AllowedOrigins:    []string{"http://localhost:3000"},
	CacheTTL:          time.Minute,
	MaxLines:          100,
	MaxLineLength:     256,
}

func newTestService(t *testing.T, store tmpstore.Store) *Service {
	service, err := NewService(testConfig, store)
	require.NoError(t, err)
	return service
}
