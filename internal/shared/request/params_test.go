package request

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T, url string, params gin.Params) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, url, nil)
	c.Params = params
	return c
}

func TestParamInt(t *testing.T) {
	c := testContext(t, "/stores/7", gin.Params{{Key: "id", Value: "7"}})

	id, err := ParamInt(c, "id")

	require.NoError(t, err)
	assert.Equal(t, 7, id)
}

func TestParamIntRejectsNonNumeric(t *testing.T) {
	c := testContext(t, "/stores/abc", gin.Params{{Key: "id", Value: "abc"}})

	_, err := ParamInt(c, "id")

	assert.Error(t, err)
}

func TestQueryIntAbsentIsNil(t *testing.T) {
	c := testContext(t, "/stores/paged", nil)

	v, err := QueryInt(c, "id")

	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestQueryIntBlankIsNil(t *testing.T) {
	c := testContext(t, "/stores/paged?id=", nil)

	v, err := QueryInt(c, "id")

	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestQueryIntMalformed(t *testing.T) {
	c := testContext(t, "/stores/paged?id=x", nil)

	_, err := QueryInt(c, "id")

	assert.Error(t, err)
}

func TestQueryString(t *testing.T) {
	c := testContext(t, "/stores/paged?name=toy", nil)

	v := QueryString(c, "name")

	require.NotNil(t, v)
	assert.Equal(t, "toy", *v)

	assert.Nil(t, QueryString(c, "location"))
}
