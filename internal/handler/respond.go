package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// fail writes the uniform {error, code} client-error body.
func fail(c *gin.Context, status int, msg, code string) {
	c.JSON(status, gin.H{"error": msg, "code": code})
}

// serverError surfaces unexpected store errors with the underlying message.
func serverError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error: " + err.Error()})
}

// queryID parses the id query parameter. ok is false when the value is
// missing or not a non-negative integer.
func queryID(c *gin.Context) (uint, bool) {
	n, err := strconv.Atoi(c.Query("id"))
	if err != nil || n < 0 {
		return 0, false
	}
	return uint(n), true
}

// queryBool returns nil when the parameter is absent; otherwise a pointer to
// whether the value equals "true".
func queryBool(c *gin.Context, name string) *bool {
	v, ok := c.GetQuery(name)
	if !ok {
		return nil
	}
	b := v == "true"
	return &b
}

func queryInt(c *gin.Context, name string) int {
	n, _ := strconv.Atoi(c.Query(name))
	return n
}

// requireStrings checks an ordered list of required draft fields, reporting
// the first one that is missing or blank after trimming. Each present field
// is trimmed in place.
type requiredField struct {
	name  string
	value **string
}

func firstMissingRequired(fields []requiredField) string {
	for _, f := range fields {
		if *f.value == nil {
			return f.name
		}
		trimmed := strings.TrimSpace(**f.value)
		if trimmed == "" {
			return f.name
		}
		**f.value = trimmed
	}
	return ""
}
