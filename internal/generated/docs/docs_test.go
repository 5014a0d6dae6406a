package docs_test

import (
	"testing"

	"school/internal/generated/docs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerInfoIsRegistered(t *testing.T) {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)

	assert.Contains(t, doc, `"openapi":"3.0.3"`)
	assert.Contains(t, doc, "/api/v1/courses/{id}")
}
