package sqltype_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asmartbear/sqlight/sqltype"
)

func TestTypeCompatible(t *testing.T) {
	t.Parallel()

	assert.True(t, sqltype.TEXT.Compatible(sqltype.TEXT))
	assert.True(t, sqltype.TEXT.Compatible(sqltype.VARCHAR))
	assert.True(t, sqltype.VARCHAR.Compatible(sqltype.TEXT))
	assert.False(t, sqltype.TEXT.Compatible(sqltype.INTEGER))
	assert.False(t, sqltype.INTEGER.Compatible(sqltype.REAL))
}

func TestTypeClassifiers(t *testing.T) {
	t.Parallel()

	assert.True(t, sqltype.INTEGER.IsNumeric())
	assert.True(t, sqltype.REAL.IsNumeric())
	assert.False(t, sqltype.TEXT.IsNumeric())

	assert.True(t, sqltype.TEXT.IsText())
	assert.True(t, sqltype.VARCHAR.IsText())
	assert.False(t, sqltype.INTEGER.IsText())
}

func TestTypeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "INTEGER", sqltype.INTEGER.String())
	assert.Equal(t, "BOOLEAN", sqltype.BOOLEAN.String())
}

func TestAnySometimes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, sqltype.Never, sqltype.AnySometimes())
	assert.Equal(t, sqltype.Never, sqltype.AnySometimes(sqltype.Never, sqltype.Never))
	assert.Equal(t, sqltype.Sometimes, sqltype.AnySometimes(sqltype.Never, sqltype.Sometimes))
	assert.Equal(t, sqltype.Sometimes, sqltype.AnySometimes(sqltype.IsNullLiteral))
}

func TestAllSometimes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, sqltype.Sometimes, sqltype.AllSometimes(sqltype.Sometimes, sqltype.Sometimes))
	assert.Equal(t, sqltype.Never, sqltype.AllSometimes(sqltype.Sometimes, sqltype.Never))
	assert.Equal(t, sqltype.Sometimes, sqltype.AllSometimes())
}
