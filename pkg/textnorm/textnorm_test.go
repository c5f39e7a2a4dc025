package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpper(t *testing.T) {
	assert.Equal(t, "SÃO JOÃO", Upper("  são joão "))
	assert.Equal(t, "COOPAGRI", Upper("CoopAgri"))
	assert.Equal(t, "", Upper("   "))
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "12345678901", Digits("123.456.789-01"))
	assert.Equal(t, "", Digits("n/a"))
}

func TestNoSpace(t *testing.T) {
	assert.Equal(t, "CDANF01", NoSpace(" CD ANF\t01 "))
}

func TestFold(t *testing.T) {
	assert.Equal(t, "municipio", Fold("Município"))
	assert.Equal(t, "nome da associacao e/ou cooperativa", Fold("\uFEFFNome da Associação e/ou Cooperativa "))
	assert.Equal(t, "talhao", Fold("TALHÃO"))
}

func TestPtr(t *testing.T) {
	assert.Nil(t, Ptr(""))
	assert.Nil(t, Ptr("  "))
	if assert.NotNil(t, Ptr("-20.1")) {
		assert.Equal(t, "-20.1", *Ptr("-20.1"))
	}
}
