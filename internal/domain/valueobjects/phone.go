package valueobjects

import (
	"strings"
	"unicode"
)

// Phone é um value object para o telefone de contato de um ponto.
// O campo é opcional e aceita qualquer formatação; o link de contato
// usa apenas os dígitos.
type Phone struct {
	value string
}

// NewPhone cria um Phone a partir do texto informado pelo vendedor
func NewPhone(raw string) Phone {
	return Phone{value: strings.TrimSpace(raw)}
}

// String retorna o telefone como foi informado
func (p Phone) String() string {
	return p.value
}

// IsEmpty verifica se há telefone cadastrado
func (p Phone) IsEmpty() bool {
	return p.value == ""
}

// Digits retorna apenas os dígitos do telefone
func (p Phone) Digits() string {
	var b strings.Builder
	for _, r := range p.value {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ContactLink deriva o link de contato (WhatsApp) a partir dos dígitos.
// Retorna vazio quando não há dígito algum.
func (p Phone) ContactLink() string {
	digits := p.Digits()
	if digits == "" {
		return ""
	}
	return "https://wa.me/" + digits
}
