package valueobjects

import "testing"

func TestPhone(t *testing.T) {
	t.Run("preserva a formatação informada", func(t *testing.T) {
		phone := NewPhone("  +57 300 123-4567  ")

		if phone.String() != "+57 300 123-4567" {
			t.Errorf("esperava trim sem reformatar, recebeu %q", phone.String())
		}
	})

	t.Run("extrai apenas os dígitos", func(t *testing.T) {
		phone := NewPhone("+57 (300) 123-4567")

		if phone.Digits() != "573001234567" {
			t.Errorf("esperava 573001234567, recebeu %q", phone.Digits())
		}
	})

	t.Run("vazio é válido", func(t *testing.T) {
		phone := NewPhone("   ")

		if !phone.IsEmpty() {
			t.Error("esperava IsEmpty para telefone em branco")
		}
	})
}

func TestPhone_ContactLink(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"número formatado vira link wa.me", "+57 300 123 4567", "https://wa.me/573001234567"},
		{"número simples", "3001234567", "https://wa.me/3001234567"},
		{"sem dígitos não há link", "sin teléfono", ""},
		{"vazio não há link", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewPhone(tt.input).ContactLink(); got != tt.expected {
				t.Errorf("ContactLink(%q) = %q, esperava %q", tt.input, got, tt.expected)
			}
		})
	}
}
