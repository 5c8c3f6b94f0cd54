package auth

import "testing"

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Pizzaria do João", "pizzaria-do-joao"},
		{"Café com Açúcar", "cafe-com-acucar"},
		{"Restaurante São José", "restaurante-sao-jose"},
		{"  Burger -- House!  ", "burger-house"},
		{"7 Menu", "7-menu"},
		{"---", ""},
	}
	for _, tc := range cases {
		if got := GenerateSlug(tc.name); got != tc.want {
			t.Errorf("GenerateSlug(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}
